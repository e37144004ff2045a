package main

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// Temperature grid shared by all property tables, degree C.
var _theta_f_tbl = []float64{-10.0, -9.0, -8.0, -7.0, -6.0, -5.0, -4.0, -3.0, -2.0, -1.0, 0.0}

// Properties of cold water circulated in direct systems.
var _lambda_wtr_tbl = []float64{0.5902, 0.5871, 0.584, 0.5809, 0.5778, 0.5747, 0.5717, 0.5686, 0.5655, 0.5625, 0.5594}
var _mu_wtr_tbl = []float64{0.0001903, 0.0001881, 0.000186, 0.0001839, 0.0001818, 0.0001798, 0.0001778, 0.0001759, 0.000174, 0.0001721, 0.0001702}
var _pr_wtr_tbl = []float64{1.471, 1.464, 1.456, 1.449, 1.442, 1.436, 1.429, 1.423, 1.416, 1.41, 1.404}
var _c_wtr_tbl = []float64{4563.0, 4568.0, 4573.0, 4578.0, 4583.0, 4589.0, 4594.0, 4599.0, 4604.0, 4610.0, 4615.0}

// Properties of calcium chloride solution, keyed by concentration bucket, %.
var _lambda_cacl2_tbl = map[int][]float64{
	25: {0.5253, 0.5267, 0.5281, 0.5296, 0.531, 0.5324, 0.5338, 0.5352, 0.5366, 0.5381, 0.5395},
	26: {0.524, 0.5254, 0.5268, 0.5283, 0.5297, 0.5311, 0.5325, 0.5339, 0.5353, 0.5367, 0.5381},
	27: {0.5227, 0.5241, 0.5255, 0.5269, 0.5284, 0.5298, 0.5312, 0.5326, 0.534, 0.5354, 0.5368},
	28: {0.5214, 0.5228, 0.5242, 0.5256, 0.527, 0.5285, 0.5299, 0.5313, 0.5327, 0.5341, 0.5355},
	29: {0.5201, 0.5215, 0.5229, 0.5243, 0.5258, 0.5272, 0.5286, 0.53, 0.5314, 0.5328, 0.5342},
	30: {0.5189, 0.5203, 0.5217, 0.5231, 0.5245, 0.5259, 0.5273, 0.5287, 0.5301, 0.5315, 0.5329},
}

var _mu_cacl2_tbl = map[int][]float64{
	25: {0.00553, 0.005353, 0.005184, 0.005023, 0.004869, 0.004722, 0.004582, 0.004447, 0.004319, 0.004197, 0.004079},
	26: {0.005854, 0.005665, 0.005485, 0.005314, 0.005151, 0.004995, 0.004847, 0.004705, 0.004569, 0.00444, 0.004316},
	27: {0.006217, 0.006015, 0.005823, 0.005641, 0.005467, 0.005301, 0.005143, 0.004992, 0.004848, 0.00471, 0.004579},
	28: {0.006627, 0.00641, 0.006204, 0.006007, 0.005821, 0.005643, 0.005474, 0.005313, 0.005159, 0.005012, 0.004872},
	29: {0.007093, 0.006858, 0.006635, 0.006423, 0.006221, 0.00603, 0.005848, 0.005674, 0.005509, 0.005351, 0.0052},
	30: {0.007627, 0.00737, 0.007127, 0.006896, 0.006677, 0.006469, 0.006272, 0.006084, 0.005905, 0.005734, 0.005572},
}

var _pr_cacl2_tbl = map[int][]float64{
	25: {29.87, 28.87, 27.91, 27.0, 26.13, 25.31, 24.52, 23.76, 23.04, 22.35, 21.69},
	26: {31.35, 30.29, 29.28, 28.32, 27.41, 26.54, 25.71, 24.92, 24.16, 23.44, 22.75},
	27: {33.02, 31.9, 30.83, 29.82, 28.85, 27.93, 27.05, 26.22, 25.42, 24.66, 23.93},
	28: {34.93, 33.73, 32.59, 31.51, 30.48, 29.5, 28.57, 27.68, 26.83, 26.03, 25.26},
	29: {37.1, 35.81, 34.58, 33.42, 32.32, 31.27, 30.27, 29.33, 28.42, 27.56, 26.74},
	30: {39.59, 38.19, 36.86, 35.6, 34.41, 33.28, 32.2, 31.18, 30.21, 29.29, 28.41},
}

var _c_cacl2_tbl = map[int][]float64{
	25: {2837.0, 2840.0, 2844.0, 2847.0, 2850.0, 2853.0, 2856.0, 2859.0, 2863.0, 2866.0, 2869.0},
	26: {2806.0, 2809.0, 2812.0, 2815.0, 2819.0, 2822.0, 2825.0, 2828.0, 2831.0, 2834.0, 2837.0},
	27: {2777.0, 2780.0, 2783.0, 2786.0, 2789.0, 2792.0, 2794.0, 2797.0, 2800.0, 2803.0, 2806.0},
	28: {2748.0, 2751.0, 2754.0, 2757.0, 2760.0, 2762.0, 2765.0, 2768.0, 2771.0, 2774.0, 2776.0},
	29: {2721.0, 2723.0, 2726.0, 2729.0, 2731.0, 2734.0, 2736.0, 2739.0, 2742.0, 2744.0, 2747.0},
	30: {2693.0, 2696.0, 2698.0, 2700.0, 2703.0, 2705.0, 2708.0, 2710.0, 2712.0, 2715.0, 2717.0},
}

// Properties of ethylene glycol solution, keyed by concentration bucket, %.
var _lambda_eg_tbl = map[int][]float64{
	25: {0.4538, 0.4549, 0.456, 0.4571, 0.4582, 0.4593, 0.4604, 0.4615, 0.4626, 0.4637, 0.4648},
	26: {0.4502, 0.4513, 0.4524, 0.4535, 0.4546, 0.4557, 0.4567, 0.4578, 0.4589, 0.4599, 0.461},
	27: {0.4467, 0.4478, 0.4488, 0.4499, 0.4509, 0.452, 0.453, 0.4541, 0.4551, 0.4562, 0.4572},
	28: {0.4432, 0.4442, 0.4452, 0.4463, 0.4473, 0.4483, 0.4493, 0.4504, 0.4514, 0.4524, 0.4534},
	29: {0.4397, 0.4407, 0.4417, 0.4427, 0.4437, 0.4447, 0.4457, 0.4467, 0.4477, 0.4487, 0.4497},
	30: {0.4362, 0.4371, 0.4381, 0.4391, 0.4401, 0.4411, 0.442, 0.443, 0.444, 0.445, 0.4459},
}

var _mu_eg_tbl = map[int][]float64{
	25: {0.005531, 0.0053, 0.005082, 0.004876, 0.00468, 0.004494, 0.004318, 0.004151, 0.003992, 0.003841, 0.003698},
	26: {0.005713, 0.005474, 0.005248, 0.005033, 0.00483, 0.004637, 0.004454, 0.004281, 0.004116, 0.003959, 0.003811},
	27: {0.005902, 0.005654, 0.005418, 0.005195, 0.004984, 0.004784, 0.004594, 0.004414, 0.004244, 0.004081, 0.003927},
	28: {0.006098, 0.005839, 0.005595, 0.005363, 0.005144, 0.004936, 0.004739, 0.004552, 0.004375, 0.004207, 0.004047},
	29: {0.006299, 0.006031, 0.005776, 0.005536, 0.005308, 0.005093, 0.004888, 0.004694, 0.004511, 0.004336, 0.004171},
	30: {0.006508, 0.006228, 0.005964, 0.005715, 0.005478, 0.005254, 0.005042, 0.004841, 0.00465, 0.004469, 0.004298},
}

var _pr_eg_tbl = map[int][]float64{
	25: {45.57, 43.59, 41.72, 39.95, 38.28, 36.7, 35.2, 33.77, 32.43, 31.15, 29.93},
	26: {47.17, 45.11, 43.17, 41.34, 39.6, 37.95, 36.4, 34.92, 33.52, 32.19, 30.94},
	27: {48.82, 46.69, 44.67, 42.76, 40.96, 39.25, 37.64, 36.1, 34.65, 33.27, 31.97},
	28: {50.53, 48.31, 46.22, 44.24, 42.36, 40.59, 38.91, 37.32, 35.81, 34.39, 33.03},
	29: {52.29, 49.99, 47.81, 45.76, 43.81, 41.97, 40.23, 38.58, 37.01, 35.53, 34.13},
	30: {54.12, 51.72, 49.46, 47.32, 45.3, 43.39, 41.58, 39.87, 38.25, 36.71, 35.25},
}

var _c_eg_tbl = map[int][]float64{
	25: {3739.0, 3741.0, 3744.0, 3746.0, 3748.0, 3751.0, 3753.0, 3756.0, 3758.0, 3760.0, 3763.0},
	26: {3717.0, 3719.0, 3722.0, 3725.0, 3727.0, 3730.0, 3732.0, 3735.0, 3737.0, 3740.0, 3742.0},
	27: {3695.0, 3698.0, 3700.0, 3703.0, 3706.0, 3708.0, 3711.0, 3714.0, 3716.0, 3719.0, 3722.0},
	28: {3672.0, 3675.0, 3678.0, 3681.0, 3684.0, 3687.0, 3689.0, 3692.0, 3695.0, 3698.0, 3701.0},
	29: {3650.0, 3653.0, 3656.0, 3659.0, 3662.0, 3665.0, 3668.0, 3671.0, 3674.0, 3677.0, 3680.0},
	30: {3627.0, 3630.0, 3633.0, 3636.0, 3640.0, 3643.0, 3646.0, 3649.0, 3652.0, 3655.0, 3658.0},
}

/*
Thermophysical properties of the heat transfer fluid circulated through
the floor tubes, tabulated against fluid temperature.
*/
type FluidProperties struct {

	// fluid temperatures at the tabulated points, degree C, [11]
	theta_f_tbl []float64

	// thermal conductivity at the tabulated points, W/m K, [11]
	lambda_f_tbl []float64

	// dynamic viscosity at the tabulated points, Pa s, [11]
	mu_f_tbl []float64

	// Prandtl number at the tabulated points, [11]
	pr_f_tbl []float64

	// specific heat at the tabulated points, J/kg K, [11]
	c_f_tbl []float64
}

/*
Create the property table of cold water for a direct system.

    Returns:
        FluidProperties
*/
func NewFluidPropertiesWater() *FluidProperties {

	return &FluidProperties{
		theta_f_tbl:  _theta_f_tbl,
		lambda_f_tbl: _lambda_wtr_tbl,
		mu_f_tbl:     _mu_wtr_tbl,
		pr_f_tbl:     _pr_wtr_tbl,
		c_f_tbl:      _c_wtr_tbl,
	}
}

/*
Create the property table of a brine for an indirect system.

    Args:
        brine: brine type
        concentration: brine concentration, % (allowed range 10 % to 30 %)

    Returns:
        FluidProperties

    Notes:
        Property data is tabulated at whole concentrations from 25 % to 30 %.
        The concentration is rounded to the nearest tabulated column.
        Concentrations below 25 % fall back to the 25 % column.
*/
func NewFluidPropertiesBrine(brine BrineType, concentration float64) *FluidProperties {

	c_pct := _get_concentration_bucket(concentration)

	switch brine {
	case BrineCaCl2:
		return &FluidProperties{
			theta_f_tbl:  _theta_f_tbl,
			lambda_f_tbl: _lambda_cacl2_tbl[c_pct],
			mu_f_tbl:     _mu_cacl2_tbl[c_pct],
			pr_f_tbl:     _pr_cacl2_tbl[c_pct],
			c_f_tbl:      _c_cacl2_tbl[c_pct],
		}
	case BrineEthyleneGlycol:
		return &FluidProperties{
			theta_f_tbl:  _theta_f_tbl,
			lambda_f_tbl: _lambda_eg_tbl[c_pct],
			mu_f_tbl:     _mu_eg_tbl[c_pct],
			pr_f_tbl:     _pr_eg_tbl[c_pct],
			c_f_tbl:      _c_eg_tbl[c_pct],
		}
	default:
		panic("invalid brine type")
	}
}

/*
Pick the property column for the given brine concentration.

    Args:
        concentration: brine concentration, %

    Returns:
        concentration bucket, %
*/
func _get_concentration_bucket(concentration float64) int {

	if concentration < 10.0 || concentration > 30.0 {
		panic(fmt.Sprintf("brine concentration %.1f %% is out of the allowed range (10 %% to 30 %%)", concentration))
	}

	c_pct := int(math.Round(concentration))

	if c_pct < 25 {
		log.Warnf("brine concentration %.1f %% is below the tabulated range. properties at 25 %% are used.", concentration)
		c_pct = 25
	}

	return c_pct
}

/*
Interpolate the fluid properties at the given fluid temperature.

    Args:
        theta_f: fluid temperature, degree C

    Returns:
        lambda_f: thermal conductivity, W/m K
        mu_f: dynamic viscosity, Pa s
        pr_f: Prandtl number
        c_f: specific heat, J/kg K

    Notes:
        Temperatures outside the tabulated range are clamped to the
        first or last tabulated point.
*/
func (self *FluidProperties) get_props(theta_f float64) (float64, float64, float64, float64) {

	i := 0
	for i < len(self.theta_f_tbl) {
		if theta_f < self.theta_f_tbl[i] {
			break
		}
		i++
	}

	if i == 0 {
		return self.lambda_f_tbl[0], self.mu_f_tbl[0], self.pr_f_tbl[0], self.c_f_tbl[0]
	}

	if i == len(self.theta_f_tbl) {
		n := len(self.theta_f_tbl) - 1
		return self.lambda_f_tbl[n], self.mu_f_tbl[n], self.pr_f_tbl[n], self.c_f_tbl[n]
	}

	f := (theta_f - self.theta_f_tbl[i-1]) / (self.theta_f_tbl[i] - self.theta_f_tbl[i-1])

	lambda_f := self.lambda_f_tbl[i-1] + f*(self.lambda_f_tbl[i]-self.lambda_f_tbl[i-1])
	mu_f := self.mu_f_tbl[i-1] + f*(self.mu_f_tbl[i]-self.mu_f_tbl[i-1])
	pr_f := self.pr_f_tbl[i-1] + f*(self.pr_f_tbl[i]-self.pr_f_tbl[i-1])
	c_f := self.c_f_tbl[i-1] + f*(self.c_f_tbl[i]-self.c_f_tbl[i-1])

	return lambda_f, mu_f, pr_f, c_f
}

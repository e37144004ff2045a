package main

import "math"

/*
Relative humidity.

    Args:
        p_v: water vapor pressure, Pa
        p_vs: saturation vapor pressure, Pa

    Returns:
        relative humidity, %
*/
func get_h(p_v, p_vs float64) float64 {
	return p_v / p_vs * 100.0
}

/*
Absolute humidity from water vapor pressure.

    Args:
        p_v: water vapor pressure, Pa

    Returns:
        absolute humidity, kg/kgDA
*/
func get_x(p_v float64) float64 {
	f := _get_f()

	return 0.622 * p_v / (f - p_v)
}

/*
Water vapor pressure from absolute humidity.

    Args:
        x: absolute humidity, kg/kgDA

    Returns:
        water vapor pressure, Pa
*/
func get_p_v(x float64) float64 {
	f := _get_f()

	return f * x / (x + 0.62198)
}

/*
Saturation vapor pressure over water (theta >= 0) or over ice (theta < 0).

    Args:
        theta: air temperature, degree C

    Returns:
        saturation vapor pressure, Pa

    Notes:
        Wexler-Hyland form, valid over the rink hall range.
*/
func get_p_vs(theta float64) float64 {
	t := theta + 273.15

	const a1 = -6096.9385
	const a2 = 21.2409642
	const a3 = -0.02711193
	const a4 = 0.00001673952
	const a5 = 2.433502
	const b1 = -6024.5282
	const b2 = 29.32707
	const b3 = 0.010613863
	const b4 = -0.000013198825
	const b5 = -0.49382577

	var p_vs float64
	if theta >= 0.0 {
		p_vs = math.Exp(a1/t + a2 + a3*t + a4*t*t + a5*math.Log(t))
	} else {
		p_vs = math.Exp(b1/t + b2 + b3*t + b4*t*t + b5*math.Log(t))
	}

	return p_vs
}

/*
Saturation vapor pressure in the Magnus form used by the resurfacing
humidity model.

    Args:
        theta: air temperature, degree C

    Returns:
        saturation vapor pressure, hPa
*/
func get_p_vs_mgn(theta float64) float64 {
	return 6.112 * math.Exp(17.67*theta/(theta+243.5))
}

/*
Dew point temperature, from the inverse of the Magnus form.

    Args:
        p_v: water vapor pressure, Pa

    Returns:
        dew point temperature, degree C
*/
func get_theta_dp(p_v float64) float64 {
	if p_v <= 0.0 {
		return -273.15
	}

	g := math.Log(p_v / 611.2)
	return 243.5 * g / (17.67 - g)
}

// atmospheric pressure, Pa
func _get_f() float64 {
	return 101325.0
}

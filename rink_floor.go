package main

import (
	"fmt"
	"math"
)

/*
Heat balance coefficients of the refrigerated floor construction.

The floor is described by three linear relations between the ice surface
temperature theta_srf, the slab bottom surface temperature theta_btm, the
source plane temperature theta_src and the source heat flux q_dash
(W/m2, negative while cooling):

    theta_srf = c_a + c_b * theta_btm + c_c * q_dash
    theta_btm = c_d + c_e * theta_srf + c_f * q_dash
    theta_src = c_g + c_h * q_dash + c_i * theta_srf + c_j * theta_btm

Eliminating both surface temperatures collapses the source relation to

    theta_src = c_k + c_l * q_dash
*/
type RinkFloor struct {
	c_a float64 // ice surface constant term, degree C
	c_b float64 // weight of the slab bottom temperature at the ice surface
	c_c float64 // ice surface response to the source flux, m2 K/W
	c_d float64 // slab bottom constant term, degree C
	c_e float64 // weight of the ice surface temperature at the slab bottom
	c_f float64 // slab bottom response to the source flux, m2 K/W
	c_g float64 // source plane constant term, degree C
	c_h float64 // source plane response to the source flux, m2 K/W
	c_i float64 // weight of the ice surface temperature at the source plane
	c_j float64 // weight of the slab bottom temperature at the source plane

	c_k float64 // theta_src at zero source flux, degree C
	c_l float64 // d theta_src / d q_dash, m2 K/W
}

func NewRinkFloor(c_a, c_b, c_c, c_d, c_e, c_f, c_g, c_h, c_i, c_j float64) *RinkFloor {

	det := 1.0 - c_e*c_b
	if math.Abs(det) < 1.0e-9 {
		panic(fmt.Sprintf("floor coefficients are degenerate: 1 - c_e * c_b = %e", det))
	}

	c_k := c_g + (c_i*(c_a+c_b*c_d)+c_j*(c_d+c_e*c_a))/det
	c_l := c_h + (c_i*(c_c+c_b*c_f)+c_j*(c_f+c_e*c_c))/det

	return &RinkFloor{
		c_a: c_a,
		c_b: c_b,
		c_c: c_c,
		c_d: c_d,
		c_e: c_e,
		c_f: c_f,
		c_g: c_g,
		c_h: c_h,
		c_i: c_i,
		c_j: c_j,
		c_k: c_k,
		c_l: c_l,
	}
}

/*
Ice surface temperature at the given source heat flux.

    Args:
        q_dash: source heat flux, W/m2 (negative while cooling)

    Returns:
        ice surface temperature, degree C
*/
func (self *RinkFloor) get_theta_srf(q_dash float64) float64 {

	return (self.c_a + self.c_b*self.c_d + (self.c_c+self.c_b*self.c_f)*q_dash) / (1.0 - self.c_b*self.c_e)
}

/*
Source plane temperature at the given source heat flux.

    Args:
        q_dash: source heat flux, W/m2 (negative while cooling)

    Returns:
        source plane temperature, degree C
*/
func (self *RinkFloor) get_theta_src(q_dash float64) float64 {

	return self.c_k + self.c_l*q_dash
}

/*
Source heat flux that holds the ice surface at the given temperature.

    Args:
        theta_srf_set: ice surface setpoint temperature, degree C

    Returns:
        source heat flux, W/m2 (negative while cooling)
*/
func (self *RinkFloor) get_q_dash_req(theta_srf_set float64) float64 {

	return (theta_srf_set*(1.0-self.c_b*self.c_e) - self.c_a - self.c_b*self.c_d) / (self.c_c + self.c_b*self.c_f)
}

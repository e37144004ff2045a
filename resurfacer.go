package main

import (
	"fmt"
	"math"
)

/*
Ice resurfacing machine attached to a refrigeration system.

Each resurfacing event shaves the ice and floods the sheet with a tank of
hot water. The flood heat and the moisture burst released while the water
freezes back both show up as loads on the refrigerated floor.
*/
type Resurfacer struct {
	v_tank   float64 // tank capacity, m3
	theta_hw float64 // resurfacing hot water temperature, degree C
	theta_mu float64 // makeup water temperature entering the tank, degree C
}

func NewResurfacer(v_tank float64, theta_hw float64, theta_mu float64) *Resurfacer {

	if v_tank < 0.0 {
		panic(fmt.Sprintf("resurfacer tank capacity must not be negative: %f", v_tank))
	}

	return &Resurfacer{
		v_tank:   v_tank,
		theta_hw: theta_hw,
		theta_mu: theta_mu,
	}
}

/*
Heat released to the ice sheet by one flood of the tank.

    Args:
        theta_ice: ice surface temperature at the event, degree C

    Returns:
        resurfacing heat, kJ

    Notes:
        Sensible heat of the hot water, latent heat of fusion and the
        sensible heat of cooling the fresh ice back to the surface
        temperature.
*/
func (self *Resurfacer) get_q_resurfacing(theta_ice float64) float64 {

	return 0.001 * get_rho_w() * self.v_tank *
		(get_c_w()*self.theta_hw + get_q_fusion() - get_c_ice()*theta_ice)
}

/*
Energy needed to heat one tank of makeup water to the flood temperature.

    Returns:
        heating energy, kJ
*/
func (self *Resurfacer) get_e_heating_water() float64 {

	return 0.001 * self.v_tank * get_rho_w() * get_c_w() * (self.theta_hw - self.theta_mu)
}

/*
Moisture burst load of one resurfacing event.

    Args:
        theta_ice: ice surface temperature at the event, degree C
        v_rink: water volume of the rink sheet, m3

    Returns:
        humidity load, kJ

    Notes:
        The air film over the sheet is taken as dry before the flood and
        saturated at the hot water temperature right after it.
*/
func (self *Resurfacer) get_q_humidity(theta_ice float64, v_rink float64) float64 {

	ah_pre := _get_ah(theta_ice, 0.0)
	ah_post := _get_ah(self.theta_hw, 1.0)

	d_ah := math.Abs(ah_pre - ah_post)
	d_theta := math.Abs(theta_ice - self.theta_hw)

	return d_ah * v_rink * d_theta * get_c_w()
}

/*
Total load of one resurfacing event.

    Args:
        theta_ice: ice surface temperature at the event, degree C
        v_rink: water volume of the rink sheet, m3

    Returns:
        event load, kJ
*/
func (self *Resurfacer) get_q_event(theta_ice float64, v_rink float64) float64 {

	return self.get_q_humidity(theta_ice, v_rink) + self.get_q_resurfacing(theta_ice)
}

/*
Water content of air per unit air volume.

    Args:
        theta: air temperature, degree C
        rh: relative humidity (0 to 1)

    Returns:
        water volume per air volume, m3/m3
*/
func _get_ah(theta float64, rh float64) float64 {

	return (get_p_vs_mgn(theta) * rh * get_m_wtr()) /
		(100.0 * 0.08314 * (273.15 + theta)) / get_rho_w()
}

/*
Heat to be removed to freeze the initial flood down to the ice setpoint.

    Args:
        v_flood: flood water volume (rink area times ice thickness), m3
        theta_fld: flood water temperature, degree C
        theta_set: ice setpoint temperature, degree C

    Returns:
        freezing load, kJ
*/
func get_q_freezing(v_flood float64, theta_fld float64, theta_set float64) float64 {

	return 0.001 * get_rho_w() * v_flood *
		(get_c_w()*theta_fld + get_q_fusion() - get_c_ice()*theta_set)
}

package main

import "math"

/*
Calculate the heat exchange effectiveness between the circulating fluid
and the floor tubes.

    Args:
        props: fluid property table
        theta_f_in: fluid temperature entering the tubes, degree C
        m_dot_f: fluid mass flow rate through the rink, kg/s
        l_tube: total tube length laid in the floor, m
        d_tube: tube inside diameter, m
        n_circ: number of parallel tube circuits

    Returns:
        eps: heat exchange effectiveness (0 to 1)
        c_f: specific heat of the fluid at theta_f_in, J/kg K

    Notes:
        The flow splits evenly over the parallel circuits, so the Reynolds
        number is evaluated with the per circuit flow rate.
        Turbulent flow (Re >= 2300) uses the Colburn equation.
        Laminar flow uses the constant surface temperature relation Nu = 3.66.
        The caller has to guarantee m_dot_f > 0.
*/
func get_hx_effectiveness(
	props *FluidProperties,
	theta_f_in float64,
	m_dot_f float64,
	l_tube float64,
	d_tube float64,
	n_circ float64,
) (float64, float64) {

	lambda_f, mu_f, pr_f, c_f := props.get_props(theta_f_in)

	re_d := 4.0 * m_dot_f / (math.Pi * mu_f * d_tube * n_circ)

	var nu_d float64
	if re_d >= get_re_laminar_max() {
		nu_d = 0.023 * math.Pow(re_d, 0.8) * math.Pow(pr_f, 1.0/3.0)
	} else {
		nu_d = 3.66
	}

	ntu := math.Pi * lambda_f * nu_d * l_tube / (m_dot_f * c_f)

	var eps float64
	if ntu > get_exp_power_max() {
		eps = 1.0
	} else {
		eps = 1.0 - math.Exp(-ntu)
	}

	return eps, c_f
}

/*
Heat exchange effect term between the fluid and the tube wall.

    Args:
        eps: heat exchange effectiveness
        m_dot_f: fluid mass flow rate, kg/s
        c_f: specific heat of the fluid, J/kg K

    Returns:
        effect term, W/K

    Notes:
        Bounded above by the flow heat capacity rate m_dot_f * c_f.
*/
func get_hx_effect_term(eps float64, m_dot_f float64, c_f float64) float64 {

	return math.Min(eps, 1.0) * m_dot_f * c_f
}

package main

/*
Resolve the heat source state of one system once its flow is fixed.

    Args:
        rs: refrigeration system
        m_dot_f: fluid mass flow rate applied in this step, kg/s
        mode: operating state implied by the flow control

    Returns:
        m_dot_f: fluid mass flow rate after the reverse flow cutoff, kg/s
        q_src: source heat, W (negative while cooling)
        theta_f_out: fluid outlet temperature, degree C
        theta_srf: ice surface temperature, degree C
        mode: operating state after the cutoffs

    Notes:
        A stopped system skips the property and effectiveness lookups.
        A cooling system whose source heat comes out non negative would warm
        the floor instead of cooling it, so the step is shut down.
*/
func get_next_system_state(rs *RinkSystem, m_dot_f float64, mode OperationMode) (float64, float64, float64, float64, OperationMode) {

	theta_f_in := rs.theta_f_in

	if m_dot_f <= 0.0 {
		return 0.0, 0.0, theta_f_in, rs.floor.get_theta_srf(0.0), NotOperating
	}

	eps, c_f := rs.get_eps_and_c(theta_f_in, m_dot_f)
	q_src := rs.get_q_src(theta_f_in, m_dot_f, eps, c_f)

	if mode == CoolingMode && q_src >= 0.0 {
		return 0.0, 0.0, theta_f_in, rs.floor.get_theta_srf(0.0), NotOperating
	}

	theta_f_out := rs.get_theta_f_out(theta_f_in, q_src, m_dot_f, c_f)
	theta_srf := rs.floor.get_theta_srf(q_src / rs.a_srf)

	return m_dot_f, q_src, theta_f_out, theta_srf, mode
}

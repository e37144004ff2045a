package main

/*
Resolve the fluid mass flow rate of a system for the current step.

    Args:
        rs: refrigeration system
        theta_f_in: fluid supply temperature, degree C
        theta_set: setpoint of the active control strategy, degree C
            (fluid outlet temperature for outlet control, ice surface
            temperature for surface control)

    Returns:
        m_dot_f: fluid mass flow rate to be applied, kg/s
        mode: operating state implied by the flow
*/
func resolve_flow(rs *RinkSystem, theta_f_in float64, theta_set float64) (float64, OperationMode) {

	switch rs.ctrl_type {
	case ControlBrineOutletTemperature:
		return _resolve_flow_botc(rs, theta_f_in, theta_set)
	case ControlIceSurfaceTemperature:
		return _resolve_flow_stc(rs, theta_f_in, theta_set)
	default:
		panic("invalid control type")
	}
}

/*
Outlet temperature control.

The heat source is probed at the maximum flow the plant can deliver. When
the predicted outlet temperature already stays at or below its setpoint the
load is too small to run and the system falls back to the minimum flow.
Otherwise the flow that returns the fluid exactly at the setpoint is

    m_dot_req = ((c_k - theta_f_in) / (theta_set - theta_f_in) - 1 / eps)
                * a_srf / (c_f * c_l)

with eps and c_f taken at the probe flow.
*/
func _resolve_flow_botc(rs *RinkSystem, theta_f_in float64, theta_set float64) (float64, OperationMode) {

	m_dot_prb := rs.m_dot_max
	eps, c_f := rs.get_eps_and_c(theta_f_in, m_dot_prb)

	q_prb := rs.get_q_src(theta_f_in, m_dot_prb, eps, c_f)
	theta_out_prb := rs.get_theta_f_out(theta_f_in, q_prb, m_dot_prb, c_f)

	if theta_out_prb <= theta_set {
		return rs.m_dot_min, NotOperating
	}

	m_dot_req := ((rs.floor.c_k-theta_f_in)/(theta_set-theta_f_in) - 1.0/eps) *
		rs.a_srf / (c_f * rs.floor.c_l)

	m_dot_f := rs.clamp_m_dot(m_dot_req)
	if m_dot_f <= 0.0 {
		return 0.0, NotOperating
	}

	return m_dot_f, CoolingMode
}

/*
Ice surface temperature control.

When the surface already settles at or below its setpoint with no flow the
load is too small to run and the system falls back to the minimum flow.
Otherwise the load that holds the ice surface at its setpoint follows from
the surface balance of the floor. The source plane settles at

    theta_src = c_k + c_l * q_dash_req

and the flow that extracts the required load is

    m_dot_req = q_req / (eps * c_f * (theta_f_in - theta_src))

with eps and c_f taken at the probe flow.
*/
func _resolve_flow_stc(rs *RinkSystem, theta_f_in float64, theta_set float64) (float64, OperationMode) {

	if rs.floor.get_theta_srf(0.0) <= theta_set {
		return rs.m_dot_min, NotOperating
	}

	q_dash_req := rs.floor.get_q_dash_req(theta_set)
	q_req := q_dash_req * rs.a_srf

	theta_src := rs.floor.get_theta_src(q_dash_req)

	m_dot_prb := rs.m_dot_max
	eps, c_f := rs.get_eps_and_c(theta_f_in, m_dot_prb)

	m_dot_req := q_req / (eps * c_f * (theta_f_in - theta_src))

	m_dot_f := rs.clamp_m_dot(m_dot_req)
	if m_dot_f <= 0.0 {
		return 0.0, NotOperating
	}

	return m_dot_f, CoolingMode
}

/*
Reduce the resolved flow when the floor surface would fall below the
condensation limit of the hall air.

    Args:
        rs: refrigeration system
        m_dot_f: resolved fluid mass flow rate, kg/s
        theta_f_in: fluid supply temperature, degree C
        theta_dp: hall air dew point temperature, degree C

    Returns:
        fluid mass flow rate after condensation control, kg/s
*/
func apply_condensation_control(rs *RinkSystem, m_dot_f float64, theta_f_in float64, theta_dp float64) float64 {

	if rs.cond_ctrl == CondensationNone || m_dot_f <= 0.0 {
		return m_dot_f
	}

	theta_cond := theta_dp + rs.theta_cond

	eps, c_f := rs.get_eps_and_c(theta_f_in, m_dot_f)
	q := rs.get_q_src(theta_f_in, m_dot_f, eps, c_f)
	theta_srf_flow := rs.floor.get_theta_srf(q / rs.a_srf)

	if theta_srf_flow >= theta_cond {
		return m_dot_f
	}

	switch rs.cond_ctrl {
	case CondensationSimpleOff:
		return 0.0
	case CondensationVariedOff:
		theta_srf_zero := rs.floor.get_theta_srf(0.0)
		if theta_srf_zero <= theta_cond {
			return 0.0
		}
		frac := (theta_srf_zero - theta_cond) / (theta_srf_zero - theta_srf_flow)
		if frac > 1.0 {
			frac = 1.0
		}
		return m_dot_f * frac
	default:
		return m_dot_f
	}
}

package main

type Sequence struct {
	_itv     Interval
	_delta_t float64
	aa       *ArenaAir
	scd      *Schedule
	ss       *RinkSystems
}

/*
   Args:
       itv: time interval
       rd: input data
       aa: arena air
       scd: schedules
*/
func NewSequence(
	itv Interval,
	rd *RinkInput,
	aa *ArenaAir,
	scd *Schedule,
) *Sequence {
	// time interval, s
	delta_t := itv.get_delta_t()

	// RinkSystems Class
	ss := NewRinkSystems(rd.Rinks)

	return &Sequence{

		// time interval class
		_itv: itv,

		// time interval, s
		_delta_t: delta_t,

		// ArenaAir Class
		aa: aa,

		// Schedule Class
		scd: scd,

		// RinkSystems Class
		ss: ss,
	}
}

func (s *Sequence) run_tick(n int, nn int, c_n *Conditions, recorder *Recorder) *Conditions {
	ss := s.ss

	return _run_tick(s, n, nn, ss, c_n, recorder)
}

/*
Advance every system by one step.

Args:
    self: sequence
    n: step (steps of the run up period are negative)
    nn: step the boundary conditions are taken from
    ss: refrigeration systems
    c_n: conditions the previous step settled at
    recorder: recorder (nil while the recorder is not ready)

Returns:
    conditions the step settled at
*/
func _run_tick(self *Sequence, n int, nn int, ss *RinkSystems, c_n *Conditions, recorder *Recorder) *Conditions {

	n_sys := ss.n_sys

	// ----------- hall air -----------

	// hall air dew point temperature of step n, degree C
	theta_dp_n := self.aa.get_theta_dp(nn)

	// --------------------------------------------

	// operating state of system i in step n+1, [i]
	operation_mode_is_n_pls := make([]OperationMode, n_sys)

	// fluid mass flow rate of system i in step n+1, kg/s, [i]
	m_dot_f_is_n_pls := make([]float64, n_sys)

	// fluid outlet temperature of system i in step n+1, degree C, [i]
	theta_f_out_is_n_pls := make([]float64, n_sys)

	// ice surface temperature of system i in step n+1, degree C, [i]
	theta_srf_is_n_pls := make([]float64, n_sys)

	// source heat of system i in step n+1, W, [i]
	q_src_is_n_pls := make([]float64, n_sys)

	// heat exchange effectiveness of system i in step n, [i]
	eps_is_n := make([]float64, n_sys)

	// resurfacing flood heat of system i in step n, kJ, [i]
	q_rsf_is_n := make([]float64, n_sys)

	// resurfacing humidity load of system i in step n, kJ, [i]
	q_hum_is_n := make([]float64, n_sys)

	// resurfacing water heating energy of system i in step n, kJ, [i]
	e_hw_is_n := make([]float64, n_sys)

	for i, rs := range ss.sys {

		// operation availability of system i in step n (zero one)
		r_opr_n := self.scd.r_opr_is_ns.At(i, nn)

		// control setpoint of system i in step n, degree C
		theta_set_n := self.scd.theta_set_is_ns.At(i, nn)

		var m_dot_f float64
		var mode OperationMode

		if r_opr_n <= 0.0 || theta_set_n >= get_high_temp_cooling() {
			m_dot_f = 0.0
			mode = NotOperating
		} else {
			m_dot_f, mode = resolve_flow(rs, rs.theta_f_in, theta_set_n)
			m_dot_f = apply_condensation_control(rs, m_dot_f, rs.theta_f_in, theta_dp_n)
		}

		m_dot_f_n_pls, q_src_n_pls, theta_f_out_n_pls, theta_srf_n_pls, mode_n_pls :=
			get_next_system_state(rs, m_dot_f, mode)

		operation_mode_is_n_pls[i] = mode_n_pls
		m_dot_f_is_n_pls[i] = m_dot_f_n_pls
		theta_f_out_is_n_pls[i] = theta_f_out_n_pls
		theta_srf_is_n_pls[i] = theta_srf_n_pls
		q_src_is_n_pls[i] = q_src_n_pls

		if m_dot_f_n_pls > 0.0 {
			eps, _ := rs.get_eps_and_c(rs.theta_f_in, m_dot_f_n_pls)
			eps_is_n[i] = eps
		}

		// resurfacing event of system i in step n (zero one)
		if self.scd.r_rsf_is_ns.At(i, nn) > 0.0 {
			// the flood meets the surface as the previous step left it
			theta_ice := c_n.theta_srf_is_n[i]
			q_rsf_is_n[i] = rs.resurfacer.get_q_resurfacing(theta_ice)
			q_hum_is_n[i] = rs.resurfacer.get_q_humidity(theta_ice, rs.get_v_rink())
			e_hw_is_n[i] = rs.resurfacer.get_e_heating_water()
		}
	}

	c_n_pls := NewConditions(
		operation_mode_is_n_pls,
		m_dot_f_is_n_pls,
		theta_f_out_is_n_pls,
		theta_srf_is_n_pls,
		q_src_is_n_pls,
	)

	if recorder != nil {
		recorder.recording(
			n,
			c_n_pls,
			eps_is_n,
			q_rsf_is_n,
			q_hum_is_n,
			e_hw_is_n,
		)
	}

	return c_n_pls
}

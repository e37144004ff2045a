package main

type Conditions struct {
	operation_mode_is_n []OperationMode // operating state of system i in step n, [i]
	m_dot_f_is_n        []float64       // fluid mass flow rate of system i in step n, kg/s, [i]
	theta_f_out_is_n    []float64       // fluid outlet temperature of system i in step n, degree C, [i]
	theta_srf_is_n      []float64       // ice surface temperature of system i in step n, degree C, [i]
	q_src_is_n          []float64       // source heat of system i in step n, W, [i]
}

func NewConditions(
	operation_mode_is_n []OperationMode,
	m_dot_f_is_n []float64,
	theta_f_out_is_n []float64,
	theta_srf_is_n []float64,
	q_src_is_n []float64,
) *Conditions {
	return &Conditions{
		operation_mode_is_n: operation_mode_is_n,
		m_dot_f_is_n:        m_dot_f_is_n,
		theta_f_out_is_n:    theta_f_out_is_n,
		theta_srf_is_n:      theta_srf_is_n,
		q_src_is_n:          q_src_is_n,
	}
}

func initialize_conditions(n_sys int) *Conditions {

	// operating state of system i in step n, [i]
	// all systems start stopped
	operation_mode_is_n := make([]OperationMode, n_sys)
	for i := range operation_mode_is_n {
		operation_mode_is_n[i] = NotOperating
	}

	// fluid mass flow rate of system i in step n, kg/s, [i]
	// initial value is 0 kg/s
	m_dot_f_is_n := make([]float64, n_sys)

	// fluid outlet temperature of system i in step n, degree C, [i]
	// initial value is 15 degree C
	theta_f_out_is_n := make([]float64, n_sys)
	for i := 0; i < n_sys; i++ {
		theta_f_out_is_n[i] = 15.0
	}

	// ice surface temperature of system i in step n, degree C, [i]
	// initial value is 15 degree C (the sheet starts unfrozen)
	theta_srf_is_n := make([]float64, n_sys)
	for i := 0; i < n_sys; i++ {
		theta_srf_is_n[i] = 15.0
	}

	// source heat of system i in step n, W, [i]
	// initial value is 0 W
	q_src_is_n := make([]float64, n_sys)

	return NewConditions(
		operation_mode_is_n,
		m_dot_f_is_n,
		theta_f_out_is_n,
		theta_srf_is_n,
		q_src_is_n,
	)
}

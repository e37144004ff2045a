package main

// specific heat of water, J/kg K
func get_c_w() float64 {
	return 4180.0
}

// density of water, kg/m3
func get_rho_w() float64 {
	return 997.0
}

// latent heat of fusion of water, J/kg
func get_q_fusion() float64 {
	return 333550.0
}

// specific heat of ice, J/kg K
func get_c_ice() float64 {
	return 2108.0
}

// molar mass of water, g/mol
func get_m_wtr() float64 {
	return 18.015
}

// upper Reynolds number for laminar tube flow
func get_re_laminar_max() float64 {
	return 2300.0
}

// ntu above which exp(-ntu) is treated as zero
func get_exp_power_max() float64 {
	return 50.0
}

// setpoint value meaning "cooling never required", degree C
func get_high_temp_cooling() float64 {
	return 200.0
}

// smallest allowed throttling range for setpoint control, K
func get_throttling_range_min() float64 {
	return 0.5
}

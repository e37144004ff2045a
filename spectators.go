package main

import "math"

/*
Number of spectators in the stand of each system.

    Args:
        ss: refrigeration systems
        r_spc_n: spectator occupancy ratio in step n (0 to 1)

    Returns:
        number of spectators of system i, [i]

    Notes:
        Occupancy ratios outside 0 to 1 are clamped.
*/
func get_n_spc_is_n(ss *RinkSystems, r_spc_n float64) []float64 {

	r := math.Min(math.Max(r_spc_n, 0.0), 1.0)

	n_spc_is_n := make([]float64, ss.n_sys)
	for i, rs := range ss.sys {
		n_spc_is_n[i] = rs.n_spc_max * r
	}

	return n_spc_is_n
}

/*
Spectator heat gain released to the hall over the rink of each system.

    Args:
        ss: refrigeration systems
        r_spc_n: spectator occupancy ratio in step n (0 to 1)

    Returns:
        spectator heat gain of system i, W, [i]
*/
func get_q_spc_is_n(ss *RinkSystems, r_spc_n float64) []float64 {

	n_spc_is_n := get_n_spc_is_n(ss, r_spc_n)

	q_spc_is_n := make([]float64, ss.n_sys)
	for i, rs := range ss.sys {
		q_spc_is_n[i] = n_spc_is_n[i] * rs.q_spc_per
	}

	return q_spc_is_n
}

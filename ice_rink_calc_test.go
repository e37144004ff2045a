package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcOneDay(t *testing.T) {

	rin := load_rink_input("example/rink_example1.json")
	aa := make_arena_air("default", IntervalH1, "", rin.Common)
	scd := get_schedule(IntervalH1, rin.Common, rin.Rinks)

	rec := calc(rin, aa, scd, IntervalH1, 1, 1)

	require.Equal(t, 24, rec._n_step_a)
	assert.Equal(t, 8.0, rec.theta_r_ns[0])

	// the main rink is closed over night and saturates the plant once open
	assert.Equal(t, float64(NotOperating), rec.operation_mode_is_ns[0][0])
	assert.Equal(t, float64(CoolingMode), rec.operation_mode_is_ns[0][6])
	assert.Equal(t, 14.0, rec.m_dot_f_is_ns[0][6])
	assert.InDelta(t, -207022.6776826517, rec.q_src_is_ns[0][6], 1e-6)
	assert.InDelta(t, -3.2195844295608906, rec.theta_srf_is_ns[0][6], 1e-9)

	// the practice rink needs more flow than its pump delivers
	assert.Equal(t, 11.0, rec.m_dot_f_is_ns[1][6])

	// the curling sheet reaches its outlet setpoint inside the flow range
	assert.Equal(t, 0.0, rec.m_dot_f_is_ns[2][0])
	assert.Equal(t, 3.0, rec.m_dot_f_is_ns[2][9])
	assert.InDelta(t, -31377.915170960474, rec.q_src_is_ns[2][9], 1e-6)

	// resurfacing floods the main rink at eleven
	assert.Equal(t, 0.0, rec.q_rsf_is_ns[0][10])
	assert.InDelta(t, 341115.70399534906, rec.q_rsf_is_ns[0][11], 1e-6)
	assert.Greater(t, rec.q_hum_is_ns[0][11], 0.0)
	assert.InDelta(t, 112521.41999999998, rec.e_hw_is_ns[0][11], 1e-6)

	// derived cooling series
	assert.InDelta(t, 207022.6776826517, rec.q_cool_is_ns[0][6], 1e-6)
	assert.InDelta(t, 745.2816396575462, rec.e_cool_is_ns[0][6], 1e-6)
	assert.Equal(t, 0.0, rec.q_cool_is_ns[0][0])

	// spectators fill the stand towards the evening
	assert.Equal(t, 1120.0, rec.n_spc_is_ns[0][19])
	assert.Equal(t, 95200.0, rec.q_spc_is_ns[0][19])
}

func TestRunWritesOutputs(t *testing.T) {

	dir := t.TempDir()

	run("example/rink_example1.json", dir, true, "default", "", true, IntervalH1, 1, 0)

	for _, name := range []string{
		"result_detail_i.csv",
		"result_detail_a.csv",
		"result_summary.csv",
		"mid_data_arena.csv",
		"mid_data_operation.csv",
		"mid_data_setpoint.csv",
		"mid_data_resurfacing.csv",
		"mid_data_spectators.csv",
	} {
		assert.FileExists(t, dir+"/"+name)
	}
}

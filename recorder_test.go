package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func make_test_conditions(q_src float64) *Conditions {

	return NewConditions(
		[]OperationMode{CoolingMode},
		[]float64{14.0},
		[]float64{-4.73},
		[]float64{-3.22},
		[]float64{q_src},
	)
}

func TestRecorderRecording(t *testing.T) {

	rec := NewRecorder(4, []int{1}, IntervalM15)

	rec.recording(2, make_test_conditions(-1000.0),
		[]float64{0.99}, []float64{100.0}, []float64{5.0}, []float64{50.0})

	assert.Equal(t, float64(CoolingMode), rec.operation_mode_is_ns[0][2])
	assert.Equal(t, 14.0, rec.m_dot_f_is_ns[0][2])
	assert.Equal(t, -4.73, rec.theta_f_out_is_ns[0][2])
	assert.Equal(t, -3.22, rec.theta_srf_is_ns[0][2])
	assert.Equal(t, -1000.0, rec.q_src_is_ns[0][2])
	assert.Equal(t, 0.99, rec.eps_is_ns[0][2])
	assert.Equal(t, 100.0, rec.q_rsf_is_ns[0][2])
	assert.Equal(t, 5.0, rec.q_hum_is_ns[0][2])
	assert.Equal(t, 50.0, rec.e_hw_is_ns[0][2])
}

func TestRecorderSkipsRunUpSteps(t *testing.T) {

	rec := NewRecorder(4, []int{1}, IntervalM15)

	rec.recording(-1, make_test_conditions(-1000.0),
		[]float64{0.99}, []float64{100.0}, []float64{5.0}, []float64{50.0})

	for n := 0; n < 4; n++ {
		assert.Equal(t, 0.0, rec.m_dot_f_is_ns[0][n])
		assert.Equal(t, 0.0, rec.q_src_is_ns[0][n])
	}
}

func TestRecorderPostRecording(t *testing.T) {

	rec := NewRecorder(2, []int{1}, IntervalM15)

	rec.recording(0, make_test_conditions(-1000.0),
		[]float64{0.99}, []float64{0.0}, []float64{0.0}, []float64{0.0})
	rec.recording(1, make_test_conditions(500.0),
		[]float64{0.99}, []float64{0.0}, []float64{0.0}, []float64{0.0})

	rec.post_recording()

	// a quarter hour at 1 kW of cooling is 0.9 MJ
	assert.Equal(t, 1000.0, rec.q_cool_is_ns[0][0])
	assert.InDelta(t, 0.9, rec.e_cool_is_ns[0][0], 1e-12)

	// heat flowing into the floor is not cooling
	assert.Equal(t, 0.0, rec.q_cool_is_ns[0][1])
	assert.Equal(t, 0.0, rec.e_cool_is_ns[0][1])
}

func TestRecorderPreRecording(t *testing.T) {

	common := make_test_common_data()
	spectators := make([]float64, 24)
	spectators[1] = 0.5
	common.SpectatorsSchedule.Weekday = spectators

	rds := []RinkData{make_test_rink_data()}
	ss := NewRinkSystems(rds)
	scd := get_schedule(IntervalH1, common, rds)
	aa := make_arena_air("default", IntervalH1, "", common)

	rec := NewRecorder(24, []int{1}, IntervalH1)
	rec.pre_recording(aa, scd, ss)

	assert.Equal(t, 8.0, rec.theta_r_ns[0])
	assert.Equal(t, 35.0, rec.h_r_ns[23])
	assert.InDelta(t, -6.532217629526922, rec.theta_dp_ns[0], 1e-9)

	assert.Equal(t, 1400.0, rec.n_spc_is_ns[0][1])
	assert.Equal(t, 119000.0, rec.q_spc_is_ns[0][1])
	assert.Equal(t, 0.0, rec.n_spc_is_ns[0][2])
}

func TestRecorderExportCsv(t *testing.T) {

	rec := NewRecorder(2, []int{1, 2}, IntervalM15)

	c := NewConditions(
		[]OperationMode{CoolingMode, NotOperating},
		[]float64{14.0, 0.0},
		[]float64{-4.73, -11.0},
		[]float64{-3.22, 5.25},
		[]float64{-1000.0, 0.0},
	)
	zeros := []float64{0.0, 0.0}
	rec.recording(0, c, []float64{0.99, 0.0}, zeros, zeros, zeros)
	rec.recording(1, c, []float64{0.99, 0.0}, zeros, zeros, zeros)
	rec.post_recording()

	dir := t.TempDir()
	rec.export_csv(dir)

	read := func(name string) [][]string {
		file, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err)
		defer file.Close()
		records, err := csv.NewReader(file).ReadAll()
		require.NoError(t, err)
		return records
	}

	detail_i := read("result_detail_i.csv")
	require.Len(t, detail_i, 3)

	// time, three hall columns and six columns per system
	require.Len(t, detail_i[0], 16)
	assert.Equal(t, "time", detail_i[0][0])
	assert.Equal(t, "theta_r", detail_i[0][1])
	assert.Equal(t, "sys1_operation_mode", detail_i[0][4])
	assert.Equal(t, "sys2_eps", detail_i[0][15])

	assert.Equal(t, "1989-01-01 00:00:00", detail_i[1][0])
	assert.Equal(t, "1989-01-01 00:15:00", detail_i[2][0])
	assert.Equal(t, "14", detail_i[1][5])

	detail_a := read("result_detail_a.csv")
	require.Len(t, detail_a, 3)

	// time and seven columns per system
	require.Len(t, detail_a[0], 15)
	assert.Equal(t, "sys1_q_cool", detail_a[0][1])
	assert.Equal(t, "1000", detail_a[1][1])
	assert.Equal(t, "0.9", detail_a[1][2])

	summary := read("result_summary.csv")
	require.Len(t, summary, 3)
	assert.Equal(t, []string{"system", "q_cool_max", "e_cool", "q_rsf", "q_hum", "e_hw"}, summary[0])
	assert.Equal(t, "sys1", summary[1][0])
	assert.Equal(t, "1000", summary[1][1])
	assert.Equal(t, "1.8", summary[1][2])
	assert.Equal(t, "sys2", summary[2][0])
	assert.Equal(t, "0", summary[2][1])
}

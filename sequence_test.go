package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func make_test_sequence() *Sequence {

	common := make_test_common_data()
	common.SpectatorsSchedule.Weekday = make([]float64, 24)

	rin := &RinkInput{
		Common: common,
		Rinks:  []RinkData{make_test_rink_data()},
	}

	aa := make_arena_air("default", IntervalH1, "", rin.Common)
	scd := get_schedule(IntervalH1, rin.Common, rin.Rinks)

	return NewSequence(IntervalH1, rin, aa, scd)
}

func TestRunTickClosedHour(t *testing.T) {

	sqc := make_test_sequence()

	// hour zero is outside the operation schedule
	c := sqc.run_tick(0, 0, initialize_conditions(1), nil)

	assert.Equal(t, NotOperating, c.operation_mode_is_n[0])
	assert.Equal(t, 0.0, c.m_dot_f_is_n[0])
	assert.Equal(t, 0.0, c.q_src_is_n[0])
	assert.Equal(t, -10.0, c.theta_f_out_is_n[0])
	assert.InDelta(t, 5.677130044843049, c.theta_srf_is_n[0], 1e-9)
}

func TestRunTickCoolingHour(t *testing.T) {

	sqc := make_test_sequence()

	// hour six is open and the outlet setpoint saturates the plant
	c := sqc.run_tick(6, 6, initialize_conditions(1), nil)

	assert.Equal(t, CoolingMode, c.operation_mode_is_n[0])
	assert.Equal(t, 14.0, c.m_dot_f_is_n[0])
	assert.InDelta(t, -207022.6776826517, c.q_src_is_n[0], 1e-6)
	assert.InDelta(t, -4.730101881614609, c.theta_f_out_is_n[0], 1e-9)
	assert.InDelta(t, -3.2195844295608906, c.theta_srf_is_n[0], 1e-9)
}

func TestRunTickSetpointSentinelTakesOffPath(t *testing.T) {

	common := make_test_common_data()
	common.SpectatorsSchedule.Weekday = make([]float64, 24)

	rd := make_test_rink_data()
	rd.Schedule.Setpoint.Weekday[6] = 200.0

	rin := &RinkInput{
		Common: common,
		Rinks:  []RinkData{rd},
	}

	aa := make_arena_air("default", IntervalH1, "", rin.Common)
	scd := get_schedule(IntervalH1, rin.Common, rin.Rinks)
	sqc := NewSequence(IntervalH1, rin, aa, scd)

	// hour six is open but the scheduled setpoint disables cooling
	c := sqc.run_tick(6, 6, initialize_conditions(1), nil)

	assert.Equal(t, NotOperating, c.operation_mode_is_n[0])
	assert.Equal(t, 0.0, c.m_dot_f_is_n[0])
}

func TestRunTickRecordsTheStep(t *testing.T) {

	sqc := make_test_sequence()
	rec := NewRecorder(24, []int{1}, IntervalH1)

	sqc.run_tick(6, 6, initialize_conditions(1), rec)

	assert.Equal(t, float64(CoolingMode), rec.operation_mode_is_ns[0][6])
	assert.Equal(t, 14.0, rec.m_dot_f_is_ns[0][6])
	assert.InDelta(t, 0.999350498731857, rec.eps_is_ns[0][6], 1e-9)
	assert.Equal(t, 0.0, rec.q_rsf_is_ns[0][6])
}

func TestRunTickResurfacingEvent(t *testing.T) {

	sqc := make_test_sequence()
	rec := NewRecorder(24, []int{1}, IntervalH1)

	// the flood hits the surface the previous step left at -3 degree C
	c_prev := NewConditions(
		[]OperationMode{CoolingMode},
		[]float64{14.0},
		[]float64{-4.73},
		[]float64{-3.0},
		[]float64{-207022.0},
	)

	sqc.run_tick(11, 11, c_prev, rec)

	assert.InDelta(t, 340838.80679999996, rec.q_rsf_is_ns[0][11], 1e-6)
	assert.InDelta(t, 4582.301000424122, rec.q_hum_is_ns[0][11], 1e-6)
	assert.InDelta(t, 112521.41999999998, rec.e_hw_is_ns[0][11], 1e-6)
}

func TestRunTickRunUpStepIsNotRecorded(t *testing.T) {

	sqc := make_test_sequence()
	rec := NewRecorder(24, []int{1}, IntervalH1)

	// run up steps borrow their boundary conditions from a later step
	sqc.run_tick(-3, 6, initialize_conditions(1), rec)

	assert.Equal(t, 0.0, rec.m_dot_f_is_ns[0][6])
	assert.Equal(t, 0.0, rec.q_src_is_ns[0][6])
}

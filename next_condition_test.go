package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextSystemStateStopped(t *testing.T) {

	rs := _create_rink_system(make_test_rink_data())

	m_dot_f, q_src, theta_f_out, theta_srf, mode := get_next_system_state(rs, 0.0, NotOperating)

	assert.Equal(t, 0.0, m_dot_f)
	assert.Equal(t, 0.0, q_src)
	assert.Equal(t, -10.0, theta_f_out)
	assert.InDelta(t, 5.677130044843049, theta_srf, 1e-12)
	assert.Equal(t, NotOperating, mode)
}

func TestNextSystemStateCooling(t *testing.T) {

	rs := _create_rink_system(make_test_rink_data())

	m_dot_f, q_src, theta_f_out, theta_srf, mode := get_next_system_state(rs, 14.0, CoolingMode)

	assert.Equal(t, 14.0, m_dot_f)
	assert.InDelta(t, -207022.6776826517, q_src, 1e-6)
	assert.InDelta(t, -4.730101881614609, theta_f_out, 1e-9)
	assert.InDelta(t, -3.2195844295608906, theta_srf, 1e-9)
	assert.Equal(t, CoolingMode, mode)
}

func TestNextSystemStateMinimumFlowKeepsCirculating(t *testing.T) {

	rs := _create_rink_system(make_test_rink_data())

	// the idle fallback keeps the minimum flow moving through the floor
	m_dot_f, q_src, theta_f_out, theta_srf, mode := get_next_system_state(rs, 1.4, NotOperating)

	assert.Equal(t, 1.4, m_dot_f)
	assert.InDelta(t, -44422.783867880076, q_src, 1e-6)
	assert.InDelta(t, 1.308111156674494, theta_f_out, 1e-9)
	assert.InDelta(t, 3.7680791686075454, theta_srf, 1e-9)
	assert.Equal(t, NotOperating, mode)
}

func TestNextSystemStateReverseFlowCutOff(t *testing.T) {

	rd := make_test_rink_data()
	rd.Fluid.SupplyTemperature = 20.0
	rs := _create_rink_system(rd)

	// a supply warmer than the source plane would heat the floor
	m_dot_f, q_src, theta_f_out, theta_srf, mode := get_next_system_state(rs, 5.0, CoolingMode)

	assert.Equal(t, 0.0, m_dot_f)
	assert.Equal(t, 0.0, q_src)
	assert.Equal(t, 20.0, theta_f_out)
	assert.InDelta(t, 5.677130044843049, theta_srf, 1e-12)
	assert.Equal(t, NotOperating, mode)
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConditions(t *testing.T) {

	c := initialize_conditions(2)

	require.Len(t, c.operation_mode_is_n, 2)

	// every sheet starts unfrozen at the hall air temperature
	assert.Equal(t, NotOperating, c.operation_mode_is_n[0])
	assert.Equal(t, 0.0, c.m_dot_f_is_n[0])
	assert.Equal(t, 15.0, c.theta_f_out_is_n[1])
	assert.Equal(t, 15.0, c.theta_srf_is_n[1])
	assert.Equal(t, 0.0, c.q_src_is_n[0])
}

func TestOperationModeString(t *testing.T) {

	assert.Equal(t, "not_operating", NotOperating.String())
	assert.Equal(t, "cooling", CoolingMode.String())
	assert.Equal(t, "unknown", OperationMode(9).String())
}

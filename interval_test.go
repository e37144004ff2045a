package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalStepsPerHour(t *testing.T) {

	assert.Equal(t, 1, IntervalH1.get_n_hour())
	assert.Equal(t, 2, IntervalM30.get_n_hour())
	assert.Equal(t, 4, IntervalM15.get_n_hour())
}

func TestIntervalStepLength(t *testing.T) {

	assert.Equal(t, 0.25, IntervalM15.get_time())
	assert.Equal(t, 900.0, IntervalM15.get_delta_t())
	assert.Equal(t, 15, IntervalM15.get_minutes())
	assert.Equal(t, 3600.0, IntervalH1.get_delta_t())
	assert.Equal(t, 60, IntervalH1.get_minutes())
}

func TestIntervalAnnualNumber(t *testing.T) {

	assert.Equal(t, 8760, IntervalH1.get_annual_number())
	assert.Equal(t, 35040, IntervalM15.get_annual_number())
}

func TestParseInterval(t *testing.T) {

	assert.Equal(t, IntervalM30, parse_interval("30m"))

	require.Panics(t, func() { parse_interval("5m") })
}

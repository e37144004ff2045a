package main

// calculation interval
type Interval string

// calculation interval
const (
	IntervalH1  Interval = "1h"
	IntervalM30 Interval = "30m"
	IntervalM15 Interval = "15m"
)

/*
Number of steps an hour is divided into.

	Returns:
	    steps per hour

	Notes:
	    1h: 1
	    30m: 2
	    15m: 4
*/
func (i Interval) get_n_hour() int {
	switch i {
	case IntervalH1:
		return 1
	case IntervalM30:
		return 2
	case IntervalM15:
		return 4
	default:
		panic("invalid interval")
	}
}

/*
Length of one step.

	Returns:
	    step length, h
*/
func (i Interval) get_time() float64 {
	switch i {
	case IntervalH1:
		return 1.0
	case IntervalM30:
		return 0.5
	case IntervalM15:
		return 0.25
	default:
		panic("invalid interval")
	}
}

/*
Length of one step.

	Returns:
	    step length, s
*/
func (i Interval) get_delta_t() float64 {
	switch i {
	case IntervalH1:
		return 3600
	case IntervalM30:
		return 1800
	case IntervalM15:
		return 900
	default:
		panic("invalid interval")
	}
}

/*
Number of steps in one year at this interval.

Returns:
	steps per year
*/
func (i Interval) get_annual_number() int {
	return 8760 * i.get_n_hour()
}

/*
Number of whole minutes in one step, used when building the date index
of the exported results.

Returns:
	minutes per step
*/
func (i Interval) get_minutes() int {
	return 60 / i.get_n_hour()
}

/*
Interval from its string form in the settings.

	Args:
	    s: "1h", "30m" or "15m"

	Returns:
	    Interval
*/
func parse_interval(s string) Interval {
	switch Interval(s) {
	case IntervalH1, IntervalM30, IntervalM15:
		return Interval(s)
	default:
		panic("invalid interval: " + s)
	}
}

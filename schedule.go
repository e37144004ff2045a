package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// Day types selectable in the calendar.
const (
	DayTypeWeekday = "weekday"
	DayTypeHoliday = "holiday"
)

type Schedule struct {
	r_opr_is_ns     *mat.Dense // operation availability of system i in step n (zero one), [i, n]
	theta_set_is_ns *mat.Dense // control setpoint of system i in step n, degree C, [i, n]
	r_rsf_is_ns     *mat.Dense // resurfacing events of system i in step n (zero one), [i, n]
	r_spc_ns        []float64  // spectator occupancy ratio in step n (0 to 1), [n]
}

/*

Args:
	r_opr_is_ns: operation availability of system i in step n (zero one), [i, n]
	theta_set_is_ns: control setpoint of system i in step n, degree C, [i, n]
	r_rsf_is_ns: resurfacing events of system i in step n (zero one), [i, n]
	r_spc_ns: spectator occupancy ratio in step n (0 to 1), [n]
*/
func NewSchedule(
	r_opr_is_ns *mat.Dense,
	theta_set_is_ns *mat.Dense,
	r_rsf_is_ns *mat.Dense,
	r_spc_ns []float64,
) *Schedule {
	return &Schedule{
		r_opr_is_ns:     r_opr_is_ns,
		theta_set_is_ns: theta_set_is_ns,
		r_rsf_is_ns:     r_rsf_is_ns,
		r_spc_ns:        r_spc_ns,
	}
}

/*
Build the annual schedules from the input data.

Args:
	itv: time interval
	common: common input block (calendar and the spectator pattern)
	rds: per system input data

Returns:
	Schedule

Notes:
	The setpoint schedule carries the fluid outlet temperature under outlet
	control and the ice surface temperature under surface control.
*/
func get_schedule(itv Interval, common CommonData, rds []RinkData) *Schedule {

	calendar := _get_calendar(common.Calendar)

	n_sys := len(rds)
	n_a := itv.get_annual_number()

	r_opr_is_ns := mat.NewDense(n_sys, n_a, nil)
	theta_set_is_ns := mat.NewDense(n_sys, n_a, nil)
	r_rsf_is_ns := mat.NewDense(n_sys, n_a, nil)

	for i, rd := range rds {
		r_opr_is_ns.SetRow(i, _expand_pattern(rd.Schedule.Operation, calendar, itv, true))
		theta_set_is_ns.SetRow(i, _expand_pattern(rd.Schedule.Setpoint, calendar, itv, false))
		r_rsf_is_ns.SetRow(i, _expand_pattern(rd.Schedule.Resurfacing, calendar, itv, true))
	}

	r_spc_ns := _expand_pattern(common.SpectatorsSchedule, calendar, itv, false)

	return NewSchedule(r_opr_is_ns, theta_set_is_ns, r_rsf_is_ns, r_spc_ns)
}

/*
Day type calendar of the year.

Args:
	cal: calendar from the input file, [365] (empty for all weekday)

Returns:
	day type per day, [365]
*/
func _get_calendar(cal []string) []string {

	if len(cal) == 0 {
		cal = make([]string, 365)
		for i := range cal {
			cal[i] = DayTypeWeekday
		}
		return cal
	}

	if len(cal) != 365 {
		panic(fmt.Sprintf("calendar must have 365 entries: %d", len(cal)))
	}

	for i, c := range cal {
		if c != DayTypeWeekday && c != DayTypeHoliday {
			panic(fmt.Sprintf("invalid day type at day %d: %s", i, c))
		}
	}

	return cal
}

/*
Expand a pair of daily patterns over the year.

Args:
	patterns: hourly daily patterns, [24] each
	calendar: day type per day, [365]
	itv: time interval
	is_zero_one: read the values as on off flags

Returns:
	annual schedule, [365*24*n_hour]

Notes:
	The hourly value is held constant over the sub hourly steps of its hour.
	A missing holiday pattern falls back to the weekday pattern.
*/
func _expand_pattern(patterns DayPatternsData, calendar []string, itv Interval, is_zero_one bool) []float64 {

	weekday := patterns.Weekday
	if len(weekday) != 24 {
		panic(fmt.Sprintf("weekday pattern must have 24 hourly values: %d", len(weekday)))
	}

	holiday := patterns.Holiday
	if len(holiday) == 0 {
		holiday = weekday
	}
	if len(holiday) != 24 {
		panic(fmt.Sprintf("holiday pattern must have 24 hourly values: %d", len(holiday)))
	}

	if is_zero_one {
		weekday = convert_to_zero_one(weekday)
		holiday = convert_to_zero_one(holiday)
	}

	pattern_map := map[string][]float64{
		DayTypeWeekday: weekday,
		DayTypeHoliday: holiday,
	}

	n_hour := itv.get_n_hour()

	d := make([]float64, 0, 365*24*n_hour)
	for i := 0; i < 365; i++ {
		p := pattern_map[calendar[i]]
		for h := 0; h < 24; h++ {
			for k := 0; k < n_hour; k++ {
				d = append(d, p[h])
			}
		}
	}

	return d
}

func convert_to_zero_one(scd []float64) []float64 {
	data := make([]float64, len(scd))
	for i := 0; i < len(scd); i++ {
		if scd[i] > 0.0 {
			data[i] = 1.0
		} else {
			data[i] = 0.0
		}
	}
	return data
}

/*
Save the expanded schedules as CSV files.

Args:
	output_data_dir: directory the CSV files are written to
*/
func (self *Schedule) save_schedule(output_data_dir string) {

	f := func(varname, filename string, data *mat.Dense) {
		path := filepath.Join(output_data_dir, filename)
		log.Infof("Save %s to `%s`", varname, path)

		r, c := data.Dims()
		stringData := make([][]string, r)
		for i := 0; i < r; i++ {
			stringData[i] = make([]string, c)
			for j, value := range data.RawRowView(i) {
				stringData[i][j] = strconv.FormatFloat(value, 'f', -1, 64)
			}
		}

		file, err := os.Create(path)
		if err != nil {
			log.Errorf("Error: %v", err)
			return
		}
		defer file.Close()

		writer := csv.NewWriter(file)

		err = writer.WriteAll(stringData)
		if err != nil {
			log.Errorf("Error: %v", err)
			return
		}

		writer.Flush()
	}

	f("r_opr_is_ns", "mid_data_operation.csv", self.r_opr_is_ns)
	f("theta_set_is_ns", "mid_data_setpoint.csv", self.theta_set_is_ns)
	f("r_rsf_is_ns", "mid_data_resurfacing.csv", self.r_rsf_is_ns)
	f("r_spc_ns", "mid_data_spectators.csv", mat.NewDense(1, len(self.r_spc_ns), self.r_spc_ns))
}

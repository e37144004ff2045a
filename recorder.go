package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

/*
Step by step calculation results.

Instantaneous series hold the state the step settled at. Average and
integral series hold per step loads and energies.
*/
type Recorder struct {
	YEAR       int
	_itv       Interval
	_id_sys_is []int
	_n_step_a  int

	// hall series
	theta_r_ns  []float64 // hall air temperature, degree C, [n]
	h_r_ns      []float64 // hall air relative humidity, %, [n]
	theta_dp_ns []float64 // hall air dew point temperature, degree C, [n]

	// per system instantaneous series
	operation_mode_is_ns [][]float64 // operating state, [i, n]
	m_dot_f_is_ns        [][]float64 // fluid mass flow rate, kg/s, [i, n]
	theta_f_out_is_ns    [][]float64 // fluid outlet temperature, degree C, [i, n]
	theta_srf_is_ns      [][]float64 // ice surface temperature, degree C, [i, n]
	q_src_is_ns          [][]float64 // source heat, W, [i, n]
	eps_is_ns            [][]float64 // heat exchange effectiveness, [i, n]

	// per system average and integral series
	q_cool_is_ns  [][]float64 // cooling power drawn from the floor, W, [i, n]
	e_cool_is_ns  [][]float64 // cooling energy of the step, MJ, [i, n]
	q_rsf_is_ns   [][]float64 // resurfacing flood heat, kJ, [i, n]
	q_hum_is_ns   [][]float64 // resurfacing humidity load, kJ, [i, n]
	e_hw_is_ns    [][]float64 // resurfacing water heating energy, kJ, [i, n]
	q_spc_is_ns   [][]float64 // spectator heat gain, W, [i, n]
	n_spc_is_ns   [][]float64 // number of spectators, [i, n]
}

func NewRecorder(n_step_main int, id_sys_is []int, itv Interval) *Recorder {
	var r Recorder

	r.YEAR = 1989
	r._itv = itv
	r._id_sys_is = id_sys_is
	r._n_step_a = n_step_main

	n_sys := len(id_sys_is)

	alloc := func(n_sys int) [][]float64 {
		d := make([][]float64, n_sys)
		for i := range d {
			d[i] = make([]float64, r._n_step_a)
		}
		return d
	}

	r.theta_r_ns = make([]float64, r._n_step_a)
	r.h_r_ns = make([]float64, r._n_step_a)
	r.theta_dp_ns = make([]float64, r._n_step_a)

	r.operation_mode_is_ns = alloc(n_sys)
	r.m_dot_f_is_ns = alloc(n_sys)
	r.theta_f_out_is_ns = alloc(n_sys)
	r.theta_srf_is_ns = alloc(n_sys)
	r.q_src_is_ns = alloc(n_sys)
	r.eps_is_ns = alloc(n_sys)

	r.q_cool_is_ns = alloc(n_sys)
	r.e_cool_is_ns = alloc(n_sys)
	r.q_rsf_is_ns = alloc(n_sys)
	r.q_hum_is_ns = alloc(n_sys)
	r.e_hw_is_ns = alloc(n_sys)
	r.q_spc_is_ns = alloc(n_sys)
	r.n_spc_is_ns = alloc(n_sys)

	return &r
}

/*
Copy the boundary conditions known before the loop into the result series.

Args:
	aa: arena air
	scd: schedules
	ss: refrigeration systems
*/
func (self *Recorder) pre_recording(aa *ArenaAir, scd *Schedule, ss *RinkSystems) {

	// the prepared annual data can be longer than the run period
	copy(self.theta_r_ns, aa.theta_r_ns[0:self._n_step_a])
	copy(self.h_r_ns, aa.h_r_ns[0:self._n_step_a])
	copy(self.theta_dp_ns, aa.theta_dp_ns[0:self._n_step_a])

	for n := 0; n < self._n_step_a; n++ {
		q_spc_is_n := get_q_spc_is_n(ss, scd.r_spc_ns[n])
		n_spc_is_n := get_n_spc_is_n(ss, scd.r_spc_ns[n])
		for i := 0; i < len(self._id_sys_is); i++ {
			self.q_spc_is_ns[i][n] = q_spc_is_n[i]
			self.n_spc_is_ns[i][n] = n_spc_is_n[i]
		}
	}
}

/*
Write the state of step n into the result series.

Args:
	n: step (steps of the run up period are negative and are not recorded)
	c_n: conditions the step settled at
	eps_is_n: heat exchange effectiveness of system i, [i]
	q_rsf_is_n: resurfacing flood heat of system i, kJ, [i]
	q_hum_is_n: resurfacing humidity load of system i, kJ, [i]
	e_hw_is_n: resurfacing water heating energy of system i, kJ, [i]
*/
func (self *Recorder) recording(
	n int,
	c_n *Conditions,
	eps_is_n []float64,
	q_rsf_is_n []float64,
	q_hum_is_n []float64,
	e_hw_is_n []float64,
) {
	if n < 0 {
		return
	}

	for i := range self._id_sys_is {
		self.operation_mode_is_ns[i][n] = float64(c_n.operation_mode_is_n[i])
		self.m_dot_f_is_ns[i][n] = c_n.m_dot_f_is_n[i]
		self.theta_f_out_is_ns[i][n] = c_n.theta_f_out_is_n[i]
		self.theta_srf_is_ns[i][n] = c_n.theta_srf_is_n[i]
		self.q_src_is_ns[i][n] = c_n.q_src_is_n[i]
		self.eps_is_ns[i][n] = eps_is_n[i]
		self.q_rsf_is_ns[i][n] = q_rsf_is_n[i]
		self.q_hum_is_ns[i][n] = q_hum_is_n[i]
		self.e_hw_is_ns[i][n] = e_hw_is_n[i]
	}
}

/*
Derive the series that follow from the recorded state.
*/
func (self *Recorder) post_recording() {

	delta_t := self._itv.get_delta_t()

	for i := range self._id_sys_is {
		for n := 0; n < self._n_step_a; n++ {
			// cooling power is the heat drawn from the floor
			q_cool := math.Max(-self.q_src_is_ns[i][n], 0.0)
			self.q_cool_is_ns[i][n] = q_cool
			self.e_cool_is_ns[i][n] = q_cool * delta_t / 1.0e6
		}
	}
}

/*
Save the instantaneous results and the per step loads as CSV files.

Args:
	output_data_dir: directory the CSV files are written to
*/
func (self *Recorder) export_csv(output_data_dir string) {

	self._export(
		filepath.Join(output_data_dir, "result_detail_i.csv"),
		[]string{"theta_r", "h_r", "theta_dp"},
		[][]float64{self.theta_r_ns, self.h_r_ns, self.theta_dp_ns},
		[]string{"operation_mode", "m_dot_f", "theta_f_out", "theta_srf", "q_src", "eps"},
		[][][]float64{
			self.operation_mode_is_ns,
			self.m_dot_f_is_ns,
			self.theta_f_out_is_ns,
			self.theta_srf_is_ns,
			self.q_src_is_ns,
			self.eps_is_ns,
		},
	)

	self._export(
		filepath.Join(output_data_dir, "result_detail_a.csv"),
		nil,
		nil,
		[]string{"q_cool", "e_cool", "q_rsf", "q_hum", "e_hw", "q_spc", "n_spc"},
		[][][]float64{
			self.q_cool_is_ns,
			self.e_cool_is_ns,
			self.q_rsf_is_ns,
			self.q_hum_is_ns,
			self.e_hw_is_ns,
			self.q_spc_is_ns,
			self.n_spc_is_ns,
		},
	)

	self._export_summary(filepath.Join(output_data_dir, "result_summary.csv"))
}

/*
Save the annual figures of each system as a CSV file.

Args:
	path: path of the summary CSV file
*/
func (self *Recorder) _export_summary(path string) {

	log.Infof("Save calculation summary to `%s`", path)

	records := [][]string{
		{"system", "q_cool_max", "e_cool", "q_rsf", "q_hum", "e_hw"},
	}

	f := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	for i, id := range self._id_sys_is {
		records = append(records, []string{
			fmt.Sprintf("sys%d", id),
			f(floats.Max(self.q_cool_is_ns[i])),
			f(floats.Sum(self.e_cool_is_ns[i])),
			f(floats.Sum(self.q_rsf_is_ns[i])),
			f(floats.Sum(self.q_hum_is_ns[i])),
			f(floats.Sum(self.e_hw_is_ns[i])),
		})

		log.Infof("sys%d: peak cooling %f W, annual cooling %f MJ",
			id, floats.Max(self.q_cool_is_ns[i]), floats.Sum(self.e_cool_is_ns[i]))
	}

	file, err := os.Create(path)
	if err != nil {
		log.Errorf("Error: %v", err)
		return
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	err = writer.WriteAll(records)
	if err != nil {
		log.Errorf("Error: %v", err)
		return
	}

	writer.Flush()
}

func (self *Recorder) _export(
	path string,
	common_names []string,
	common_series [][]float64,
	sys_names []string,
	sys_series [][][]float64,
) {
	log.Infof("Save calculation results to `%s`", path)

	header := []string{"time"}
	header = append(header, common_names...)
	for _, id := range self._id_sys_is {
		for _, name := range sys_names {
			header = append(header, fmt.Sprintf("sys%d_%s", id, name))
		}
	}

	start := time.Date(self.YEAR, 1, 1, 0, 0, 0, 0, time.UTC)
	minutes := self._itv.get_minutes()

	records := make([][]string, 0, self._n_step_a+1)
	records = append(records, header)
	for n := 0; n < self._n_step_a; n++ {
		row := make([]string, 0, len(header))
		t := start.Add(time.Duration(n*minutes) * time.Minute)
		row = append(row, t.Format("2006-01-02 15:04:05"))
		for _, s := range common_series {
			row = append(row, strconv.FormatFloat(s[n], 'f', -1, 64))
		}
		for i := range self._id_sys_is {
			for _, s := range sys_series {
				row = append(row, strconv.FormatFloat(s[i][n], 'f', -1, 64))
			}
		}
		records = append(records, row)
	}

	file, err := os.Create(path)
	if err != nil {
		log.Errorf("Error: %v", err)
		return
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	err = writer.WriteAll(records)
	if err != nil {
		log.Errorf("Error: %v", err)
		return
	}

	writer.Flush()
}

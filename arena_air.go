package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

/*
Indoor climate of the arena hall over the year.

The hall air state is a boundary condition of the rink calculation. It is
either read from an hourly CSV file or synthesized from a constant climate
given in the input file.
*/
type ArenaAir struct {
	theta_r_ns  []float64 // hall air temperature in step n, degree C, [n]
	h_r_ns      []float64 // hall air relative humidity in step n, %, [n]
	theta_dp_ns []float64 // hall air dew point temperature in step n, degree C, [n]
	_itv        Interval  // time interval
}

/*
Args
	theta_r_ns: hall air temperature in step n, degree C, [n]
	h_r_ns: hall air relative humidity in step n, %, [n]
	itv: time interval
*/
func NewArenaAir(theta_r_ns []float64, h_r_ns []float64, itv Interval) *ArenaAir {

	theta_dp_ns := make([]float64, len(theta_r_ns))
	for i := range theta_r_ns {
		p_v := get_p_vs(theta_r_ns[i]) * h_r_ns[i] / 100.0
		theta_dp_ns[i] = get_theta_dp(p_v)
	}

	return &ArenaAir{
		theta_r_ns:  theta_r_ns,
		h_r_ns:      h_r_ns,
		theta_dp_ns: theta_dp_ns,
		_itv:        itv,
	}
}

func make_arena_air(method string, itv Interval, file_path string, common CommonData) *ArenaAir {
	if method == "file" {
		log.Infof("Load arena air data from `%s`", file_path)
		return _make_from_csv(file_path, itv)
	} else if method == "default" {
		log.Infof("make arena air data from the constant indoor climate")
		return _make_constant(common, itv)
	} else {
		panic(method)
	}
}

// number of data points over the year
func (self *ArenaAir) number_of_data() int {
	return self._itv.get_n_hour() * 8760
}

// hall air temperature in step nn, degree C
func (self *ArenaAir) get_theta_r(nn int) float64 {
	return self.theta_r_ns[nn]
}

// hall air relative humidity in step nn, %
func (self *ArenaAir) get_h_r(nn int) float64 {
	return self.h_r_ns[nn]
}

// hall air dew point temperature in step nn, degree C
func (self *ArenaAir) get_theta_dp(nn int) float64 {
	return self.theta_dp_ns[nn]
}

type ArenaAirDataRow struct {
	Temperature      float64 `csv:"temperature"`
	RelativeHumidity float64 `csv:"relative_humidity"`
}

/*
Read the hall climate from an hourly CSV file.

Args
	file_path: path of the CSV file (8760 rows)
	itv: time interval

Returns
	ArenaAir
*/
func _make_from_csv(file_path string, itv Interval) *ArenaAir {

	if _, err := os.Stat(file_path); os.IsNotExist(err) {
		panic(fmt.Sprintf("Error File %s is not exist.", file_path))
	}

	file, err := os.Open(file_path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	var pp []*ArenaAirDataRow

	if err := gocsv.UnmarshalFile(file, &pp); err != nil {
		panic(err)
	}

	if len(pp) != 8760 {
		panic("Error Row length of the file should be 8760.")
	}

	f := func(getc func(row *ArenaAirDataRow) float64) []float64 {
		var ret []float64 = make([]float64, len(pp))
		for i := range pp {
			ret[i] = getc(pp[i])
		}
		return ret
	}

	// hall air temperature, degree C
	theta_r_ns := _interpolate(
		f(func(row *ArenaAirDataRow) float64 {
			return row.Temperature
		}),
		itv,
		false,
	)

	// hall air relative humidity, %
	h_r_ns := _interpolate(
		f(func(row *ArenaAirDataRow) float64 {
			return row.RelativeHumidity
		}),
		itv,
		false,
	)
	for i, v := range h_r_ns {
		if v < 0.0 {
			h_r_ns[i] = 0.0
		} else if v > 100.0 {
			h_r_ns[i] = 100.0
		}
	}

	return NewArenaAir(theta_r_ns, h_r_ns, itv)
}

/*
Synthesize a constant hall climate from the input file.

Args
	common: common input block
	itv: time interval

Returns
	ArenaAir
*/
func _make_constant(common CommonData, itv Interval) *ArenaAir {

	theta := common.Arena.AirTemperature
	h := common.Arena.AirRelativeHumidity

	if h < 0.0 || h > 100.0 {
		panic(fmt.Sprintf("arena air relative humidity must be between 0 %% and 100 %%: %f", h))
	}

	n := itv.get_annual_number()

	theta_r_ns := make([]float64, n)
	h_r_ns := make([]float64, n)
	for i := 0; i < n; i++ {
		theta_r_ns[i] = theta
		h_r_ns[i] = h
	}

	return NewArenaAir(theta_r_ns, h_r_ns, itv)
}

/*
Interpolate hourly data of one year to the given interval.
"1h" -> n = 8760
"30m" -> n = 8760 * 2 = 17520
"15m" -> n = 8760 * 4 = 35040

Args
	data: hourly data, [8760]
	interval: interval of the generated data
	rolling: set true when the file starts at 1:00 so that the last row
		(12/31 24:00) is moved to 1/1 0:00

Returns
	data interpolated to the interval, [n]
*/
func _interpolate(data []float64, interval Interval, rolling bool) []float64 {
	if interval == IntervalH1 {

		if rolling {
			return roll(data, 1)
		} else {
			return data
		}
	} else {
		// interpolation weights
		alpha := map[Interval][]float64{
			IntervalM30: {1.0, 0.5},
			IntervalM15: {1.0, 0.75, 0.5, 0.25},
		}[interval]

		var data1, data2 []float64
		if rolling {
			data1 = roll(data, 1)
			data2 = data
		} else {
			data1 = data
			data2 = roll(data, -1)
		}

		ndata := len(data1)
		nalpha := len(alpha)
		n := len(data1) * nalpha
		data_interp_1d := make([]float64, n)
		off := 0
		for i := 0; i < ndata; i++ {
			for j := 0; j < nalpha; j++ {
				data_interp_1d[off] = alpha[j]*data1[i] + (1.0-alpha[j])*data2[i]
				off++
			}
		}

		return data_interp_1d
	}
}

func roll(slice []float64, shift int) []float64 {
	length := len(slice)
	shift %= length
	if shift < 0 {
		shift += length
	}
	result := make([]float64, 0, length)
	result = append(result, slice[length-shift:]...)
	result = append(result, slice[:length-shift]...)
	return result
}

/*
Save the hall air state as a CSV file.

Args
	output_data_dir: directory the CSV file is written to
*/
func (self *ArenaAir) save_arena_air(output_data_dir string) {

	path := filepath.Join(output_data_dir, "mid_data_arena.csv")
	log.Infof("Save arena air data to `%s`", path)

	series := [][]float64{self.theta_r_ns, self.h_r_ns, self.theta_dp_ns}

	stringData := make([][]string, len(series))
	for i, s := range series {
		stringData[i] = make([]string, len(s))
		for j, value := range s {
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

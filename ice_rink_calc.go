package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

type Config struct {
	RinkDataPath       string
	OutputDataDir      string
	IsScheduleSaved    bool
	ArenaSpecifyMethod string
	ArenaFilePath      string
	IsArenaSaved       bool
}

/*
Run the annual rink calculation.

    Args:
        rink_data_path (str): path of the rink condition JSON file
        output_data_dir (str): path of the output directory
        is_schedule_saved: save the expanded schedules or not
        arena_specify_method: how the hall air state is given ("file" or "default")
        arena_file_path: path of the hourly hall air CSV file
        is_arena_saved: save the hall air state or not
        itv: time interval
        n_d_main: days of the main calculation, d
        n_d_run_up: days of the run up calculation, d
*/
func run(
	rink_data_path string,
	output_data_dir string,
	is_schedule_saved bool,
	arena_specify_method string,
	arena_file_path string,
	is_arena_saved bool,
	itv Interval,
	n_d_main int,
	n_d_run_up int,
) {
	// ---- preparation ----

	// make the output directory
	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		os.Mkdir(output_data_dir, 0755)
	}

	_, err := os.Stat(output_data_dir)
	if os.IsNotExist(err) {
		log.Fatalf("`%s` is not a directory", output_data_dir)
	}

	// read the rink condition JSON file
	log.Info("Load rink condition JSON file")
	rd := load_rink_input(rink_data_path)

	// hall air state => mid_data_arena.csv
	log.Info("Prepare hall air state")
	aa := make_arena_air(arena_specify_method, itv, arena_file_path, rd.Common)

	log.Info("Prepare schedules")
	scd := get_schedule(itv, rd.Common, rd.Rinks)

	// ---- calculation ----

	result := calc(rd, aa, scd, itv, n_d_main, n_d_run_up)

	// save the hall air state
	if is_arena_saved {

		aa.save_arena_air(output_data_dir)
	}

	// save the expanded schedules
	if is_schedule_saved {

		scd.save_schedule(output_data_dir)
	}

	// ---- save results ----

	result.export_csv(output_data_dir)
}

/*
Annual calculation with a run up period.

    Args:
        rd: rink calculation conditions
        aa: hall air state
        scd: schedules
        itv: time interval
        n_d_main: days of the main calculation (default 365, one year), d
        n_d_run_up: days of the run up calculation (default 30), d

    Returns:
        Recorder with the results of the main calculation

    Notes:
        Steps of the run up period take their boundary conditions from the
        end of the annual data so that the state entering 1/1 0:00 matches
        the state leaving 12/31 24:00.
*/
func calc(
	rd *RinkInput,
	aa *ArenaAir,
	scd *Schedule,
	itv Interval,
	n_d_main int,
	n_d_run_up int,
) *Recorder {
	log.Info("Start calculation")

	n_hour := itv.get_n_hour()

	// steps of the main calculation
	n_step_main := n_d_main * 24 * n_hour

	// steps of the run up calculation
	n_step_run_up := n_d_run_up * 24 * n_hour

	sqc := NewSequence(itv, rd, aa, scd)

	result := NewRecorder(n_step_main, sqc.ss.get_id_sys_is(), itv)

	result.pre_recording(aa, scd, sqc.ss)

	// initial state of the systems
	c_n := initialize_conditions(sqc.ss.n_sys)

	// heat to be removed to freeze the initial flood of each sheet
	for _, rs := range sqc.ss.sys {
		q_frz := get_q_freezing(rs.get_v_flood(), rs.theta_fld, rs.theta_set_ice)
		log.Infof("initial freezing load of `%s`: %f kJ", rs.name, q_frz)
	}

	log.Info("Run up calculation")

	N := aa.number_of_data()

	nn := N - n_step_run_up
	for n := -n_step_run_up; n < 0; n++ {
		c_n = sqc.run_tick(n, nn, c_n, result)
		nn++
	}

	log.Info("Main calculation")

	m := 1
	for n := 0; n < n_step_main; n++ {
		c_n = sqc.run_tick(n, n, c_n, result)

		if n == int(float64(n_step_main)/12*float64(m)) {
			log.Printf("%d / 12 calculated.", m)
			m++
		}
	}

	result.post_recording()

	return result
}

func main() {
	var rink_data string
	flag.StringVar(&rink_data, "input", "example/rink_example1.json", "rink condition JSON file to calculate")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", ".", "output directory")

	var schedule_saved bool
	flag.BoolVar(&schedule_saved, "schedule_saved", false, "save the expanded schedules or not")

	var arena string
	flag.StringVar(&arena, "arena", "default", "how the hall air state is given (\"file\" or \"default\")")

	var arena_path string
	flag.StringVar(&arena_path, "arena_path", "", "path of the hourly hall air CSV file, required when the arena option is \"file\"")

	var arena_saved bool
	flag.BoolVar(&arena_saved, "arena_saved", false, "save the hall air state or not")

	var setting_path string
	flag.StringVar(&setting_path, "setting", "", "INI file overriding the calculation settings")

	var logLevel string
	flag.StringVar(&logLevel, "log", "INFO", "log level (Default=INFO)")

	// receive the arguments
	flag.Parse()

	// calculation settings, possibly overridden by the settings file
	interval := "15m"
	n_d_main := 365
	n_d_run_up := 30

	if setting_path != "" {
		cfg, err := ini.Load(setting_path)
		if err != nil {
			log.Fatalf("fail to load `%s`: %v", setting_path, err)
		}
		sec := cfg.Section("calc")
		interval = sec.Key("interval").MustString(interval)
		n_d_main = sec.Key("days_main").MustInt(n_d_main)
		n_d_run_up = sec.Key("days_run_up").MustInt(n_d_run_up)
		logLevel = cfg.Section("log").Key("level").MustString(logLevel)
	}

	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Fatalf("invalid log level: %s", logLevel)
	}
	log.SetLevel(level)

	// Print flag values
	fmt.Printf("rink_data: %s\n", rink_data)
	fmt.Printf("output_data_dir: %s\n", output_data_dir)
	fmt.Printf("schedule_saved: %t\n", schedule_saved)
	fmt.Printf("arena: %s\n", arena)
	fmt.Printf("arena_path: %s\n", arena_path)
	fmt.Printf("arena_saved: %t\n", arena_saved)
	fmt.Printf("interval: %s\n", interval)
	fmt.Printf("days: %d + %d\n", n_d_main, n_d_run_up)

	start := time.Now()

	run(
		rink_data,
		output_data_dir,
		schedule_saved,
		arena,
		arena_path,
		arena_saved,
		parse_interval(interval),
		n_d_main,
		n_d_run_up,
	)

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}

package main

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// NOTE: fields whose JSON key is missing are left at their zero value.

type RinkInput struct {
	Common CommonData `json:"common"`
	Rinks  []RinkData `json:"rinks"`
}

type CommonData struct {

	// day type per day of the run period ("weekday" | "holiday"); empty means all weekday
	Calendar []string `json:"calendar"`

	Arena struct {
		AirTemperature      float64 `json:"air_temperature"`
		AirRelativeHumidity float64 `json:"air_relative_humidity"`
	} `json:"arena"`

	SpectatorsSchedule DayPatternsData `json:"spectators_schedule"`
}

// Hourly daily patterns selected by the day type calendar.
type DayPatternsData struct {
	Weekday []float64 `json:"weekday"`
	Holiday []float64 `json:"holiday"`
}

type RinkData struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	SystemType string `json:"system_type"`

	Construction struct {
		Length                 float64 `json:"length"`
		Width                  float64 `json:"width"`
		WaterDepth             float64 `json:"water_depth"`
		IceThickness           float64 `json:"ice_thickness"`
		IceSetpointTemperature float64 `json:"ice_setpoint_temperature"`
		FloodWaterTemperature  float64 `json:"flood_water_temperature"`
	} `json:"construction"`

	Tubes struct {
		Diameter                 float64 `json:"diameter"`
		Length                   float64 `json:"length"`
		CircuitCalculationMethod string  `json:"circuit_calculation_method"`
		CircuitLength            float64 `json:"circuit_length"`
	} `json:"tubes"`

	Fluid struct {
		BrineType         string  `json:"brine_type"`
		Concentration     float64 `json:"concentration"`
		SupplyTemperature float64 `json:"supply_temperature"`
	} `json:"fluid"`

	Flow struct {
		MassFlowRateMax float64 `json:"mass_flow_rate_max"`
		MassFlowRateMin float64 `json:"mass_flow_rate_min"`
	} `json:"flow"`

	Control struct {
		ControlType         string  `json:"control_type"`
		ThrottlingRange     float64 `json:"throttling_range"`
		CondensationControl struct {
			Type           string  `json:"type"`
			DewPointOffset float64 `json:"dew_point_offset"`
		} `json:"condensation_control"`
	} `json:"control"`

	SurfaceCoefficients struct {
		CA float64 `json:"c_a"`
		CB float64 `json:"c_b"`
		CC float64 `json:"c_c"`
		CD float64 `json:"c_d"`
		CE float64 `json:"c_e"`
		CF float64 `json:"c_f"`
		CG float64 `json:"c_g"`
		CH float64 `json:"c_h"`
		CI float64 `json:"c_i"`
		CJ float64 `json:"c_j"`
	} `json:"surface_coefficients"`

	Spectators struct {
		NumberMax         float64 `json:"number_max"`
		HeatGainPerPerson float64 `json:"heat_gain_per_person"`
	} `json:"spectators"`

	Resurfacer struct {
		TankCapacity            float64 `json:"tank_capacity"`
		HotWaterTemperature     float64 `json:"hot_water_temperature"`
		InitialWaterTemperature float64 `json:"initial_water_temperature"`
	} `json:"resurfacer"`

	Schedule struct {
		Operation   DayPatternsData `json:"operation"`
		Setpoint    DayPatternsData `json:"setpoint"`
		Resurfacing DayPatternsData `json:"resurfacing"`
	} `json:"schedule"`
}

/*
Load the rink calculation input file.

    Args:
        path: path of the input JSON file, or a http(s) URL

    Returns:
        RinkInput
*/
func load_rink_input(path string) *RinkInput {

	var bytes []byte

	if strings.HasPrefix(path, "http") {
		resp, err := http.Get(path)
		if err != nil {
			log.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			log.Fatal(err)
		}
		bytes = body
	} else {
		file, err := os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		body, err := ioutil.ReadAll(file)
		if err != nil {
			log.Fatal(err)
		}
		bytes = body
	}

	var rd RinkInput
	if err := json.Unmarshal(bytes, &rd); err != nil {
		log.Fatalf("failed to parse the input file `%s`: %v", path, err)
	}

	return &rd
}

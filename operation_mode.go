package main

import "fmt"

// Refrigeration system type.
type SystemType string

const (
	SystemDirect   SystemType = "direct"   // cold water circulated directly through the floor tubes
	SystemIndirect SystemType = "indirect" // brine loop with a heat exchanger
)

// Flow rate control strategy.
type ControlType string

const (
	ControlBrineOutletTemperature ControlType = "brine_outlet_temperature" // BOTC : outlet temperature held at its setpoint
	ControlIceSurfaceTemperature  ControlType = "ice_surface_temperature"  // STC : ice surface temperature held at its setpoint
)

// Brine circulated in an indirect system.
type BrineType string

const (
	BrineCaCl2          BrineType = "cacl2"           // calcium chloride solution
	BrineEthyleneGlycol BrineType = "ethylene_glycol" // ethylene glycol solution
)

// How the number of parallel tube circuits is obtained.
type CircuitCalcMethod string

const (
	CircuitOne        CircuitCalcMethod = "one_circuit"           // the whole tube length forms a single circuit
	CircuitFromLength CircuitCalcMethod = "calculate_from_length" // tube length divided by the length per circuit
)

// Flow shutoff behaviour when the hall air dew point reaches the floor surface.
type CondensationControl string

const (
	CondensationNone      CondensationControl = "none"       // no condensation control
	CondensationSimpleOff CondensationControl = "simple_off" // flow fully shut off on condensation
	CondensationVariedOff CondensationControl = "varied_off" // flow reduced in proportion to the dew point margin
)

// Operating state of a refrigeration system in the current step.
type OperationMode int

const (
	NotOperating OperationMode = iota + 1 // NotOperating : flow stopped
	CoolingMode                           // CoolingMode : heat extracted from the floor
)

func (m OperationMode) String() string {
	switch m {
	case NotOperating:
		return "not_operating"
	case CoolingMode:
		return "cooling"
	default:
		return "unknown"
	}
}

func parse_system_type(s string) SystemType {
	switch SystemType(s) {
	case SystemDirect, SystemIndirect:
		return SystemType(s)
	default:
		panic(fmt.Sprintf("invalid system type: %s", s))
	}
}

func parse_control_type(s string) ControlType {
	switch ControlType(s) {
	case ControlBrineOutletTemperature, ControlIceSurfaceTemperature:
		return ControlType(s)
	default:
		panic(fmt.Sprintf("invalid control type: %s", s))
	}
}

func parse_brine_type(s string) BrineType {
	switch BrineType(s) {
	case BrineCaCl2, BrineEthyleneGlycol:
		return BrineType(s)
	default:
		panic(fmt.Sprintf("invalid brine type: %s", s))
	}
}

func parse_circuit_calc_method(s string) CircuitCalcMethod {
	switch CircuitCalcMethod(s) {
	case CircuitOne, CircuitFromLength:
		return CircuitCalcMethod(s)
	default:
		panic(fmt.Sprintf("invalid circuit calculation method: %s", s))
	}
}

func parse_condensation_control(s string) CondensationControl {
	switch CondensationControl(s) {
	case CondensationNone, CondensationSimpleOff, CondensationVariedOff:
		return CondensationControl(s)
	default:
		panic(fmt.Sprintf("invalid condensation control type: %s", s))
	}
}

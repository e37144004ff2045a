package main

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

/*
One refrigerated floor system serving an ice sheet.
*/
type RinkSystem struct {
	id   int
	name string

	sys_type SystemType

	// geometry
	l_rink float64 // rink length, m
	w_rink float64 // rink width, m
	d_wtr  float64 // water depth of the sheet used for the moisture volume, m
	d_ice  float64 // ice thickness, m
	a_srf  float64 // refrigerated floor surface area, m2

	theta_set_ice float64 // design ice setpoint used for the initial freezing load, degree C
	theta_fld     float64 // initial flood water temperature, degree C

	// tubes
	d_tube float64 // tube inner diameter, m
	l_tube float64 // total tube length, m
	n_circ int     // number of parallel tube circuits

	props *FluidProperties

	theta_f_in float64 // fluid supply temperature delivered by the plant, degree C

	// flow limits
	m_dot_max float64 // maximum fluid mass flow rate, kg/s
	m_dot_min float64 // minimum fluid mass flow rate, kg/s

	// control
	ctrl_type  ControlType
	dtr        float64 // throttling range, K
	cond_ctrl  CondensationControl
	theta_cond float64 // offset added to the dew point for condensation control, K

	floor *RinkFloor

	// spectators
	n_spc_max float64 // seat capacity of the stand
	q_spc_per float64 // heat gain per spectator, W

	resurfacer *Resurfacer
}

/*
All refrigeration systems of the arena.
*/
type RinkSystems struct {
	sys   []*RinkSystem
	n_sys int
}

/*
Build the refrigeration systems from the input data.

    Args:
        rds: per system input data

    Returns:
        RinkSystems

    Notes:
        Configuration errors are unrecoverable and panic with a message
        naming the offending field.
*/
func NewRinkSystems(rds []RinkData) *RinkSystems {

	if len(rds) == 0 {
		panic("no rink system is defined in the input file")
	}

	sys := make([]*RinkSystem, len(rds))
	for i, rd := range rds {
		sys[i] = _create_rink_system(rd)
	}

	return &RinkSystems{
		sys:   sys,
		n_sys: len(sys),
	}
}

// Ids of the systems in input order, [i].
func (self *RinkSystems) get_id_sys_is() []int {
	ids := make([]int, self.n_sys)
	for i, s := range self.sys {
		ids[i] = s.id
	}
	return ids
}

func _create_rink_system(rd RinkData) *RinkSystem {

	sys_type := parse_system_type(rd.SystemType)

	if rd.Construction.Length <= 0.0 || rd.Construction.Width <= 0.0 {
		panic(fmt.Sprintf("rink `%s`: rink length and width must be positive", rd.Name))
	}
	if rd.Construction.IceThickness <= 0.0 {
		panic(fmt.Sprintf("rink `%s`: ice thickness must be positive", rd.Name))
	}
	if rd.Construction.WaterDepth <= 0.0 {
		panic(fmt.Sprintf("rink `%s`: water depth must be positive", rd.Name))
	}

	if rd.Tubes.Diameter <= 0.0 {
		panic(fmt.Sprintf("rink `%s`: tube diameter must be positive", rd.Name))
	}
	if rd.Tubes.Length <= 0.0 {
		panic(fmt.Sprintf("rink `%s`: tube length must be positive", rd.Name))
	}

	n_circ := _get_n_circ(
		parse_circuit_calc_method(rd.Tubes.CircuitCalculationMethod),
		rd.Tubes.Length,
		rd.Tubes.CircuitLength,
		rd.Name,
	)

	var props *FluidProperties
	switch sys_type {
	case SystemDirect:
		props = NewFluidPropertiesWater()
	case SystemIndirect:
		props = NewFluidPropertiesBrine(parse_brine_type(rd.Fluid.BrineType), rd.Fluid.Concentration)
	}

	if rd.Flow.MassFlowRateMax <= 0.0 {
		panic(fmt.Sprintf("rink `%s`: maximum mass flow rate must be positive", rd.Name))
	}
	if rd.Flow.MassFlowRateMin < 0.0 {
		panic(fmt.Sprintf("rink `%s`: minimum mass flow rate must not be negative", rd.Name))
	}
	if rd.Flow.MassFlowRateMin > rd.Flow.MassFlowRateMax {
		panic(fmt.Sprintf("rink `%s`: minimum mass flow rate exceeds the maximum", rd.Name))
	}

	ctrl_type := parse_control_type(rd.Control.ControlType)

	dtr := rd.Control.ThrottlingRange
	if dtr < get_throttling_range_min() {
		log.Warnf("rink `%s`: throttling range %.2f K is below the allowed minimum. %.1f K is used.",
			rd.Name, dtr, get_throttling_range_min())
		dtr = get_throttling_range_min()
	}

	cond_ctrl := CondensationNone
	if rd.Control.CondensationControl.Type != "" {
		cond_ctrl = parse_condensation_control(rd.Control.CondensationControl.Type)
	}

	c := rd.SurfaceCoefficients
	floor := NewRinkFloor(c.CA, c.CB, c.CC, c.CD, c.CE, c.CF, c.CG, c.CH, c.CI, c.CJ)

	if ctrl_type == ControlIceSurfaceTemperature {
		if math.Abs(c.CC+c.CB*c.CF) < 1.0e-9 {
			panic(fmt.Sprintf("rink `%s`: floor coefficients cannot resolve the ice surface setpoint", rd.Name))
		}
	}

	if rd.Spectators.NumberMax < 0.0 || rd.Spectators.HeatGainPerPerson < 0.0 {
		panic(fmt.Sprintf("rink `%s`: spectator capacity and heat gain must not be negative", rd.Name))
	}

	return &RinkSystem{
		id:            rd.Id,
		name:          rd.Name,
		sys_type:      sys_type,
		l_rink:        rd.Construction.Length,
		w_rink:        rd.Construction.Width,
		d_wtr:         rd.Construction.WaterDepth,
		d_ice:         rd.Construction.IceThickness,
		a_srf:         rd.Construction.Length * rd.Construction.Width,
		theta_set_ice: rd.Construction.IceSetpointTemperature,
		theta_fld:     rd.Construction.FloodWaterTemperature,
		d_tube:        rd.Tubes.Diameter,
		l_tube:        rd.Tubes.Length,
		n_circ:        n_circ,
		props:         props,
		theta_f_in:    rd.Fluid.SupplyTemperature,
		m_dot_max:     rd.Flow.MassFlowRateMax,
		m_dot_min:     rd.Flow.MassFlowRateMin,
		ctrl_type:     ctrl_type,
		dtr:           dtr,
		cond_ctrl:     cond_ctrl,
		theta_cond:    rd.Control.CondensationControl.DewPointOffset,
		floor:         floor,
		n_spc_max:     rd.Spectators.NumberMax,
		q_spc_per:     rd.Spectators.HeatGainPerPerson,
		resurfacer: NewResurfacer(
			rd.Resurfacer.TankCapacity,
			rd.Resurfacer.HotWaterTemperature,
			rd.Resurfacer.InitialWaterTemperature,
		),
	}
}

/*
Number of parallel tube circuits.

    Args:
        method: circuit calculation method
        l_tube: total tube length, m
        l_circ: tube length per circuit, m
        name: system name, used in error messages

    Returns:
        number of circuits (at least 1)
*/
func _get_n_circ(method CircuitCalcMethod, l_tube float64, l_circ float64, name string) int {

	switch method {
	case CircuitOne:
		return 1
	case CircuitFromLength:
		if l_circ <= 0.0 {
			panic(fmt.Sprintf("rink `%s`: circuit length must be positive", name))
		}
		n := int(l_tube / l_circ)
		if n < 1 {
			n = 1
		}
		return n
	default:
		panic(fmt.Sprintf("rink `%s`: invalid circuit calculation method", name))
	}
}

/*
Heat exchange effectiveness of the floor tubes at the given state.

    Args:
        theta_f_in: fluid temperature entering the tubes, degree C
        m_dot_f: fluid mass flow rate, kg/s (must be positive)

    Returns:
        eps: heat exchange effectiveness
        c_f: specific heat of the fluid, J/kg K
*/
func (self *RinkSystem) get_eps_and_c(theta_f_in float64, m_dot_f float64) (float64, float64) {

	return get_hx_effectiveness(
		self.props, theta_f_in, m_dot_f, self.l_tube, self.d_tube, float64(self.n_circ))
}

/*
Heat supplied by the fluid loop to the floor over the whole surface.

    Args:
        theta_f_in: fluid temperature entering the tubes, degree C
        m_dot_f: fluid mass flow rate, kg/s
        eps: heat exchange effectiveness
        c_f: specific heat of the fluid, J/kg K

    Returns:
        source heat, W (negative while cooling)
*/
func (self *RinkSystem) get_q_src(theta_f_in float64, m_dot_f float64, eps float64, c_f float64) float64 {

	return (theta_f_in - self.floor.c_k) /
		(self.floor.c_l/self.a_srf + 1.0/get_hx_effect_term(eps, m_dot_f, c_f))
}

/*
Fluid temperature leaving the tubes.

    Args:
        theta_f_in: fluid temperature entering the tubes, degree C
        q_src: source heat, W
        m_dot_f: fluid mass flow rate, kg/s
        c_f: specific heat of the fluid, J/kg K

    Returns:
        fluid outlet temperature, degree C
*/
func (self *RinkSystem) get_theta_f_out(theta_f_in float64, q_src float64, m_dot_f float64, c_f float64) float64 {

	return theta_f_in - q_src/(m_dot_f*c_f)
}

// Water volume of the sheet used by the resurfacing moisture model, m3.
func (self *RinkSystem) get_v_rink() float64 {

	return self.l_rink * self.w_rink * self.d_wtr
}

// Flood water volume frozen at the initial build of the ice sheet, m3.
func (self *RinkSystem) get_v_flood() float64 {

	return self.l_rink * self.w_rink * self.d_ice
}

/*
Clamp a requested mass flow rate to the allowed range of the system.

    Args:
        m_dot_req: requested mass flow rate, kg/s

    Returns:
        mass flow rate to be applied, kg/s

    Notes:
        Requests that are zero, negative or non finite shut the flow off.
*/
func (self *RinkSystem) clamp_m_dot(m_dot_req float64) float64 {

	if math.IsNaN(m_dot_req) || math.IsInf(m_dot_req, 0) {
		return 0.0
	}
	if m_dot_req <= 0.0 {
		return 0.0
	}
	if m_dot_req < self.m_dot_min {
		return self.m_dot_min
	}
	if m_dot_req > self.m_dot_max {
		return self.m_dot_max
	}
	return m_dot_req
}

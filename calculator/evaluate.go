package calculator

import (
	"fmt"

	"ptc/htf"
	"ptc/model"
)

// 风速 Reynolds 数所用的物性来源
const (
	WindAir = "air" // 空气物性（默认）
	WindHTF = "htf" // 工质物性
)

// 计算选项
type Options struct {
	WindProperties        string // WindAir 或 WindHTF，空值按 WindAir
	OmitOpticalEfficiency bool   // 有用得热量中不乘光学效率，仅用于复现参考值
	Solver                SolverSettings
}

func DefaultOptions() Options {
	return Options{
		WindProperties: WindAir,
		Solver:         DefaultSolverSettings(),
	}
}

// 对一组输入做一次稳态计算。
// 纯函数：无共享状态，相同输入得到相同输出，可在多个 goroutine 中并发调用。
func Evaluate(in model.Inputs, opts Options) (model.Result, error) {
	geometry, err := NewGeometry(in)
	if err != nil {
		return model.Result{}, err
	}
	capacity := in.MassFlowRate * in.SpecificHeat
	if !(capacity > 0) {
		return model.Result{}, fmt.Errorf("%w: mass flow rate %g kg/s × specific heat %g J/kg·K",
			ErrInvalidFlowRate, in.MassFlowRate, in.SpecificHeat)
	}

	hfi, err := internalCoefficient(in)
	if err != nil {
		return model.Result{}, err
	}

	density, viscosity := in.AirDensity, in.AirViscosity
	switch opts.WindProperties {
	case "", WindAir:
	case WindHTF:
		density, viscosity = in.HTFDensity, in.HTFViscosity
	default:
		return model.Result{}, fmt.Errorf("unknown wind properties %q", opts.WindProperties)
	}
	hw, err := WindCoefficient(in.WindSpeed, in.GlassDiameter, density, viscosity, in.AirConductivity)
	if err != nil {
		return model.Result{}, err
	}

	state, err := SolveGlassTemperature(GlassNetwork{
		Receiver:           model.Kelvin(in.ReceiverTemperature),
		Ambient:            model.Kelvin(in.AmbientTemperature),
		ReceiverEmissivity: in.ReceiverEmissivity,
		GlassEmissivity:    in.GlassEmissivity,
		Geometry:           geometry,
		WindCoefficient:    hw,
	}, opts.Solver)
	if err != nil {
		return model.Result{}, err
	}

	ul, err := OverallLossCoefficient(state, geometry)
	if err != nil {
		return model.Result{}, err
	}
	fPrime, err := EfficiencyFactor(ul, in.OuterDiameter, in.InnerDiameter, hfi, in.PipeConductivity)
	if err != nil {
		return model.Result{}, err
	}
	fr, err := HeatRemovalFactor(in.MassFlowRate, in.SpecificHeat, geometry.ReceiverArea, ul, fPrime)
	if err != nil {
		return model.Result{}, err
	}

	eta := in.OpticalEfficiency
	if opts.OmitOpticalEfficiency {
		eta = 1
	}
	incident := in.DNI * geometry.ApertureArea
	qu := UsefulGain(fr, AbsorbedRadiation(in.DNI, geometry.ApertureArea, eta), ul,
		geometry.ReceiverArea, in.InletTemperature, in.AmbientTemperature)
	tout, err := OutletTemperature(qu, in.MassFlowRate, in.SpecificHeat, in.InletTemperature)
	if err != nil {
		return model.Result{}, err
	}

	result := model.Result{
		GlassTemperature:         model.Celsius(state.Glass),
		WindCoefficient:          state.WindCoefficient,
		GlassAmbientCoefficient:  state.GlassAmbient,
		ReceiverGlassCoefficient: state.ReceiverGlass,
		Iterations:               state.Iterations,
		LossCoefficient:          ul,
		EfficiencyFactor:         fPrime,
		HeatRemovalFactor:        fr,
		UsefulGain:               qu,
		OutletTemperature:        tout,
	}
	if incident > 0 {
		result.ThermalEfficiency = qu / incident
	}
	return result, nil
}

// 管内对流换热系数：优先使用给定值，否则由工质物性按 Dittus-Boelter 计算
func internalCoefficient(in model.Inputs) (float64, error) {
	if in.InternalCoefficient > 0 {
		return in.InternalCoefficient, nil
	}
	if in.HTFConductivity > 0 {
		h, err := htf.DittusBoelter(in.MassFlowRate, in.InnerDiameter, htf.Properties{
			Density:      in.HTFDensity,
			SpecificHeat: in.SpecificHeat,
			Viscosity:    in.HTFViscosity,
			Conductivity: in.HTFConductivity,
		})
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidThermalState, err)
		}
		return h, nil
	}
	return 0, fmt.Errorf("%w: internal coefficient %g and no htf conductivity given",
		ErrInvalidThermalState, in.InternalCoefficient)
}

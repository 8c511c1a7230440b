package calculator

import (
	"fmt"
	"sort"

	"ptc/model"
)

// 可按名称设置/扫描的输入参数
var params = map[string]func(in *model.Inputs) *float64{
	"dni":                  func(in *model.Inputs) *float64 { return &in.DNI },
	"ambient_temperature":  func(in *model.Inputs) *float64 { return &in.AmbientTemperature },
	"wind_speed":           func(in *model.Inputs) *float64 { return &in.WindSpeed },
	"length":               func(in *model.Inputs) *float64 { return &in.Length },
	"aperture_width":       func(in *model.Inputs) *float64 { return &in.ApertureWidth },
	"inner_diameter":       func(in *model.Inputs) *float64 { return &in.InnerDiameter },
	"outer_diameter":       func(in *model.Inputs) *float64 { return &in.OuterDiameter },
	"glass_diameter":       func(in *model.Inputs) *float64 { return &in.GlassDiameter },
	"pipe_conductivity":    func(in *model.Inputs) *float64 { return &in.PipeConductivity },
	"receiver_emissivity":  func(in *model.Inputs) *float64 { return &in.ReceiverEmissivity },
	"glass_emissivity":     func(in *model.Inputs) *float64 { return &in.GlassEmissivity },
	"optical_efficiency":   func(in *model.Inputs) *float64 { return &in.OpticalEfficiency },
	"receiver_temperature": func(in *model.Inputs) *float64 { return &in.ReceiverTemperature },
	"specific_heat":        func(in *model.Inputs) *float64 { return &in.SpecificHeat },
	"htf_density":          func(in *model.Inputs) *float64 { return &in.HTFDensity },
	"htf_viscosity":        func(in *model.Inputs) *float64 { return &in.HTFViscosity },
	"htf_conductivity":     func(in *model.Inputs) *float64 { return &in.HTFConductivity },
	"internal_coefficient": func(in *model.Inputs) *float64 { return &in.InternalCoefficient },
	"mass_flow_rate":       func(in *model.Inputs) *float64 { return &in.MassFlowRate },
	"inlet_temperature":    func(in *model.Inputs) *float64 { return &in.InletTemperature },
	"air_density":          func(in *model.Inputs) *float64 { return &in.AirDensity },
	"air_viscosity":        func(in *model.Inputs) *float64 { return &in.AirViscosity },
	"air_conductivity":     func(in *model.Inputs) *float64 { return &in.AirConductivity },
}

func SetParam(in *model.Inputs, name string, value float64) error {
	field, ok := params[name]
	if !ok {
		return fmt.Errorf("unknown parameter %q", name)
	}
	*field(in) = value
	return nil
}

func GetParam(in model.Inputs, name string) (float64, error) {
	field, ok := params[name]
	if !ok {
		return 0, fmt.Errorf("unknown parameter %q", name)
	}
	return *field(&in), nil
}

func ParamNames() []string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

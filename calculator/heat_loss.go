package calculator

import "fmt"

// 以接收管外表面积为基准的总热损系数
//   U_L = 1 / (1/h_rg + A_r/(A_g·(h_ga + h_w)))
func OverallLossCoefficient(state ThermalState, g Geometry) (float64, error) {
	if !(state.ReceiverGlass > 0) {
		return 0, fmt.Errorf("%w: receiver-glass coefficient %g", ErrInvalidThermalState, state.ReceiverGlass)
	}
	outer := state.GlassAmbient + state.WindCoefficient
	if !(outer > 0) {
		return 0, fmt.Errorf("%w: glass-ambient coefficient %g + wind coefficient %g",
			ErrInvalidThermalState, state.GlassAmbient, state.WindCoefficient)
	}
	if !(g.GlassArea > 0) || !(g.ReceiverArea > 0) {
		return 0, fmt.Errorf("%w: receiver area %g, glass area %g", ErrInvalidGeometry, g.ReceiverArea, g.GlassArea)
	}
	return 1 / (1/state.ReceiverGlass + g.ReceiverArea/(g.GlassArea*outer)), nil
}

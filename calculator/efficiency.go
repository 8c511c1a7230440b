package calculator

import (
	"fmt"
	"math"
)

// 集热器效率因子 F′
// 工质到环境的串联热阻：管内对流 + 管壁导热 + 1/U_L
//   F′ = (1/U_L) / [ 1/U_L + D_out/(h_fi·D_in) + (D_out/(2k))·ln(D_out/D_in) ]
func EfficiencyFactor(lossCoefficient, outerDiameter, innerDiameter, internalCoefficient, pipeConductivity float64) (float64, error) {
	if !(lossCoefficient > 0) {
		return 0, fmt.Errorf("%w: loss coefficient %g", ErrInvalidThermalState, lossCoefficient)
	}
	if !(internalCoefficient > 0) {
		return 0, fmt.Errorf("%w: internal coefficient %g", ErrInvalidThermalState, internalCoefficient)
	}
	if !(pipeConductivity > 0) {
		return 0, fmt.Errorf("%w: pipe conductivity %g", ErrInvalidThermalState, pipeConductivity)
	}
	if !(innerDiameter > 0) || !(outerDiameter > innerDiameter) {
		return 0, fmt.Errorf("%w: inner diameter %g, outer diameter %g", ErrInvalidGeometry, innerDiameter, outerDiameter)
	}

	loss := 1 / lossCoefficient
	convection := outerDiameter / (internalCoefficient * innerDiameter)
	conduction := outerDiameter / (2 * pipeConductivity) * math.Log(outerDiameter/innerDiameter)
	return loss / (loss + convection + conduction), nil
}

// 热迁移因子 F_R
//   F_R = (ṁ·cp)/(A_r·U_L) · [1 − exp(−F′·A_r·U_L/(ṁ·cp))]
func HeatRemovalFactor(massFlowRate, specificHeat, receiverArea, lossCoefficient, efficiencyFactor float64) (float64, error) {
	capacity := massFlowRate * specificHeat
	if !(capacity > 0) || math.IsInf(capacity, 0) {
		return 0, fmt.Errorf("%w: mass flow rate %g kg/s × specific heat %g J/kg·K",
			ErrInvalidFlowRate, massFlowRate, specificHeat)
	}
	if !(lossCoefficient > 0) {
		return 0, fmt.Errorf("%w: loss coefficient %g", ErrInvalidThermalState, lossCoefficient)
	}
	if !(receiverArea > 0) {
		return 0, fmt.Errorf("%w: receiver area %g", ErrInvalidGeometry, receiverArea)
	}

	ratio := capacity / (receiverArea * lossCoefficient)
	return ratio * -math.Expm1(-efficiencyFactor/ratio), nil
}

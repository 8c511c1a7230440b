package calculator

import (
	"fmt"
	"math"
)

// 有用得热量 (Hottel-Whillier-Bliss)
//   Q_u = F_R·[η_opt·DNI·A_a − U_L·A_r·(T_in − T_amb)]
// 净损失时 Q_u 为负，按原值返回。
func UsefulGain(heatRemovalFactor, absorbed, lossCoefficient, receiverArea, inlet, ambient float64) float64 {
	return heatRemovalFactor * (absorbed - lossCoefficient*receiverArea*(inlet-ambient))
}

// 接收管吸收的太阳辐射, W
func AbsorbedRadiation(dni, apertureArea, opticalEfficiency float64) float64 {
	return opticalEfficiency * dni * apertureArea
}

// 工质出口温度
//   T_out = Q_u/(ṁ·cp) + T_in
func OutletTemperature(usefulGain, massFlowRate, specificHeat, inlet float64) (float64, error) {
	capacity := massFlowRate * specificHeat
	if !(capacity > 0) || math.IsInf(capacity, 0) {
		return 0, fmt.Errorf("%w: mass flow rate %g kg/s × specific heat %g J/kg·K",
			ErrInvalidFlowRate, massFlowRate, specificHeat)
	}
	return usefulGain/capacity + inlet, nil
}

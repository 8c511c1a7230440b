package calculator

import (
	"fmt"
	"math"
)

// 风速对应的玻璃罩外表面强制对流换热系数
//   Re  = ρ·v·D_g/μ
//   Nu  = 0.3·Re^0.6   (横掠圆柱的简化关联式)
//   h_w = Nu·k/D_g
// 只与风速和空气物性有关，不随玻璃罩温度变化，因此在迭代外计算一次。
func WindCoefficient(windSpeed, glassDiameter, density, viscosity, conductivity float64) (float64, error) {
	if windSpeed < 0 || math.IsNaN(windSpeed) {
		return 0, fmt.Errorf("%w: wind speed %g", ErrInvalidThermalState, windSpeed)
	}
	if !(glassDiameter > 0) {
		return 0, fmt.Errorf("%w: glass diameter %g", ErrInvalidGeometry, glassDiameter)
	}
	if !(density > 0) || !(viscosity > 0) || !(conductivity > 0) {
		return 0, fmt.Errorf("%w: air properties density=%g viscosity=%g conductivity=%g",
			ErrInvalidThermalState, density, viscosity, conductivity)
	}

	re := Reynolds(density, windSpeed, glassDiameter, viscosity)
	nu := 0.3 * math.Pow(re, 0.6)
	return nu * conductivity / glassDiameter, nil
}

func Reynolds(density, velocity, diameter, viscosity float64) float64 {
	return density * velocity * diameter / viscosity
}

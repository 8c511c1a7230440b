package calculator

import (
	"fmt"

	"ptc/model"
)

// 辐射换热系数，温度均为绝对温度 K

// 玻璃罩对环境的辐射换热系数
//   h_rad,ga = ε_g·σ·(T_g²+T_amb²)·(T_g+T_amb)
func GlassToAmbient(glass, ambient, glassEmissivity float64) (float64, error) {
	if err := checkAbsolute(glass, ambient); err != nil {
		return 0, err
	}
	if err := checkEmissivity("glass", glassEmissivity); err != nil {
		return 0, err
	}
	return glassEmissivity * model.StefanBoltzmann * (glass*glass + ambient*ambient) * (glass + ambient), nil
}

// 接收管对玻璃罩的辐射换热系数（同心长圆柱间的灰体辐射）
//   h_rad,rg = σ·(T_r²+T_g²)·(T_r+T_g) / (1/ε_r + (A_r/A_g)·(1/ε_g − 1))
func ReceiverToGlass(receiver, glass, receiverEmissivity, glassEmissivity, areaRatio float64) (float64, error) {
	if err := checkAbsolute(receiver, glass); err != nil {
		return 0, err
	}
	if err := checkEmissivity("receiver", receiverEmissivity); err != nil {
		return 0, err
	}
	if err := checkEmissivity("glass", glassEmissivity); err != nil {
		return 0, err
	}
	if !(areaRatio > 0) {
		return 0, fmt.Errorf("%w: area ratio %g", ErrInvalidGeometry, areaRatio)
	}
	denominator := 1/receiverEmissivity + areaRatio*(1/glassEmissivity-1)
	return model.StefanBoltzmann * (receiver*receiver + glass*glass) * (receiver + glass) / denominator, nil
}

func checkAbsolute(temperatures ...float64) error {
	for _, t := range temperatures {
		if !(t > 0) {
			return fmt.Errorf("%w: absolute temperature %g K", ErrInvalidThermalState, t)
		}
	}
	return nil
}

// 发射率取值 (0, 1]
func checkEmissivity(surface string, e float64) error {
	if !(e > 0) || e > 1 {
		return fmt.Errorf("%w: %s emissivity %g", ErrInvalidThermalState, surface, e)
	}
	return nil
}

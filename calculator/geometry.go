package calculator

import (
	"fmt"
	"math"

	"ptc/model"
)

// 由直径和长度得到的各换热面积, m²
type Geometry struct {
	ReceiverArea float64 // 接收管外表面积 A_r = π·D_out·L
	GlassArea    float64 // 玻璃罩外表面积 A_g = π·D_g·L
	ApertureArea float64 // 开口面积 A_a = W·L
}

// 计算各面积，尺寸必须为正
func NewGeometry(in model.Inputs) (Geometry, error) {
	dims := []struct {
		name  string
		value float64
	}{
		{"length", in.Length},
		{"aperture_width", in.ApertureWidth},
		{"inner_diameter", in.InnerDiameter},
		{"outer_diameter", in.OuterDiameter},
		{"glass_diameter", in.GlassDiameter},
	}
	for _, d := range dims {
		if !(d.value > 0) || math.IsInf(d.value, 0) {
			return Geometry{}, fmt.Errorf("%w: %s = %g", ErrInvalidGeometry, d.name, d.value)
		}
	}
	if in.InnerDiameter >= in.OuterDiameter {
		return Geometry{}, fmt.Errorf("%w: inner diameter %g >= outer diameter %g",
			ErrInvalidGeometry, in.InnerDiameter, in.OuterDiameter)
	}
	if in.OuterDiameter >= in.GlassDiameter {
		return Geometry{}, fmt.Errorf("%w: outer diameter %g >= glass diameter %g",
			ErrInvalidGeometry, in.OuterDiameter, in.GlassDiameter)
	}

	return Geometry{
		ReceiverArea: math.Pi * in.OuterDiameter * in.Length,
		GlassArea:    math.Pi * in.GlassDiameter * in.Length,
		ApertureArea: in.ApertureWidth * in.Length,
	}, nil
}

// 接收管与玻璃罩的面积比 A_r/A_g
func (g Geometry) AreaRatio() float64 {
	return g.ReceiverArea / g.GlassArea
}

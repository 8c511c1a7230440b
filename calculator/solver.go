package calculator

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// 玻璃罩热平衡求解

// 求解器参数
type SolverSettings struct {
	ResidualTolerance    float64 // 残差容差, W
	TemperatureTolerance float64 // 相邻两次迭代温差容差, K
	MaxIterations        int
}

func DefaultSolverSettings() SolverSettings {
	return SolverSettings{
		ResidualTolerance:    1e-3,
		TemperatureTolerance: 1e-4,
		MaxIterations:        100,
	}
}

// 未设置的项取默认值
func (s SolverSettings) withDefaults() SolverSettings {
	d := DefaultSolverSettings()
	if s.ResidualTolerance <= 0 {
		s.ResidualTolerance = d.ResidualTolerance
	}
	if s.TemperatureTolerance <= 0 {
		s.TemperatureTolerance = d.TemperatureTolerance
	}
	if s.MaxIterations <= 0 {
		s.MaxIterations = d.MaxIterations
	}
	return s
}

// 接收管-玻璃罩-环境 热网络，温度为 K
type GlassNetwork struct {
	Receiver           float64 // T_r
	Ambient            float64 // T_amb
	ReceiverEmissivity float64
	GlassEmissivity    float64
	Geometry           Geometry
	WindCoefficient    float64 // h_w，迭代中保持不变
}

// 某一玻璃罩温度下的热状态，收敛后按值返回，不再修改
type ThermalState struct {
	Glass           float64 // T_g, K
	WindCoefficient float64 // h_w
	GlassAmbient    float64 // h_rad,ga
	ReceiverGlass   float64 // h_rad,rg
	Residual        float64 // R(T_g), W
	Iterations      int
}

// 在给定玻璃罩温度下计算辐射换热系数和残差
//   R(T_g) = A_r·h_rg·(T_r − T_g) − A_g·(h_ga + h_w)·(T_g − T_amb)
// 即玻璃罩从接收管吸收的辐射热 减去 向环境的辐射和对流散热。
func (n GlassNetwork) Evaluate(glass float64) (ThermalState, error) {
	hga, err := GlassToAmbient(glass, n.Ambient, n.GlassEmissivity)
	if err != nil {
		return ThermalState{}, err
	}
	hrg, err := ReceiverToGlass(n.Receiver, glass, n.ReceiverEmissivity, n.GlassEmissivity, n.Geometry.AreaRatio())
	if err != nil {
		return ThermalState{}, err
	}
	gain := n.Geometry.ReceiverArea * hrg * (n.Receiver - glass)
	loss := n.Geometry.GlassArea * (hga + n.WindCoefficient) * (glass - n.Ambient)
	return ThermalState{
		Glass:           glass,
		WindCoefficient: n.WindCoefficient,
		GlassAmbient:    hga,
		ReceiverGlass:   hrg,
		Residual:        gain - loss,
	}, nil
}

// 求玻璃罩温度 T_g*，使 R(T_g*) = 0，T_g* 严格位于 T_amb 与 T_r 之间。
// 采用带 Illinois 修正的试位法：每一步取割线与横轴交点，始终保持根被包围；
// 同一端连续保留两次时将该端残差减半，避免收敛退化为线性。
func SolveGlassTemperature(n GlassNetwork, s SolverSettings) (ThermalState, error) {
	s = s.withDefaults()
	if n.WindCoefficient < 0 || math.IsNaN(n.WindCoefficient) {
		return ThermalState{}, fmt.Errorf("%w: wind coefficient %g", ErrInvalidThermalState, n.WindCoefficient)
	}

	if !(n.Receiver > n.Ambient) {
		return ThermalState{}, fmt.Errorf("%w: receiver %g K not above ambient %g K",
			ErrNoGlassTemperatureSolution, n.Receiver, n.Ambient)
	}

	a, b := n.Ambient, n.Receiver
	sa, err := n.Evaluate(a)
	if err != nil {
		return ThermalState{}, err
	}
	sb, err := n.Evaluate(b)
	if err != nil {
		return ThermalState{}, err
	}
	fa, fb := sa.Residual, sb.Residual
	if !(fa*fb < 0) {
		return ThermalState{}, fmt.Errorf("%w: residual does not change sign on [%g K, %g K] (R=%g, %g)",
			ErrNoGlassTemperatureSolution, a, b, fa, fb)
	}

	prev := math.NaN()
	side := 0
	var state ThermalState
	for i := 1; i <= s.MaxIterations; i++ {
		c := b - fb*(b-a)/(fb-fa)
		lo, hi := math.Min(a, b), math.Max(a, b)
		if !(c > lo && c < hi) {
			c = (a + b) / 2
		}

		state, err = n.Evaluate(c)
		if err != nil {
			return ThermalState{}, err
		}
		state.Iterations = i
		fc := state.Residual

		log.WithFields(log.Fields{
			"iteration": i,
			"glass":     c,
			"residual":  fc,
			"h_ga":      state.GlassAmbient,
			"h_rg":      state.ReceiverGlass,
		}).Trace("玻璃罩温度迭代")

		if math.Abs(fc) < s.ResidualTolerance || math.Abs(c-prev) < s.TemperatureTolerance {
			return state, nil
		}
		prev = c

		if fc*fb > 0 {
			b, fb = c, fc
			if side == -1 {
				fa /= 2
			}
			side = -1
		} else {
			a, fa = c, fc
			if side == 1 {
				fb /= 2
			}
			side = 1
		}
		if math.Abs(b-a) < s.TemperatureTolerance {
			state, err = n.Evaluate((a + b) / 2)
			if err != nil {
				return ThermalState{}, err
			}
			state.Iterations = i
			return state, nil
		}
	}

	return ThermalState{}, fmt.Errorf("%w: %d iterations, last glass temperature %g K, residual %g W",
		ErrConvergenceFailure, s.MaxIterations, state.Glass, state.Residual)
}

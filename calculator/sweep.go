package calculator

import (
	"context"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"ptc/model"
)

// 在 [from, to] 上等间距取 steps 个点
func Span(from, to float64, steps int) ([]float64, error) {
	if steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", steps)
	}
	return floats.Span(make([]float64, steps), from, to), nil
}

// 参数扫描：以 base 为基准，依次将 param 设为 values 中的值并计算。
// 各点相互独立，并发计算，结果按 values 的顺序返回；单个点失败只记录错误。
// hub 可为 nil。
func Sweep(ctx context.Context, base model.Inputs, opts Options, param string, values []float64, workers int, hub *CalcHub) ([]model.SweepPoint, error) {
	if _, err := GetParam(base, param); err != nil {
		return nil, err
	}

	points := make([]model.SweepPoint, len(values))
	err := newExecutor(workers).run(ctx, values, func(t task) {
		p := model.SweepPoint{Index: t.index, Param: param, Value: t.value}
		r, err := evaluateAt(base, opts, param, t.value)
		if err != nil {
			p.Err = err.Error()
		} else {
			p.GlassTemperature = r.GlassTemperature
			p.LossCoefficient = r.LossCoefficient
			p.EfficiencyFactor = r.EfficiencyFactor
			p.HeatRemovalFactor = r.HeatRemovalFactor
			p.UsefulGain = r.UsefulGain
			p.OutletTemperature = r.OutletTemperature
		}
		points[t.index] = p
		if hub != nil {
			hub.PushPoint(p)
		}
	})
	if err != nil {
		log.WithError(err).WithField("param", param).Warn("参数扫描被取消")
		return nil, err
	}
	return points, nil
}

// 在 in 的副本上设置单个参数后计算
func evaluateAt(in model.Inputs, opts Options, param string, value float64) (model.Result, error) {
	if err := SetParam(&in, param, value); err != nil {
		return model.Result{}, err
	}
	return Evaluate(in, opts)
}

// 扫描结果统计（只统计成功的点）
type SweepSummary struct {
	Points int `json:"points"`
	Failed int `json:"failed"`

	MeanGain   float64 `json:"mean_gain"`
	StdDevGain float64 `json:"std_dev_gain"`
	MinGain    float64 `json:"min_gain"`
	MaxGain    float64 `json:"max_gain"`

	MinOutlet float64 `json:"min_outlet"`
	MaxOutlet float64 `json:"max_outlet"`
}

func Summarize(points []model.SweepPoint) SweepSummary {
	s := SweepSummary{Points: len(points)}
	gains := make([]float64, 0, len(points))
	outlets := make([]float64, 0, len(points))
	for _, p := range points {
		if p.Err != "" {
			s.Failed++
			continue
		}
		gains = append(gains, p.UsefulGain)
		outlets = append(outlets, p.OutletTemperature)
	}
	if len(gains) == 0 {
		s.MeanGain, s.StdDevGain = math.NaN(), math.NaN()
		s.MinGain, s.MaxGain = math.NaN(), math.NaN()
		s.MinOutlet, s.MaxOutlet = math.NaN(), math.NaN()
		return s
	}
	s.MeanGain = stat.Mean(gains, nil)
	if len(gains) > 1 {
		s.StdDevGain = stat.StdDev(gains, nil)
	}
	s.MinGain, s.MaxGain = floats.Min(gains), floats.Max(gains)
	s.MinOutlet, s.MaxOutlet = floats.Min(outlets), floats.Max(outlets)
	return s
}

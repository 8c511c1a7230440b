package calculator

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"ptc/model"
)

// 典型日逐时法向直射辐照度, W/m²
func DefaultProfile() []model.HourlyIrradiance {
	dni := []float64{
		0, 0, 0, 0, 0, 0,
		100, 300, 500, 700, 800, 800,
		800, 800, 750, 600, 400, 200,
		0, 0, 0, 0, 0, 0,
	}
	profile := make([]model.HourlyIrradiance, len(dni))
	for hour, v := range dni {
		profile[hour] = model.HourlyIrradiance{Hour: hour, DNI: v}
	}
	return profile
}

// 一天的逐时计算结果
type Daily struct {
	Hours []model.SweepPoint

	CollectedEnergy float64 // 正得热时段累计, J
	LostEnergy      float64 // 净损失时段累计（正值）, J
	LossHours       int     // Q_u < 0 的小时数
	PeakGain        float64 // W
}

// 对逐时辐照数据逐点计算，每个小时视为一个独立的稳态工况
func RunDaily(ctx context.Context, base model.Inputs, opts Options, profile []model.HourlyIrradiance, workers int) (Daily, error) {
	if len(profile) == 0 {
		return Daily{}, fmt.Errorf("empty irradiance profile")
	}
	values := make([]float64, len(profile))
	for i, h := range profile {
		values[i] = h.DNI
	}

	points, err := Sweep(ctx, base, opts, "dni", values, workers, nil)
	if err != nil {
		return Daily{}, err
	}

	d := Daily{Hours: points}
	gains := make([]float64, 0, len(points))
	for i := range points {
		points[i].Index = profile[i].Hour
		if points[i].Err != "" {
			return Daily{}, fmt.Errorf("hour %d: %s", profile[i].Hour, points[i].Err)
		}
		q := points[i].UsefulGain
		gains = append(gains, q)
		if q >= 0 {
			d.CollectedEnergy += q * 3600
		} else {
			d.LostEnergy -= q * 3600
			d.LossHours++
		}
	}
	d.PeakGain = floats.Max(gains)
	return d, nil
}

package report

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"ptc/model"
)

// 逐时结果的一行
type hourRow struct {
	Hour              int     `csv:"hour"`
	DNI               float64 `csv:"dni"`
	GlassTemperature  float64 `csv:"glass_temperature"`
	LossCoefficient   float64 `csv:"loss_coefficient"`
	HeatRemovalFactor float64 `csv:"heat_removal_factor"`
	UsefulGain        float64 `csv:"useful_gain"`
	OutletTemperature float64 `csv:"outlet_temperature"`
}

func WriteSweepCSV(w io.Writer, points []model.SweepPoint) error {
	if err := gocsv.Marshal(points, w); err != nil {
		return fmt.Errorf("write sweep csv: %w", err)
	}
	return nil
}

// hours 为 RunDaily 的结果，Index 为小时，Value 为该小时的 DNI
func WriteDailyCSV(w io.Writer, hours []model.SweepPoint) error {
	rows := make([]hourRow, len(hours))
	for i, p := range hours {
		rows[i] = hourRow{
			Hour:              p.Index,
			DNI:               p.Value,
			GlassTemperature:  p.GlassTemperature,
			LossCoefficient:   p.LossCoefficient,
			HeatRemovalFactor: p.HeatRemovalFactor,
			UsefulGain:        p.UsefulGain,
			OutletTemperature: p.OutletTemperature,
		}
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("write daily csv: %w", err)
	}
	return nil
}

// 读取逐时辐照数据，表头为 hour,dni
func ReadProfileCSV(r io.Reader) ([]model.HourlyIrradiance, error) {
	var profile []model.HourlyIrradiance
	if err := gocsv.Unmarshal(r, &profile); err != nil {
		return nil, fmt.Errorf("read profile csv: %w", err)
	}
	if len(profile) == 0 {
		return nil, fmt.Errorf("read profile csv: no rows")
	}
	for _, h := range profile {
		if h.DNI < 0 {
			return nil, fmt.Errorf("read profile csv: negative dni %g at hour %d", h.DNI, h.Hour)
		}
	}
	return profile, nil
}

package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"ptc/model"
)

// 单次计算的文本报告
func WriteTable(w io.Writer, in model.Inputs, r model.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := []struct {
		name  string
		value string
	}{
		{"DNI (W/m²)", fmt.Sprintf("%.1f", in.DNI)},
		{"ambient temperature (°C)", fmt.Sprintf("%.2f", in.AmbientTemperature)},
		{"wind speed (m/s)", fmt.Sprintf("%.2f", in.WindSpeed)},
		{"receiver temperature (°C)", fmt.Sprintf("%.2f", in.ReceiverTemperature)},
		{"inlet temperature (°C)", fmt.Sprintf("%.2f", in.InletTemperature)},
		{"mass flow rate (kg/s)", fmt.Sprintf("%.4f", in.MassFlowRate)},
		{"", ""},
		{"glass temperature (°C)", fmt.Sprintf("%.3f", r.GlassTemperature)},
		{"iterations", fmt.Sprintf("%d", r.Iterations)},
		{"h_w (W/m²K)", fmt.Sprintf("%.3f", r.WindCoefficient)},
		{"h_rad,ga (W/m²K)", fmt.Sprintf("%.3f", r.GlassAmbientCoefficient)},
		{"h_rad,rg (W/m²K)", fmt.Sprintf("%.3f", r.ReceiverGlassCoefficient)},
		{"U_L (W/m²K)", fmt.Sprintf("%.4f", r.LossCoefficient)},
		{"F'", fmt.Sprintf("%.4f", r.EfficiencyFactor)},
		{"F_R", fmt.Sprintf("%.4f", r.HeatRemovalFactor)},
		{"Q_u (W)", fmt.Sprintf("%.1f", r.UsefulGain)},
		{"T_out (°C)", fmt.Sprintf("%.2f", r.OutletTemperature)},
		{"thermal efficiency", fmt.Sprintf("%.4f", r.ThermalEfficiency)},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row.name, row.value)
	}
	return tw.Flush()
}

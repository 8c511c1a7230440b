package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"ptc/model"
)

// 计算结果与文献值的对照
type Validation struct {
	Benchmark model.Benchmark
	Result    model.Result

	GainError   float64 // Q_u 相对误差, %
	OutletError float64 // T_out 相对误差, %
}

// 相对误差 = |参考值 − 计算值| / 参考值 × 100，参考值为 0 时为 NaN
func Compare(result model.Result, benchmark model.Benchmark) Validation {
	return Validation{
		Benchmark:   benchmark,
		Result:      result,
		GainError:   percentError(benchmark.UsefulGain, result.UsefulGain),
		OutletError: percentError(benchmark.OutletTemperature, result.OutletTemperature),
	}
}

func percentError(reference, actual float64) float64 {
	if reference == 0 {
		return math.NaN()
	}
	return math.Abs(reference-actual) / math.Abs(reference) * 100
}

// 两项误差都不超过 tolerance(%)
func (v Validation) Within(tolerance float64) bool {
	return v.GainError <= tolerance && v.OutletError <= tolerance
}

func WriteValidation(w io.Writer, v Validation) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "benchmark\t%s\n", v.Benchmark.Name)
	fmt.Fprintln(tw, "\treference\tcalculated\terror (%)")
	fmt.Fprintf(tw, "Q_u (W)\t%.1f\t%.1f\t%.2f\n", v.Benchmark.UsefulGain, v.Result.UsefulGain, v.GainError)
	fmt.Fprintf(tw, "T_out (°C)\t%.2f\t%.2f\t%.2f\n", v.Benchmark.OutletTemperature, v.Result.OutletTemperature, v.OutletError)
	return tw.Flush()
}

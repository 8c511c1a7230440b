package calculator

import (
	"ptc/collector"
	"ptc/model"
)

// 文献对照算例的输入参数
func DefaultInputs() model.Inputs {
	in := model.Inputs{
		DNI:                 500,
		AmbientTemperature:  25,
		WindSpeed:           5,
		ReceiverTemperature: 260,

		SpecificHeat:        1350,
		HTFDensity:          1.11,
		HTFViscosity:        2.02e-5,
		InternalCoefficient: 200,
		MassFlowRate:        0.32,
		InletTemperature:    220,

		AirDensity:      1.11,
		AirViscosity:    2.02e-5,
		AirConductivity: 0.0276,
	}
	c, _ := collector.ByName("literature")
	c.Apply(&in)
	return in
}

// 文献给出的对照结果
func DefaultBenchmark() model.Benchmark {
	return model.Benchmark{
		Name:              "literature",
		UsefulGain:        23028,
		OutletTemperature: 273.3,
	}
}

// 复现文献对照值所用的选项：有用得热量中不计光学效率
func BenchmarkOptions() Options {
	opts := DefaultOptions()
	opts.OmitOpticalEfficiency = true
	return opts
}

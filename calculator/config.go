package calculator

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"ptc/collector"
	"ptc/htf"
	"ptc/model"
)

type Config struct {
	Collector string // 集热器配置名称
	Fluid     string // 工质名称，custom 表示全部由配置给出
	AirSource string // table 或 custom

	Inputs  model.Inputs
	Options Options

	Workers int // 扫描并发数，0 为 CPU 核数

	Addr        string // 服务监听地址
	HistorySize int    // 服务端保留的历史结果数
}

// 读取配置文件，source 可以是文件路径或 []byte
func LoadConfig(source interface{}) (Config, error) {
	file, err := ini.Load(source)
	if err != nil {
		return Config{}, fmt.Errorf("配置文件读取错误: %w", err)
	}
	return loadCfg(file)
}

// 不读取文件，全部使用默认值
func DefaultConfig() Config {
	cfg, err := loadCfg(ini.Empty())
	if err != nil {
		panic(err)
	}
	return cfg
}

// 缺省的键取文献算例的值。
// 覆盖顺序：文献算例 → 集热器配置 → 工质/空气物性表 → 各节中显式给出的键
func loadCfg(file *ini.File) (Config, error) {
	cfg := Config{
		Collector: file.Section("collector").Key("preset").MustString("literature"),
		Fluid:     file.Section("htf").Key("fluid").MustString("custom"),
		AirSource: file.Section("air").Key("source").MustString("custom"),
		Workers:   file.Section("sweep").Key("workers").MustInt(0),

		Addr:        file.Section("server").Key("addr").MustString(":9000"),
		HistorySize: file.Section("server").Key("history").MustInt(32),
	}

	in := DefaultInputs()
	c, err := collector.ByName(cfg.Collector)
	if err != nil {
		return Config{}, err
	}
	c.Apply(&in)

	env := file.Section("environment")
	in.DNI = env.Key("dni").MustFloat64(in.DNI)
	in.AmbientTemperature = env.Key("ambient_temperature").MustFloat64(in.AmbientTemperature)
	in.WindSpeed = env.Key("wind_speed").MustFloat64(in.WindSpeed)

	flow := file.Section("flow")
	in.MassFlowRate = flow.Key("mass_flow_rate").MustFloat64(in.MassFlowRate)
	in.InletTemperature = flow.Key("inlet_temperature").MustFloat64(in.InletTemperature)

	rec := file.Section("receiver")
	in.ReceiverTemperature = rec.Key("receiver_temperature").MustFloat64(in.ReceiverTemperature)
	in.InnerDiameter = rec.Key("inner_diameter").MustFloat64(in.InnerDiameter)
	in.OuterDiameter = rec.Key("outer_diameter").MustFloat64(in.OuterDiameter)
	in.GlassDiameter = rec.Key("glass_diameter").MustFloat64(in.GlassDiameter)
	in.PipeConductivity = rec.Key("pipe_conductivity").MustFloat64(in.PipeConductivity)
	in.ReceiverEmissivity = rec.Key("receiver_emissivity").MustFloat64(in.ReceiverEmissivity)
	in.GlassEmissivity = rec.Key("glass_emissivity").MustFloat64(in.GlassEmissivity)

	col := file.Section("collector")
	in.Length = col.Key("length").MustFloat64(in.Length)
	in.ApertureWidth = col.Key("aperture_width").MustFloat64(in.ApertureWidth)
	in.OpticalEfficiency = col.Key("optical_efficiency").MustFloat64(in.OpticalEfficiency)

	// 工质物性取入口与接收管温度的平均值处
	if !strings.EqualFold(cfg.Fluid, "custom") {
		f, err := htf.ByName(cfg.Fluid)
		if err != nil {
			return Config{}, err
		}
		p := f.At((in.InletTemperature + in.ReceiverTemperature) / 2)
		in.HTFDensity, in.SpecificHeat = p.Density, p.SpecificHeat
		in.HTFViscosity, in.HTFConductivity = p.Viscosity, p.Conductivity
		// 未显式给出 h_fi 时由物性计算
		in.InternalCoefficient = 0
	}
	fluid := file.Section("htf")
	in.SpecificHeat = fluid.Key("specific_heat").MustFloat64(in.SpecificHeat)
	in.HTFDensity = fluid.Key("density").MustFloat64(in.HTFDensity)
	in.HTFViscosity = fluid.Key("viscosity").MustFloat64(in.HTFViscosity)
	in.HTFConductivity = fluid.Key("conductivity").MustFloat64(in.HTFConductivity)
	in.InternalCoefficient = fluid.Key("internal_coefficient").MustFloat64(in.InternalCoefficient)

	// 空气物性取环境温度处
	if strings.EqualFold(cfg.AirSource, "table") {
		p := htf.Air.At(in.AmbientTemperature)
		in.AirDensity, in.AirViscosity, in.AirConductivity = p.Density, p.Viscosity, p.Conductivity
	} else if !strings.EqualFold(cfg.AirSource, "custom") {
		return Config{}, fmt.Errorf("unknown air source %q", cfg.AirSource)
	}
	air := file.Section("air")
	in.AirDensity = air.Key("density").MustFloat64(in.AirDensity)
	in.AirViscosity = air.Key("viscosity").MustFloat64(in.AirViscosity)
	in.AirConductivity = air.Key("conductivity").MustFloat64(in.AirConductivity)

	opts := DefaultOptions()
	m := file.Section("model")
	opts.WindProperties = m.Key("wind_properties").In(WindAir, []string{WindAir, WindHTF})
	opts.OmitOpticalEfficiency = m.Key("omit_optical_efficiency").MustBool(false)

	s := file.Section("solver")
	opts.Solver.ResidualTolerance = s.Key("residual_tolerance").MustFloat64(opts.Solver.ResidualTolerance)
	opts.Solver.TemperatureTolerance = s.Key("temperature_tolerance").MustFloat64(opts.Solver.TemperatureTolerance)
	opts.Solver.MaxIterations = s.Key("max_iterations").MustInt(opts.Solver.MaxIterations)

	cfg.Inputs = in
	cfg.Options = opts

	log.WithFields(log.Fields{
		"Collector": cfg.Collector,
		"Fluid":     cfg.Fluid,
		"AirSource": cfg.AirSource,
		"Wind":      opts.WindProperties,
		"OmitEta":   opts.OmitOpticalEfficiency,
	}).Debug("读取配置")
	return cfg, nil
}

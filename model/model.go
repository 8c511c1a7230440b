package model

import "time"

// 单次计算的输入参数，温度单位 ℃，其余为 SI 单位
type Inputs struct {
	// 环境
	DNI                float64 `json:"dni" csv:"dni"`                                 // 法向直射辐照度, W/m²
	AmbientTemperature float64 `json:"ambient_temperature" csv:"ambient_temperature"` // 环境温度, ℃
	WindSpeed          float64 `json:"wind_speed" csv:"wind_speed"`                   // 风速, m/s

	// 集热器尺寸
	Length        float64 `json:"length" csv:"length"`                 // 集热器长度, m
	ApertureWidth float64 `json:"aperture_width" csv:"aperture_width"` // 开口宽度, m

	// 接收管与玻璃罩
	InnerDiameter       float64 `json:"inner_diameter" csv:"inner_diameter"`             // 接收管内径, m
	OuterDiameter       float64 `json:"outer_diameter" csv:"outer_diameter"`             // 接收管外径, m
	GlassDiameter       float64 `json:"glass_diameter" csv:"glass_diameter"`             // 玻璃罩外径, m
	PipeConductivity    float64 `json:"pipe_conductivity" csv:"pipe_conductivity"`       // 管壁导热系数, W/m·K
	ReceiverEmissivity  float64 `json:"receiver_emissivity" csv:"receiver_emissivity"`   // 接收管发射率
	GlassEmissivity     float64 `json:"glass_emissivity" csv:"glass_emissivity"`         // 玻璃罩发射率
	OpticalEfficiency   float64 `json:"optical_efficiency" csv:"optical_efficiency"`     // 光学效率
	ReceiverTemperature float64 `json:"receiver_temperature" csv:"receiver_temperature"` // 接收管(吸热体)温度, ℃

	// 传热工质
	SpecificHeat        float64 `json:"specific_heat" csv:"specific_heat"`               // 比热容, J/kg·K
	HTFDensity          float64 `json:"htf_density" csv:"htf_density"`                   // 密度, kg/m³
	HTFViscosity        float64 `json:"htf_viscosity" csv:"htf_viscosity"`               // 动力粘度, Pa·s
	HTFConductivity     float64 `json:"htf_conductivity" csv:"htf_conductivity"`         // 导热系数, W/m·K, 可为 0
	InternalCoefficient float64 `json:"internal_coefficient" csv:"internal_coefficient"` // 管内对流换热系数 h_fi, W/m²K
	MassFlowRate        float64 `json:"mass_flow_rate" csv:"mass_flow_rate"`             // 质量流量, kg/s
	InletTemperature    float64 `json:"inlet_temperature" csv:"inlet_temperature"`       // 入口温度, ℃

	// 空气物性
	AirDensity      float64 `json:"air_density" csv:"air_density"`           // kg/m³
	AirViscosity    float64 `json:"air_viscosity" csv:"air_viscosity"`       // Pa·s
	AirConductivity float64 `json:"air_conductivity" csv:"air_conductivity"` // W/m·K
}

// 收敛后的计算结果
type Result struct {
	GlassTemperature         float64 `json:"glass_temperature" csv:"glass_temperature"`                   // ℃
	WindCoefficient          float64 `json:"wind_coefficient" csv:"wind_coefficient"`                     // h_w, W/m²K
	GlassAmbientCoefficient  float64 `json:"glass_ambient_coefficient" csv:"glass_ambient_coefficient"`   // h_rad,ga, W/m²K
	ReceiverGlassCoefficient float64 `json:"receiver_glass_coefficient" csv:"receiver_glass_coefficient"` // h_rad,rg, W/m²K
	Iterations               int     `json:"iterations" csv:"iterations"`

	LossCoefficient   float64 `json:"loss_coefficient" csv:"loss_coefficient"`       // U_L, W/m²K
	EfficiencyFactor  float64 `json:"efficiency_factor" csv:"efficiency_factor"`     // F′
	HeatRemovalFactor float64 `json:"heat_removal_factor" csv:"heat_removal_factor"` // F_R
	UsefulGain        float64 `json:"useful_gain" csv:"useful_gain"`                 // Q_u, W
	OutletTemperature float64 `json:"outlet_temperature" csv:"outlet_temperature"`   // ℃
	ThermalEfficiency float64 `json:"thermal_efficiency" csv:"thermal_efficiency"`   // Q_u / (DNI·A_a)
}

// 文献对照值
type Benchmark struct {
	Name              string  `json:"name"`
	UsefulGain        float64 `json:"useful_gain"`
	OutletTemperature float64 `json:"outlet_temperature"`
}

// 参数扫描中的一个点
type SweepPoint struct {
	Index             int     `csv:"index"`
	Param             string  `csv:"param"`
	Value             float64 `csv:"value"`
	GlassTemperature  float64 `csv:"glass_temperature"`
	LossCoefficient   float64 `csv:"loss_coefficient"`
	EfficiencyFactor  float64 `csv:"efficiency_factor"`
	HeatRemovalFactor float64 `csv:"heat_removal_factor"`
	UsefulGain        float64 `csv:"useful_gain"`
	OutletTemperature float64 `csv:"outlet_temperature"`
	Err               string  `csv:"error"`
}

// 逐时辐照数据
type HourlyIrradiance struct {
	Hour int     `csv:"hour"`
	DNI  float64 `csv:"dni"`
}

// 历史记录
type Snapshot struct {
	Time   time.Time `json:"time"`
	Inputs Inputs    `json:"inputs"`
	Result Result    `json:"result"`
}

// 扫描请求
type SweepReq struct {
	Param string  `json:"param"`
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Steps int     `json:"steps"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

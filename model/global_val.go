package model

// 物理常数

const (
	StefanBoltzmann = 5.670374419e-8 // 斯特藩-玻尔兹曼常数, W/m²K⁴
	KelvinOffset    = 273.15         // ℃ 到 K
)

// 摄氏温度转为绝对温度
func Kelvin(celsius float64) float64 {
	return celsius + KelvinOffset
}

// 绝对温度转为摄氏温度
func Celsius(kelvin float64) float64 {
	return kelvin - KelvinOffset
}

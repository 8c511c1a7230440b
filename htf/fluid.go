package htf

import (
	"fmt"
	"math"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// 物性参数
type Properties struct {
	Density      float64 // 密度, kg/m³
	SpecificHeat float64 // 比热容, J/kg·K
	Viscosity    float64 // 动力粘度, Pa·s
	Conductivity float64 // 导热系数, W/m·K
}

type row struct {
	temperature float64 // ℃
	Properties
}

// 按温度给出物性的介质，表内按温度升序
type Fluid struct {
	Name  string
	table []row
}

// 温度范围
func (f *Fluid) Range() (min, max float64) {
	return f.table[0].temperature, f.table[len(f.table)-1].temperature
}

// 线性插值得到 temperature(℃) 下的物性，超出表格范围时取端点值
func (f *Fluid) At(temperature float64) Properties {
	min, max := f.Range()
	if temperature <= min || temperature >= max {
		if temperature < min || temperature > max {
			log.WithFields(log.Fields{
				"fluid":       f.Name,
				"temperature": temperature,
				"min":         min,
				"max":         max,
			}).Warn("温度超出物性表范围，取端点值")
		}
		if temperature <= min {
			return f.table[0].Properties
		}
		return f.table[len(f.table)-1].Properties
	}

	i := sort.Search(len(f.table), func(i int) bool {
		return f.table[i].temperature >= temperature
	})
	hi, lo := f.table[i], f.table[i-1]
	w := (temperature - lo.temperature) / (hi.temperature - lo.temperature)
	lerp := func(a, b float64) float64 {
		return a + (b-a)*w
	}
	return Properties{
		Density:      lerp(lo.Density, hi.Density),
		SpecificHeat: lerp(lo.SpecificHeat, hi.SpecificHeat),
		Viscosity:    lerp(lo.Viscosity, hi.Viscosity),
		Conductivity: lerp(lo.Conductivity, hi.Conductivity),
	}
}

// 普朗特数
func (p Properties) Prandtl() float64 {
	return p.SpecificHeat * p.Viscosity / p.Conductivity
}

var fluids = map[string]*Fluid{
	"therminol-vp1": TherminolVP1,
	"syltherm-800":  Syltherm800,
	"air":           Air,
}

// 根据名称获取介质
func ByName(name string) (*Fluid, error) {
	f, ok := fluids[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown fluid %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return f, nil
}

func Names() []string {
	names := make([]string, 0, len(fluids))
	for name := range fluids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// 管内对流换热系数 h_fi
// 湍流 (Re > 2300) 用 Dittus-Boelter 关联式 Nu = 0.023·Re^0.8·Pr^0.4，层流取 Nu = 4.36
//   Re = 4ṁ/(π·D_in·μ)
func DittusBoelter(massFlowRate, innerDiameter float64, p Properties) (float64, error) {
	if !(massFlowRate > 0) || !(innerDiameter > 0) {
		return 0, fmt.Errorf("mass flow rate %g and inner diameter %g must be positive", massFlowRate, innerDiameter)
	}
	if !(p.Viscosity > 0) || !(p.Conductivity > 0) || !(p.SpecificHeat > 0) {
		return 0, fmt.Errorf("fluid properties must be positive: %+v", p)
	}

	re := 4 * massFlowRate / (math.Pi * innerDiameter * p.Viscosity)
	nu := 4.36
	if re > 2300 {
		nu = 0.023 * math.Pow(re, 0.8) * math.Pow(p.Prandtl(), 0.4)
	}
	return nu * p.Conductivity / innerDiameter, nil
}

package htf

// 物性表，数值取自厂商资料的代表值

// 导热油 Therminol VP-1
var TherminolVP1 = &Fluid{
	Name: "therminol-vp1",
	table: []row{
		{25, Properties{Density: 1060, SpecificHeat: 1578, Viscosity: 3.95e-3, Conductivity: 0.1367}},
		{100, Properties{Density: 999, SpecificHeat: 1840, Viscosity: 0.99e-3, Conductivity: 0.1257}},
		{150, Properties{Density: 957, SpecificHeat: 1946, Viscosity: 0.58e-3, Conductivity: 0.1203}},
		{200, Properties{Density: 913, SpecificHeat: 2048, Viscosity: 0.39e-3, Conductivity: 0.1145}},
		{250, Properties{Density: 867, SpecificHeat: 2151, Viscosity: 0.27e-3, Conductivity: 0.1075}},
		{300, Properties{Density: 815, SpecificHeat: 2257, Viscosity: 0.20e-3, Conductivity: 0.0997}},
		{350, Properties{Density: 761, SpecificHeat: 2385, Viscosity: 0.16e-3, Conductivity: 0.0908}},
		{400, Properties{Density: 694, SpecificHeat: 2588, Viscosity: 0.13e-3, Conductivity: 0.0795}},
	},
}

// 硅油 Syltherm 800
var Syltherm800 = &Fluid{
	Name: "syltherm-800",
	table: []row{
		{25, Properties{Density: 936, SpecificHeat: 1574, Viscosity: 9.08e-3, Conductivity: 0.1367}},
		{100, Properties{Density: 869, SpecificHeat: 1711, Viscosity: 2.44e-3, Conductivity: 0.1253}},
		{200, Properties{Density: 775, SpecificHeat: 1882, Viscosity: 0.90e-3, Conductivity: 0.1094}},
		{300, Properties{Density: 677, SpecificHeat: 2045, Viscosity: 0.46e-3, Conductivity: 0.0936}},
		{400, Properties{Density: 574, SpecificHeat: 2213, Viscosity: 0.27e-3, Conductivity: 0.0777}},
	},
}

// 干空气，1 atm
var Air = &Fluid{
	Name: "air",
	table: []row{
		{0, Properties{Density: 1.292, SpecificHeat: 1006, Viscosity: 1.729e-5, Conductivity: 0.02364}},
		{25, Properties{Density: 1.184, SpecificHeat: 1007, Viscosity: 1.849e-5, Conductivity: 0.02551}},
		{50, Properties{Density: 1.092, SpecificHeat: 1007, Viscosity: 1.963e-5, Conductivity: 0.02735}},
		{100, Properties{Density: 0.946, SpecificHeat: 1009, Viscosity: 2.181e-5, Conductivity: 0.03095}},
		{150, Properties{Density: 0.8343, SpecificHeat: 1014, Viscosity: 2.385e-5, Conductivity: 0.03443}},
		{200, Properties{Density: 0.7459, SpecificHeat: 1023, Viscosity: 2.577e-5, Conductivity: 0.03779}},
	},
}

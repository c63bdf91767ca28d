package quantity

// The default unit table. Factors are multiplicative scales to the coherent SI
// base units; offsets are the affine part of the temperature scales.

var baseUnitNames = [numDimensions]string{
	Mass:        "kilogram",
	Length:      "meter",
	Time:        "second",
	Current:     "ampere",
	Temperature: "kelvin",
	Amount:      "mole",
	Luminosity:  "candela",
}

type prefix struct {
	name    string
	symbols []string
	factor  float64
}

var metricPrefixes = []prefix{
	{"peta", []string{"P"}, 1e15},
	{"tera", []string{"T"}, 1e12},
	{"giga", []string{"G"}, 1e9},
	{"mega", []string{"M"}, 1e6},
	{"kilo", []string{"k"}, 1e3},
	{"hecto", []string{"h"}, 1e2},
	{"deca", []string{"da"}, 1e1},
	{"deci", []string{"d"}, 1e-1},
	{"centi", []string{"c"}, 1e-2},
	{"milli", []string{"m"}, 1e-3},
	{"micro", []string{"u", "µ"}, 1e-6},
	{"nano", []string{"n"}, 1e-9},
	{"pico", []string{"p"}, 1e-12},
	{"femto", []string{"f"}, 1e-15},
}

type unitDef struct {
	name       string
	symbols    []string
	factor     float64
	offset     float64
	dims       Dimensions
	prefixable bool
}

var (
	dimMass        = Dimensions{Mass: 1}
	dimLength      = Dimensions{Length: 1}
	dimTime        = Dimensions{Time: 1}
	dimCurrent     = Dimensions{Current: 1}
	dimTemperature = Dimensions{Temperature: 1}
	dimAmount      = Dimensions{Amount: 1}
	dimLuminosity  = Dimensions{Luminosity: 1}

	dimArea       = Dimensions{Length: 2}
	dimVolume     = Dimensions{Length: 3}
	dimFrequency  = Dimensions{Time: -1}
	dimForce      = Dimensions{Mass: 1, Length: 1, Time: -2}
	dimPressure   = Dimensions{Mass: 1, Length: -1, Time: -2}
	dimEnergy     = Dimensions{Mass: 1, Length: 2, Time: -2}
	dimPower      = Dimensions{Mass: 1, Length: 2, Time: -3}
	dimCharge     = Dimensions{Current: 1, Time: 1}
	dimVoltage    = Dimensions{Mass: 1, Length: 2, Time: -3, Current: -1}
	dimResistance = Dimensions{Mass: 1, Length: 2, Time: -3, Current: -2}
)

var defaultUnits = []unitDef{
	// SI base. Mass is anchored on the gram so that metric prefixes compose
	// the usual way; the coherent base kilogram falls out of kilo+gram.
	{name: "gram", symbols: []string{"g"}, factor: 1e-3, dims: dimMass, prefixable: true},
	{name: "meter", symbols: []string{"m", "metre"}, factor: 1, dims: dimLength, prefixable: true},
	{name: "second", symbols: []string{"s", "sec"}, factor: 1, dims: dimTime, prefixable: true},
	{name: "ampere", symbols: []string{"A", "amp"}, factor: 1, dims: dimCurrent, prefixable: true},
	{name: "kelvin", symbols: []string{"K"}, factor: 1, dims: dimTemperature},
	{name: "mole", symbols: []string{"mol"}, factor: 1, dims: dimAmount, prefixable: true},
	{name: "candela", symbols: []string{"cd"}, factor: 1, dims: dimLuminosity, prefixable: true},

	// Mass.
	{name: "tonne", symbols: []string{"t", "metric_ton"}, factor: 1e3, dims: dimMass},
	{name: "pound", symbols: []string{"lb", "lbs"}, factor: 0.45359237, dims: dimMass},
	{name: "ounce", symbols: []string{"oz"}, factor: 0.028349523125, dims: dimMass},
	{name: "jin", symbols: []string{"斤"}, factor: 0.5, dims: dimMass},
	{name: "liang", symbols: []string{"两"}, factor: 0.05, dims: dimMass},

	// Length.
	{name: "inch", symbols: []string{"in"}, factor: 0.0254, dims: dimLength},
	{name: "foot", symbols: []string{"ft", "feet"}, factor: 0.3048, dims: dimLength},
	{name: "yard", symbols: []string{"yd"}, factor: 0.9144, dims: dimLength},
	{name: "mile", symbols: []string{"mi"}, factor: 1609.344, dims: dimLength},
	{name: "li", symbols: []string{"里"}, factor: 500, dims: dimLength},
	{name: "zhang", symbols: []string{"丈"}, factor: 10.0 / 3.0, dims: dimLength},
	{name: "chi", symbols: []string{"尺"}, factor: 1.0 / 3.0, dims: dimLength},
	{name: "cun", symbols: []string{"寸"}, factor: 1.0 / 30.0, dims: dimLength},
	{name: "fen", factor: 1.0 / 300.0, dims: dimLength},

	// Time.
	{name: "minute", symbols: []string{"min"}, factor: 60, dims: dimTime},
	{name: "hour", symbols: []string{"h", "hr"}, factor: 3600, dims: dimTime},
	{name: "day", symbols: []string{"d"}, factor: 86400, dims: dimTime},
	{name: "week", symbols: []string{"wk"}, factor: 604800, dims: dimTime},
	{name: "year", symbols: []string{"yr", "a"}, factor: 31557600, dims: dimTime},
	{name: "month", symbols: []string{"mo"}, factor: 2629800, dims: dimTime},
	{name: "quarter_hour", factor: 900, dims: dimTime},

	// Temperature scales. kelvin = degC + 273.15; kelvin = (degF + 459.67)/1.8.
	{name: "degC", symbols: []string{"celsius", "°C"}, factor: 1, offset: 273.15, dims: dimTemperature},
	{name: "degF", symbols: []string{"fahrenheit", "°F"}, factor: 5.0 / 9.0, offset: 459.67 * 5.0 / 9.0, dims: dimTemperature},

	// Derived SI.
	{name: "hertz", symbols: []string{"Hz"}, factor: 1, dims: dimFrequency, prefixable: true},
	{name: "newton", symbols: []string{"N"}, factor: 1, dims: dimForce, prefixable: true},
	{name: "kilogram_force", symbols: []string{"kgf"}, factor: 9.8, dims: dimForce},
	{name: "pascal", symbols: []string{"Pa"}, factor: 1, dims: dimPressure, prefixable: true},
	{name: "joule", symbols: []string{"J"}, factor: 1, dims: dimEnergy, prefixable: true},
	{name: "watt", symbols: []string{"W"}, factor: 1, dims: dimPower, prefixable: true},
	{name: "coulomb", symbols: []string{"C"}, factor: 1, dims: dimCharge, prefixable: true},
	{name: "volt", symbols: []string{"V"}, factor: 1, dims: dimVoltage, prefixable: true},
	{name: "ohm", symbols: []string{"Ω"}, factor: 1, dims: dimResistance, prefixable: true},

	// Common non-SI.
	{name: "liter", symbols: []string{"L", "l", "litre"}, factor: 1e-3, dims: dimVolume, prefixable: true},
	{name: "cubic_meter", factor: 1, dims: dimVolume},
	{name: "square_meter", factor: 1, dims: dimArea},
	{name: "square_kilometer", factor: 1e6, dims: dimArea},
	{name: "square_centimeter", factor: 1e-4, dims: dimArea},
	{name: "square_millimeter", factor: 1e-6, dims: dimArea},
	{name: "hectare", symbols: []string{"ha"}, factor: 1e4, dims: dimArea},
	{name: "mu", symbols: []string{"亩"}, factor: 2000.0 / 3.0, dims: dimArea},
	{name: "bar", factor: 1e5, dims: dimPressure, prefixable: true},
	{name: "atmosphere", symbols: []string{"atm"}, factor: 101325, dims: dimPressure},
	{name: "calorie", symbols: []string{"cal"}, factor: 4.184, dims: dimEnergy, prefixable: true},
	{name: "watt_hour", symbols: []string{"Wh"}, factor: 3600, dims: dimEnergy, prefixable: true},
	{name: "electronvolt", symbols: []string{"eV"}, factor: 1.602176634e-19, dims: dimEnergy, prefixable: true},
}

// lightUnits mirrors the custom definitions the registry has carried since the
// original release.
var lightUnits = []unitDef{
	{name: "light_second", symbols: []string{"ls"}, factor: 299792458, dims: dimLength},
	{name: "light_minute", symbols: []string{"lmin"}, factor: 299792458 * 60, dims: dimLength},
	{name: "light_hour", symbols: []string{"lh"}, factor: 299792458 * 3600, dims: dimLength},
	{name: "light_day", symbols: []string{"lday"}, factor: 299792458 * 86400, dims: dimLength},
}

// chineseAliases maps Chinese unit names onto registered units.
var chineseAliases = map[string]string{
	// Length.
	"米": "meter", "千米": "kilometer", "分米": "decimeter", "厘米": "centimeter",
	"毫米": "millimeter", "微米": "micrometer", "纳米": "nanometer", "皮米": "picometer",
	"飞米": "femtometer", "公分": "centimeter", "分长度": "fen",
	// Mass.
	"千克": "kilogram", "克": "gram", "毫克": "milligram", "微克": "microgram", "吨": "tonne",
	// Time.
	"秒": "second", "分钟": "minute", "刻钟": "quarter_hour", "时": "hour", "天": "day",
	"周": "week", "月": "month", "年": "year",
	// Area and volume.
	"平方米": "square_meter", "平方千米": "square_kilometer", "平方厘米": "square_centimeter",
	"平方毫米": "square_millimeter", "立方米": "cubic_meter",
	"升": "liter", "毫升": "milliliter",
	// Force.
	"牛": "newton", "千牛": "kilonewton",
	// Pressure.
	"帕": "pascal", "千帕": "kilopascal", "兆帕": "megapascal", "巴": "bar",
	"标准大气压": "atmosphere",
	// Energy.
	"焦": "joule", "千焦": "kilojoule", "卡": "calorie", "千卡": "kilocalorie",
	"瓦时": "watt_hour", "千瓦时": "kilowatt_hour",
	// Power.
	"瓦": "watt", "千瓦": "kilowatt", "兆瓦": "megawatt",
	// Temperature.
	"开": "kelvin", "摄氏度": "degC", "华氏度": "degF",
	// Electric.
	"安": "ampere", "毫安": "milliampere", "微安": "microampere",
	"伏": "volt", "毫伏": "millivolt", "千伏": "kilovolt", "欧": "ohm",
	// Other.
	"摩尔": "mole", "坎": "candela", "公顷": "hectare",
}

// ChineseUnits returns a copy of the Chinese-to-registered-name alias table.
func ChineseUnits() map[string]string {
	out := make(map[string]string, len(chineseAliases))
	for alias, target := range chineseAliases {
		out[alias] = target
	}
	return out
}

func (r *Registry) installDefaults() {
	// Prefixed variants first so that explicit definitions win on collision.
	for _, def := range defaultUnits {
		if !def.prefixable {
			continue
		}
		for _, p := range metricPrefixes {
			r.define(p.name+def.name, "", def.factor*p.factor, 0, def.dims)
			for _, ps := range p.symbols {
				for _, us := range def.symbols {
					r.define(ps+us, "", def.factor*p.factor, 0, def.dims)
				}
			}
		}
	}

	install := func(defs []unitDef) {
		for _, def := range defs {
			r.define(def.name, "", def.factor, def.offset, def.dims, def.symbols...)
		}
	}
	install(defaultUnits)
	install(lightUnits)

	for alias, target := range chineseAliases {
		// Targets are all registered above; a miss here is a table bug.
		if err := r.Alias(alias, target); err != nil {
			panic("quantity: bad default alias " + alias + ": " + err.Error())
		}
	}
}

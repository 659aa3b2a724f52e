package sc

import (
	"math"

	"github.com/katalvlaran/unitexpr/unit"
)

// System is the semiconductor unit system. All units in this package are
// bound to it.
var System = mustSystem()

// Base units.
var (
	Nm  = mustBase("nm")  // nanometer
	Ps  = mustBase("ps")  // picosecond
	Me  = mustBase("m_e") // electron rest mass
	A   = mustBase("A")   // ampere
	K   = mustBase("K")   // kelvin
	Mol = mustBase("mol") // mole
	Cd  = mustBase("cd")  // candela
)

// SI units expressed on the semiconductor base.
var (
	M  = def("m", "meter", "length", unit.Scale(Nm, 1e9))
	S  = def("s", "second", "time", unit.Scale(Ps, 1e12))
	Kg = def("kg", "kilogram", "mass", unit.Scale(Me, 1/9.1093837015*1e31))
)

// Derived units.
var (
	Au      = def("au", "astronomical unit", "length", unit.Scale(M, 149597870700))
	Sr      = def("sr", "steradian", "solid angle", System.One())
	N       = def("N", "newton", "force", mul(Kg, M, pow(S, -2)))
	J       = def("J", "joule", "energy", mul(N, M))
	EV      = def("eV", "electronvolt", "energy", unit.Scale(J, 1.602176634e-19))
	W       = def("W", "watt", "power", div(J, S))
	C       = def("C", "coulomb", "charge", mul(A, S))
	V       = def("V", "volt", "electric potential difference", div(J, C))
	F       = def("F", "farad", "capacitance", div(C, V))
	Ohm     = def("ohm", "ohm", "resistance", div(V, A))
	Pa      = def("Pa", "pascal", "pressure", mul(N, pow(M, -2)))
	Siemens = def("S", "siemens", "electrical conductance", pow(Ohm, -1))
	Wb      = def("Wb", "weber", "magnetic flux", mul(V, S))
	T       = def("T", "tesla", "magnetic flux density", mul(Wb, pow(M, -2)))
	H       = def("H", "henry", "inductance", div(Wb, A))
	Lm      = def("lm", "lumen", "luminous flux", div(Cd, Sr))
	Bq      = def("Bq", "becquerel", "radioactivity", pow(S, -1))
	Lx      = def("lx", "lux", "illuminance", mul(Lm, pow(M, -2)))
	Gy      = def("Gy", "gray", "absorbed dose of ionizing radiation", div(J, Kg))
)

// Defining constants of the 2019 SI revision, with companions. The base
// electron mass Me doubles as the electron-mass constant here.
var (
	DeltaNuCs = def("delta_nu_Cs", "hyperfine transition frequency of Cs-133", "frequency",
		unit.Scale(pow(S, -1), 9192631770))
	CLight = def("c", "speed of light", "velocity", unit.Scale(div(M, S), 299792458))
	Planck = def("h", "Planck constant", "angular momentum", unit.Scale(mul(J, S), 6.62607015e-34))
	HBar   = def("h_bar", "reduced Planck constant", "angular momentum",
		unit.Scale(Planck, 1/(2*math.Pi)))
	Qe = def("e", "elementary charge", "charge", unit.Scale(C, 1.602176634e-19))
	KB = def("k", "Boltzmann constant", "energy per kelvin", unit.Scale(div(J, K), 1.380649e-23))
	NA = def("N_a", "Avogadro constant", "molecules per mole", unit.Scale(pow(Mol, -1), 6.02214076e23))
	Kcd = def("K_cd", "luminous efficacy of 540 THz radiation", "luminous efficacy",
		unit.Scale(div(Lm, W), 683))
)

func mustSystem() *unit.System {
	sys, err := unit.NewSystem("sc",
		unit.Symbol{Symbol: "nm", Name: "nanometer", Quantity: "length"},
		unit.Symbol{Symbol: "ps", Name: "picosecond", Quantity: "time"},
		unit.Symbol{Symbol: "m_e", Name: "electron rest mass", Quantity: "mass"},
		unit.Symbol{Symbol: "A", Name: "ampere", Quantity: "electric current"},
		unit.Symbol{Symbol: "K", Name: "kelvin", Quantity: "temperature"},
		unit.Symbol{Symbol: "mol", Name: "mole", Quantity: "amount of substance"},
		unit.Symbol{Symbol: "cd", Name: "candela", Quantity: "luminous intensity"},
	)
	if err != nil {
		panic(err)
	}

	return sys
}

func mustBase(symbol string) *unit.Unit {
	u, ok := System.Base(symbol)
	if !ok {
		panic("sc: unknown base unit " + symbol)
	}

	return u
}

func def(symbol, name, quantity string, e unit.Operand) *unit.Unit {
	u, err := System.Define(symbol, name, quantity, e)
	if err != nil {
		panic(err)
	}

	return u
}

func mul(ops ...unit.Operand) unit.Expr {
	out := unit.Scale(ops[0], 1)
	for _, op := range ops[1:] {
		next, err := unit.Mul(out, op)
		if err != nil {
			panic(err)
		}
		out = next
	}

	return out
}

func div(a, b unit.Operand) unit.Expr {
	out, err := unit.Div(a, b)
	if err != nil {
		panic(err)
	}

	return out
}

func pow(a unit.Operand, p float64) unit.Expr {
	out, err := unit.Pow(a, p)
	if err != nil {
		panic(err)
	}

	return out
}

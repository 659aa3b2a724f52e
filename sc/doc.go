// Package sc declares a semiconductor-physics unit system on the base
// units nanometer, picosecond, electron rest mass, ampere, kelvin, mole
// and candela.
//
// The scales match the regimes of carrier transport simulations: lengths
// in nanometers, times in picoseconds, masses in electron rest masses.
// The familiar SI units (M, S, Kg and the derived table) are declared on
// top of the base units, so quantities convert between the two scales via
// the ordinary scaling-factor machinery.
//
// Everything here is immutable after package initialization and safe for
// concurrent use. Naming follows package si; the base electron mass is Me.
package sc

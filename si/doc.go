// Package si declares the International System of Units on the seven base
// units meter, second, kilogram, ampere, kelvin, mole and candela.
//
// The si package provides:
//
//   - System, the closed unit system all package-level units belong to.
//   - The base units M, S, Kg, A, K, Mol and Cd.
//   - The named derived units (N, J, W, Pa, V, Ohm, ...) built from the
//     base units by expression arithmetic.
//   - The defining constants of the 2019 SI revision (CLight, Planck, Qe,
//     KB, NA, Kcd, DeltaNuCs) plus a few common companions (HBar, Me, EV).
//
// Everything here is immutable after package initialization and safe for
// concurrent use. A handful of symbols collide with Go naming or with each
// other when exported (s vs S, c vs C, k vs K); the colliding constants
// carry descriptive names instead: CLight, KB, Siemens.
package si

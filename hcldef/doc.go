// Package hcldef loads unit-system definitions from HCL configuration.
//
// A definition file declares one or more systems, each with its base units
// and optional derived units:
//
//	system "metric" {
//	  base "m" {
//	    name     = "meter"
//	    quantity = "length"
//	  }
//	  base "s" {
//	    name     = "second"
//	    quantity = "time"
//	  }
//	  base "kg" {
//	    name     = "kilogram"
//	    quantity = "mass"
//	  }
//
//	  unit "N" {
//	    name     = "newton"
//	    quantity = "force"
//	    term "kg" { exp = 1 }
//	    term "m"  { exp = 1 }
//	    term "s"  { exp = -2 }
//	  }
//
//	  unit "cm" {
//	    name     = "centimeter"
//	    quantity = "length"
//	    factor   = 0.01
//	    term "m" { exp = 1 }
//	  }
//	}
//
// A term's exp defaults to 1. The factor attribute is an HCL expression
// evaluated with the variable pi and the function pow(base, exponent) in
// scope, so factor = 1 / (2 * pi) is legal; it defaults to 1. Terms may
// reference base units and any unit declared earlier in the same system.
//
// Parse decodes a single buffer; Load walks files and directories for
// *.hcl definitions. Both return fully built unit systems.
package hcldef

package main

// Flag defaults and usage strings shared across the one/best/gen
// subcommands, split out of main.go the way commonflags.go holds
// shared flag text for the wuffs command-line tools.
const (
	nVarsDefault = 6
	nVarsUsage   = "number of variables in the function"

	kDefault = 2
	kUsage   = "bound-set size (number of variables held fixed per cofactor)"

	nRailsDefault = 8
	nRailsUsage   = "maximum output rails the split may use"

	seedDefault = 1
	seedUsage   = "seed for the deterministic tie-breaking generator"

	jratioDefault = 0
	jratioUsage   = "1-in-N chance of jumping to a second-best candidate (0 disables)"

	ttDefault = "0x0"
	ttUsage   = "truth table in hex, most-significant nibble first"

	nFuncsDefault = 100
	nFuncsUsage   = "number of random functions to generate"

	sharedUsage = "report the minimum as a rail count rather than a column multiplicity"

	verboseUsage = "print a line per generated function in addition to the summary"
)

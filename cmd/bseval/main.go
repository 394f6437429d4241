// Command bseval is a small CLI wrapper around the bound-set search
// engine: it parses a truth table from the command line (or generates
// random ones) and prints the same reports the evaluator's original test
// entry points did.
package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/synthcore/boundset/internal/bseval"
	"github.com/synthcore/boundset/internal/report"
	"github.com/synthcore/boundset/internal/ttable"
)

// VERSION is injected by build flags.
var VERSION = "SELFBUILD"

func main() {
	app := cli.NewApp()
	app.Name = "bseval"
	app.Usage = "bound-set decomposition evaluator"
	app.Version = VERSION
	app.Commands = []cli.Command{
		oneCommand(),
		bestCommand(),
		genCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func oneCommand() cli.Command {
	return cli.Command{
		Name:  "one",
		Usage: "report the column multiplicity of a single truth table at a fixed split",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "n", Value: nVarsDefault, Usage: nVarsUsage},
			cli.IntFlag{Name: "k", Value: kDefault, Usage: kUsage},
			cli.StringFlag{Name: "tt", Value: ttDefault, Usage: ttUsage},
		},
		Action: func(c *cli.Context) error {
			nVars := c.Int("n")
			lutSize := c.Int("k")
			tt, err := parseTT(c.String("tt"), nVars)
			if err != nil {
				return errors.Wrap(err, "one")
			}
			e := bseval.NewEvaluator()
			report.OneTest(os.Stdout, e, tt, nVars, nVars-lutSize)
			return nil
		},
	}
}

func bestCommand() cli.Command {
	return cli.Command{
		Name:  "best",
		Usage: "search for the best bound-set split of a single truth table",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "n", Value: nVarsDefault, Usage: nVarsUsage},
			cli.IntFlag{Name: "k", Value: kDefault, Usage: kUsage},
			cli.StringFlag{Name: "tt", Value: ttDefault, Usage: ttUsage},
			cli.IntFlag{Name: "seed", Value: seedDefault, Usage: seedUsage},
			cli.BoolFlag{Name: "shared", Usage: sharedUsage},
		},
		Action: func(c *cli.Context) error {
			nVars := c.Int("n")
			lutSize := c.Int("k")
			tt, err := parseTT(c.String("tt"), nVars)
			if err != nil {
				return errors.Wrap(err, "best")
			}
			e := bseval.NewEvaluator()
			report.BestTest(os.Stdout, e, tt, nVars, lutSize, c.Bool("shared"), uint32(c.Int("seed")))
			return nil
		},
	}
}

func genCommand() cli.Command {
	return cli.Command{
		Name:  "gen",
		Usage: "search many random functions and report the multiplicity/rail-count distribution",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "n", Value: nVarsDefault, Usage: nVarsUsage},
			cli.IntFlag{Name: "k", Value: kDefault, Usage: kUsage},
			cli.IntFlag{Name: "nfuncs", Value: nFuncsDefault, Usage: nFuncsUsage},
			cli.IntFlag{Name: "seed", Value: seedDefault, Usage: seedUsage},
			cli.BoolFlag{Name: "verbose", Usage: verboseUsage},
		},
		Action: func(c *cli.Context) error {
			nVars := c.Int("n")
			lutSize := c.Int("k")
			if lutSize <= 0 || lutSize >= nVars {
				return errors.Errorf("gen: k must be in (0,%d), got %d", nVars, lutSize)
			}
			e := bseval.NewEvaluator()
			report.BestGen(os.Stdout, e, nVars, lutSize, c.Int("nfuncs"), uint32(c.Int("seed")), c.Bool("verbose"))
			return nil
		},
	}
}

// parseTT parses a hex string (most-significant nibble first, as printed
// by internal/report) into a packed truth table of nVars variables.
func parseTT(s string, nVars int) ([]uint64, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, errors.New("parseTT: empty truth table string")
	}
	nWords := ttable.WordNum(nVars)
	tt := make([]uint64, nWords)
	nBits := 1 << uint(nVars)

	for pos, ch := range s {
		nibble, err := strconv.ParseUint(string(ch), 16, 8)
		if err != nil {
			return nil, errors.Wrapf(err, "parseTT: invalid hex digit %q", ch)
		}
		lo := (len(s) - 1 - pos) * 4
		for b := 0; b < 4; b++ {
			bitIdx := lo + b
			if bitIdx >= nBits {
				continue
			}
			ttable.SetBitTo(tt, bitIdx, int((nibble>>uint(b))&1))
		}
	}
	return tt, nil
}

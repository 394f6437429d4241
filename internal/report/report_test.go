package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/synthcore/boundset/internal/bseval"
)

func TestHexMuxMatchesLiteralConstant(t *testing.T) {
	// n=3, tt=0xCA must round-trip through hex exactly, since 2^3=8 bits
	// is exactly 2 hex digits.
	tt := []uint64{0xCA}
	if got := hex(tt, 3); got != "ca" {
		t.Fatalf("hex(0xCA, 3) = %q, want %q", got, "ca")
	}
}

func TestHexPadsToFullNibbleWidth(t *testing.T) {
	// n=2 has only 4 bits, i.e. exactly one hex digit; a table with only
	// the top bit set must still print as a single, non-empty digit.
	tt := []uint64{0x8}
	got := hex(tt, 2)
	if len(got) != 1 {
		t.Fatalf("hex(0x8, 2) = %q, want a single hex digit", got)
	}
}

func TestOneTestReportsColumnMultiplicityAndLeavesInputUnmodified(t *testing.T) {
	tt := []uint64{0xCA}
	orig := append([]uint64{}, tt...)
	e := bseval.NewEvaluator()

	var buf bytes.Buffer
	OneTest(&buf, e, tt, 3, 2)

	out := buf.String()
	if !strings.Contains(out, "ca") {
		t.Errorf("report does not mention the truth table: %q", out)
	}
	if !strings.Contains(out, "is 2.") {
		t.Errorf("expected column multiplicity 2 for MUX with free set {x0,x1}, got: %q", out)
	}
	for i := range tt {
		if tt[i] != orig[i] {
			t.Errorf("OneTest mutated its input table")
		}
	}
}

func TestBestTestFindsMuxDecomposition(t *testing.T) {
	tt := []uint64{0xCA}
	e := bseval.NewEvaluator()

	var buf bytes.Buffer
	BestTest(&buf, e, tt, 3, 1, false, 1)

	out := buf.String()
	if !strings.Contains(out, "is 2.") {
		t.Errorf("expected the best split to reach multiplicity 2, got: %q", out)
	}
}

func TestBestGenProducesANonEmptyHistogramSummingToNFuncs(t *testing.T) {
	e := bseval.NewEvaluator()
	var buf bytes.Buffer
	BestGen(&buf, e, 5, 2, 20, 7, false)

	out := buf.String()
	if !strings.Contains(out, "Generated 20 random 5-var functions.") {
		t.Errorf("missing summary line, got: %q", out)
	}
	if !strings.Contains(out, "Distribution of the minimum column multiplicity") {
		t.Errorf("missing column multiplicity histogram, got: %q", out)
	}
	if !strings.Contains(out, "Distribution of the minimum number of rails") {
		t.Errorf("missing rail-count histogram, got: %q", out)
	}
}

package orthosnap

import (
	"reflect"
	"slices"
	"testing"
)

func TestArgsPolicyTokenPassesThroughVerbatim(t *testing.T) {
	for _, policy := range []InparalogToKeep{
		InparalogShortestSeqLen,
		InparalogMedianSeqLen,
		InparalogLongestSeqLen,
		InparalogShortestBranchLen,
		InparalogMedianBranchLen,
		InparalogLongestBranchLen,
	} {
		p := DefaultParams()
		p.InparalogToKeep = policy
		if got := argAfter(t, p.Args(), "-ip"); got != string(policy) {
			t.Errorf("Wrong -ip token for %s:\nEXPECTED:\n%s\nACTUAL:\n%s\n", policy, policy, got)
		}
	}
}

func TestArgsNoneSentinelBecomesLongestSeqLen(t *testing.T) {
	p := DefaultParams()
	p.InparalogToKeep = InparalogNone
	if got := argAfter(t, p.Args(), "-ip"); got != string(InparalogLongestSeqLen) {
		t.Errorf("Wrong -ip token for none sentinel:\nEXPECTED:\n%s\nACTUAL:\n%s\n", InparalogLongestSeqLen, got)
	}
}

func TestArgsSupportCoercionAndPassThrough(t *testing.T) {
	p := DefaultParams()
	p.Support = nil
	if got := argAfter(t, p.Args(), "-s"); got != "0.0" {
		t.Errorf("Wrong -s token for absent support:\nEXPECTED:\n0.0\nACTUAL:\n%s\n", got)
	}

	for supplied, expected := range map[float64]string{
		70:   "70",
		80:   "80",
		62.5: "62.5",
	} {
		supplied := supplied
		p := DefaultParams()
		p.Support = &supplied
		if got := argAfter(t, p.Args(), "-s"); got != expected {
			t.Errorf("Wrong -s token for %v:\nEXPECTED:\n%s\nACTUAL:\n%s\n", supplied, expected, got)
		}
	}
}

func TestArgsBooleanFlagsPresentOnlyWhenSet(t *testing.T) {
	for _, tc := range []struct {
		rooted, snapTrees bool
	}{
		{false, false},
		{true, false},
		{false, true},
		{true, true},
	} {
		p := DefaultParams()
		p.Rooted = tc.rooted
		p.SnapTrees = tc.snapTrees
		args := p.Args()
		if got := slices.Contains(args, "-r"); got != tc.rooted {
			t.Errorf("-r presence is %v, want %v (args: %v)", got, tc.rooted, args)
		}
		if got := slices.Contains(args, "-st"); got != tc.snapTrees {
			t.Errorf("-st presence is %v, want %v (args: %v)", got, tc.snapTrees, args)
		}
	}
}

func TestArgsDefaultVector(t *testing.T) {
	p := DefaultParams()
	p.Tree = "fam.tre"
	p.Fasta = "fam.fa"
	p.OutDir = "out"
	expected := []string{
		"-t", "fam.tre",
		"-f", "fam.fa",
		"-s", "80",
		"-o", "5",
		"-ip", "longest_seq_len",
		"-op", "out",
	}
	if actual := p.Args(); !reflect.DeepEqual(actual, expected) {
		t.Errorf("Wrong argument vector:\nEXPECTED:\n%v\nACTUAL:\n%v\n", expected, actual)
	}
}

func TestParseInparalogToKeep(t *testing.T) {
	for _, policy := range InparalogPolicies {
		parsed, err := ParseInparalogToKeep(string(policy))
		if err != nil {
			t.Fatalf("ParseInparalogToKeep(%q) error: %v", policy, err)
		}
		if parsed != policy {
			t.Errorf("ParseInparalogToKeep(%q) = %q", policy, parsed)
		}
	}
	if _, err := ParseInparalogToKeep("longest"); err == nil {
		t.Error("expected error for unknown policy value")
	}
}

// argAfter returns the token following flag in args.
func argAfter(t *testing.T, args []string, flag string) string {
	t.Helper()
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	t.Fatalf("flag %s not found in %v", flag, args)
	return ""
}

// Package orthosnap wraps the orthosnap command-line tool (splitting of
// multi-copy gene family trees into single-copy orthogroups) as a pipeline
// step: a typed parameter set, its translation into an argument vector, and
// a synchronous subprocess invocation.
package orthosnap

import (
	"fmt"
	"strconv"
)

// InparalogToKeep selects which of several same-species gene copies the tool
// retains when pruning a subgroup down to one sequence per species.
type InparalogToKeep string

const (
	// InparalogNone is a selectable no-op. It is rewritten to
	// InparalogLongestSeqLen before the command line is built, so the tool
	// itself never sees it.
	InparalogNone InparalogToKeep = "none"

	InparalogShortestSeqLen    InparalogToKeep = "shortest_seq_len"
	InparalogMedianSeqLen      InparalogToKeep = "median_seq_len"
	InparalogLongestSeqLen     InparalogToKeep = "longest_seq_len"
	InparalogShortestBranchLen InparalogToKeep = "shortest_branch_len"
	InparalogMedianBranchLen   InparalogToKeep = "median_branch_len"
	InparalogLongestBranchLen  InparalogToKeep = "longest_branch_len"
)

// InparalogPolicies lists every accepted policy value, sentinel included.
var InparalogPolicies = []InparalogToKeep{
	InparalogNone,
	InparalogShortestSeqLen,
	InparalogMedianSeqLen,
	InparalogLongestSeqLen,
	InparalogShortestBranchLen,
	InparalogMedianBranchLen,
	InparalogLongestBranchLen,
}

// Valid reports whether ip is one of the accepted policy values.
func (ip InparalogToKeep) Valid() bool {
	for _, p := range InparalogPolicies {
		if ip == p {
			return true
		}
	}
	return false
}

// ParseInparalogToKeep converts a user-supplied string into a policy value.
func ParseInparalogToKeep(s string) (InparalogToKeep, error) {
	ip := InparalogToKeep(s)
	if !ip.Valid() {
		return "", fmt.Errorf("unknown inparalog_to_keep value %q", s)
	}
	return ip, nil
}

// Params holds one invocation's worth of parameters for the orthosnap tool.
// Tree and Fasta are locally accessible paths; staging from remote locations
// happens before a Params is built.
type Params struct {
	// Tree is the multi-copy gene family tree, in newick format. Leaf
	// labels must follow the "species|gene" convention.
	Tree string `yaml:"tree"`

	// Fasta holds the gene family sequences, with headers matching the
	// tree's "species|gene" labels.
	Fasta string `yaml:"fasta"`

	// Support is the bipartition support threshold; bipartitions below it
	// are collapsed by the tool. A nil value is passed to the tool as 0.0,
	// which disables collapsing.
	Support *float64 `yaml:"support"`

	// Occupancy is the minimum number of tips a subgroup must retain.
	// Carried as an integer; the tool rounds its own 50%-of-taxa default
	// the same way.
	Occupancy int `yaml:"occupancy"`

	// Rooted marks the input tree as already rooted. When false the tool
	// midpoint-roots the tree itself.
	Rooted bool `yaml:"rooted"`

	// SnapTrees requests newick files for each identified subgroup.
	SnapTrees bool `yaml:"snap_trees"`

	// InparalogToKeep selects the pruning policy for same-species copies.
	InparalogToKeep InparalogToKeep `yaml:"inparalog_to_keep"`

	// OutDir is the local directory the tool writes its results into.
	OutDir string `yaml:"out_dir"`
}

const (
	// DefaultSupport suits ultrafast bootstrap approximations; with
	// standard bootstrap values 70 is the common choice.
	DefaultSupport = 80.0

	DefaultOccupancy = 5
)

// DefaultParams returns a Params with the documented defaults filled in.
// Tree, Fasta and OutDir are left for the caller.
func DefaultParams() Params {
	s := DefaultSupport
	return Params{
		Support:         &s,
		Occupancy:       DefaultOccupancy,
		InparalogToKeep: InparalogLongestSeqLen,
	}
}

// Normalize rewrites the two coercible fields in place: the "none" policy
// sentinel becomes the longest-sequence-length policy, and an absent support
// threshold becomes 0.0. Nothing else is touched, and Normalize cannot fail.
func (p *Params) Normalize() {
	if p.InparalogToKeep == InparalogNone || p.InparalogToKeep == "" {
		p.InparalogToKeep = InparalogLongestSeqLen
	}
	if p.Support == nil {
		zero := 0.0
		p.Support = &zero
	}
}

// Args builds the argument vector for the orthosnap executable, normalizing
// first. The rooted and snap-trees flags are bare tokens appended only when
// set; the tool has no explicit-false spelling for either.
func (p Params) Args() []string {
	p.Normalize()

	args := []string{
		"-t", p.Tree,
		"-f", p.Fasta,
		"-s", formatSupport(*p.Support),
		"-o", strconv.Itoa(p.Occupancy),
		"-ip", string(p.InparalogToKeep),
	}
	if p.Rooted {
		args = append(args, "-r")
	}
	if p.SnapTrees {
		args = append(args, "-st")
	}
	args = append(args, "-op", p.OutDir)
	return args
}

// formatSupport renders a support threshold for the command line. Supplied
// values pass through with no spurious decimals (70 -> "70"), while the
// coerced zero keeps its "0.0" spelling so a disabled threshold stays
// recognizable in audit logs.
func formatSupport(v float64) string {
	if v == 0 {
		return "0.0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

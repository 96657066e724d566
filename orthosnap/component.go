package orthosnap

import (
	"path/filepath"
	"strings"

	sp "github.com/scipipe/scipipe"
)

// SnapProc runs orthosnap as a workflow process, splitting a multi-copy gene
// family tree into single-copy orthogroups.
type SnapProc struct {
	*sp.Process
}

// SnapConf contains parameters for initializing a SnapProc process. Tree and
// fasta arrive on the in-ports; everything else is fixed per process.
type SnapConf struct {
	Support         *float64
	Occupancy       int
	Rooted          bool
	SnapTrees       bool
	InparalogToKeep InparalogToKeep
	OutDir          string
}

// NewSnapProc returns a new SnapProc process. The tool writes its result
// files under conf.OutDir on its own, outside scipipe's atomic-output
// handling, so the directory is anchored absolutely and a done-flag file is
// the tracked output.
func NewSnapProc(wf *sp.Workflow, name string, conf SnapConf) *SnapProc {
	outDir := conf.OutDir
	if abs, err := filepath.Abs(outDir); err == nil {
		outDir = abs
	}

	params := Params{
		Tree:            "{i:tree}",
		Fasta:           "{i:fasta}",
		Support:         conf.Support,
		Occupancy:       conf.Occupancy,
		Rooted:          conf.Rooted,
		SnapTrees:       conf.SnapTrees,
		InparalogToKeep: conf.InparalogToKeep,
		OutDir:          outDir,
	}
	cmd := "mkdir -p " + outDir + " && " +
		Executable() + " " + strings.Join(params.Args(), " ") +
		" && echo snap_done > {o:snapdone}"

	p := wf.NewProc(name, cmd)
	p.SetOut("snapdone", filepath.Join(outDir, "snap_done.flag"))

	return &SnapProc{p}
}

// InTree returns the Tree in-port
func (p *SnapProc) InTree() *sp.InPort {
	return p.In("tree")
}

// InFasta returns the Fasta in-port
func (p *SnapProc) InFasta() *sp.InPort {
	return p.In("fasta")
}

// OutSnapDone returns the SnapDone out-port, whose flag file marks the
// output directory as populated.
func (p *SnapProc) OutSnapDone() *sp.OutPort {
	return p.Out("snapdone")
}

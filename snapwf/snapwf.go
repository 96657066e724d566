package main

import (
	"flag"
	"fmt"
	"log"

	sp "github.com/scipipe/scipipe"
	spcomp "github.com/scipipe/scipipe/components"

	"github.com/pharmbio/orthosnap-wf/orthosnap"
	"github.com/pharmbio/orthosnap-wf/staging"
)

var (
	treePath  = flag.String("tree", "data/fam.tre", "Multi-copy gene family tree (newick, species|gene labels); path or http(s) URL")
	fastaPath = flag.String("fasta", "data/fam.fa", "Gene family sequences (fasta, species|gene headers); path or http(s) URL")
	outDir    = flag.String("outdir", "results/orthosnap", "Directory the tool writes its result files into")
	maxTasks  = flag.Int("maxtasks", 4, "Max number of local cores to use")
	support   = flag.Float64("support", orthosnap.DefaultSupport, "Bipartition support threshold")
	occupancy = flag.Int("occupancy", orthosnap.DefaultOccupancy, "Minimum number of tips per retained subgroup")
	rooted    = flag.Bool("rooted", false, "Input tree is already rooted")
	snapTrees = flag.Bool("snaptrees", false, "Also write newick files for each SNAP-OG")
	inparalog = flag.String("inparalog", string(orthosnap.InparalogLongestSeqLen), "Which same-species copy to keep")
)

func main() {
	// ------------------------------------------------
	// Set up paths
	// ------------------------------------------------
	dataDir := "data"

	flag.Parse()
	sp.InitLogInfo()

	policy, err := orthosnap.ParseInparalogToKeep(*inparalog)
	if err != nil {
		log.Fatal(err)
	}

	wf := sp.NewWorkflow("orthosnap_wf", *maxTasks)

	// ----------------------------------------------------------------------------
	// Data staging part of the workflow
	// ----------------------------------------------------------------------------

	var treeOut, fastaOut *sp.OutPort

	if staging.IsURL(*treePath) {
		downloadTree := wf.NewProc("download_tree", "wget "+*treePath+" -O {o:tree}")
		downloadTree.SetOut("tree", dataDir+"/gene_tree.tre")
		treeOut = downloadTree.Out("tree")
	} else {
		treeOut = spcomp.NewFileSource(wf, "gene_tree", *treePath).Out()
	}

	if staging.IsURL(*fastaPath) {
		downloadFasta := wf.NewProc("download_fasta", "wget "+*fastaPath+" -O {o:fasta}")
		downloadFasta.SetOut("fasta", dataDir+"/gene_family.fa")
		fastaOut = downloadFasta.Out("fasta")
	} else {
		fastaOut = spcomp.NewFileSource(wf, "gene_family", *fastaPath).Out()
	}

	// ----------------------------------------------------------------------------
	// Main Workflow
	// ----------------------------------------------------------------------------

	snap := orthosnap.NewSnapProc(wf, "orthosnap", orthosnap.SnapConf{
		Support:         support,
		Occupancy:       *occupancy,
		Rooted:          *rooted,
		SnapTrees:       *snapTrees,
		InparalogToKeep: policy,
		OutDir:          *outDir,
	})
	snap.InTree().From(treeOut)
	snap.InFasta().From(fastaOut)

	wf.Run()

	results, err := orthosnap.ResultGlob(*outDir)
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range results {
		fmt.Println(r)
	}
}

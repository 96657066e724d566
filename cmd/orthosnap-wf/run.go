package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pharmbio/orthosnap-wf/orthosnap"
	"github.com/pharmbio/orthosnap-wf/schema"
	"github.com/pharmbio/orthosnap-wf/staging"
)

var (
	runTree       string
	runFasta      string
	runOut        string
	runParamsFile string
	runWorkDir    string
	runSupport    float64
	runOccupancy  int
	runRooted     bool
	runSnapTrees  bool
	runInparalog  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Stage inputs, run orthosnap once, and publish the results",
	Long: `Run stages the gene tree and fasta inputs to the local working
directory, runs orthosnap synchronously with the given parameters, and
publishes the tool's output directory to the destination prefix.

Inputs and destination may be plain paths, file:// URLs, or http(s):// URLs
(inputs only). Parameters may also come from a YAML file; flags set on the
command line win over the file.

Examples:
  orthosnap-wf run --tree fam.tre --fasta fam.fa --out results/
  orthosnap-wf run --params run.yaml --support 70 --snap-trees
  orthosnap-wf run --tree https://example.org/fam.tre --fasta fam.fa \
      --out file:///data/results --inparalog-to-keep median_branch_len`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runTree, "tree", "", "multi-copy gene family tree (newick, species|gene labels)")
	runCmd.Flags().StringVar(&runFasta, "fasta", "", "gene family sequences (fasta, species|gene headers)")
	runCmd.Flags().StringVar(&runOut, "out", "", "destination prefix for the result files")
	runCmd.Flags().StringVar(&runParamsFile, "params", "", "YAML parameter file")
	runCmd.Flags().StringVar(&runWorkDir, "workdir", "orthosnap_wf_tmp", "local working directory for staging and tool output")
	runCmd.Flags().Float64Var(&runSupport, "support", orthosnap.DefaultSupport, "bipartition support threshold; below it, bipartitions are collapsed")
	runCmd.Flags().IntVar(&runOccupancy, "occupancy", orthosnap.DefaultOccupancy, "minimum number of tips per retained subgroup")
	runCmd.Flags().BoolVar(&runRooted, "rooted", false, "input tree is already rooted (skip midpoint rooting)")
	runCmd.Flags().BoolVar(&runSnapTrees, "snap-trees", false, "also write newick files for each SNAP-OG")
	runCmd.Flags().StringVar(&runInparalog, "inparalog-to-keep", string(orthosnap.InparalogLongestSeqLen),
		"which same-species copy to keep: none, shortest_seq_len, median_seq_len, longest_seq_len, shortest_branch_len, median_branch_len, longest_branch_len")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger, cleanup := setupLogger(cfg)
	defer cleanup()

	params, err := gatherParams(cmd)
	if err != nil {
		return err
	}
	if params.Tree == "" || params.Fasta == "" {
		return fmt.Errorf("both --tree and --fasta are required (flags or params file)")
	}
	if runOut == "" {
		return fmt.Errorf("--out is required")
	}

	workDir, err := filepath.Abs(runWorkDir)
	if err != nil {
		return err
	}

	// Resolve the input handles to local paths.
	treeRef := staging.NewFileRef(params.Tree)
	treeLocal, err := treeRef.Resolve(filepath.Join(workDir, "inputs"))
	if err != nil {
		return fmt.Errorf("stage tree: %w", err)
	}
	fastaRef := staging.NewFileRef(params.Fasta)
	fastaLocal, err := fastaRef.Resolve(filepath.Join(workDir, "inputs"))
	if err != nil {
		return fmt.Errorf("stage fasta: %w", err)
	}
	logger.Info("staged inputs", "tree", treeLocal, "fasta", fastaLocal)

	params.Tree = treeLocal
	params.Fasta = fastaLocal
	params.OutDir = filepath.Join(workDir, "orthosnap_output")
	params.Normalize()
	logger.Info("invoking orthosnap",
		"bin", orthosnap.Executable(),
		"support", *params.Support,
		"occupancy", params.Occupancy,
		"rooted", params.Rooted,
		"snap_trees", params.SnapTrees,
		"inparalog_to_keep", params.InparalogToKeep,
	)

	if err := orthosnap.Run(cmd.Context(), params); err != nil {
		return err
	}

	results, err := orthosnap.ResultGlob(params.OutDir)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		logger.Warn("orthosnap wrote no result files; no SNAP-OGs found?", "outdir", params.OutDir)
	}

	dest, err := staging.NewDirRef(runOut).Publish(params.OutDir)
	if err != nil {
		return err
	}
	logger.Info("published results", "dest", dest, "files", len(results))
	fmt.Fprintln(cmd.OutOrStdout(), dest)
	return nil
}

// gatherParams merges the three parameter sources: step defaults, then the
// YAML parameter file, then any flags set explicitly on the command line.
func gatherParams(cmd *cobra.Command) (orthosnap.Params, error) {
	params := orthosnap.DefaultParams()
	if runParamsFile != "" {
		var err error
		params, err = schema.LoadParamsFile(runParamsFile)
		if err != nil {
			return params, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("tree") {
		params.Tree = runTree
	}
	if flags.Changed("fasta") {
		params.Fasta = runFasta
	}
	if flags.Changed("support") {
		s := runSupport
		params.Support = &s
	}
	if flags.Changed("occupancy") {
		params.Occupancy = runOccupancy
	}
	if flags.Changed("rooted") {
		params.Rooted = runRooted
	}
	if flags.Changed("snap-trees") {
		params.SnapTrees = runSnapTrees
	}
	if flags.Changed("inparalog-to-keep") {
		ip, err := orthosnap.ParseInparalogToKeep(runInparalog)
		if err != nil {
			return params, err
		}
		params.InparalogToKeep = ip
	}
	return params, nil
}

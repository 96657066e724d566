package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "orthosnap-wf",
	Short: "Run OrthoSNAP as a managed pipeline step",
	Long: `orthosnap-wf wraps the orthosnap tree splitting and pruning tool as a
managed pipeline step: it stages the gene tree and fasta inputs, invokes the
tool with a typed parameter set, and publishes the result directory to a
destination prefix.

The splitting algorithm itself (bipartition collapsing, midpoint rooting,
inparalog selection) lives in the orthosnap executable, which must be on PATH
or pointed at via ORTHOSNAP_BIN.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(schemaCmd)
}

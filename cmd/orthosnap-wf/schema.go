package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pharmbio/orthosnap-wf/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the step's parameter schema as YAML",
	Long: `Schema prints the externally visible parameter surface of the
orthosnap step, with the display metadata a workflow-authoring UI needs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := schema.Describe().YAML()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

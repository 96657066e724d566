// Package schema declares the externally visible parameter surface of the
// orthosnap step: one field per workflow parameter, with the display
// metadata a workflow-authoring UI needs, plus loading of parameter files.
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pharmbio/orthosnap-wf/orthosnap"
)

// Field describes a single workflow parameter.
type Field struct {
	Name        string   `yaml:"name"`
	DisplayName string   `yaml:"display_name"`
	Description string   `yaml:"description"`
	Type        string   `yaml:"type"`
	Required    bool     `yaml:"required,omitempty"`
	Default     any      `yaml:"default,omitempty"`
	Allowed     []string `yaml:"allowed,omitempty"`
}

// Schema is the full parameter surface of one workflow step.
type Schema struct {
	Name        string  `yaml:"name"`
	DisplayName string  `yaml:"display_name"`
	Description string  `yaml:"description"`
	Fields      []Field `yaml:"fields"`
}

// Describe returns the canonical schema for the orthosnap step.
func Describe() Schema {
	policies := make([]string, len(orthosnap.InparalogPolicies))
	for i, p := range orthosnap.InparalogPolicies {
		policies[i] = string(p)
	}

	return Schema{
		Name:        "orthosnap",
		DisplayName: "OrthoSNAP",
		Description: "Split multi-copy gene family trees into single-copy orthogroups (SNAP-OGs) and prune species-specific inparalogs.",
		Fields: []Field{
			{
				Name:        "tree",
				DisplayName: "Multi-copy gene tree",
				Description: "Gene family tree in newick format; leaf labels must follow the species|gene convention.",
				Type:        "file",
				Required:    true,
			},
			{
				Name:        "fasta",
				DisplayName: "Gene family sequences",
				Description: "FASTA file whose headers match the tree's species|gene labels.",
				Type:        "file",
				Required:    true,
			},
			{
				Name:        "out_dir",
				DisplayName: "Output directory",
				Description: "Destination prefix the result files are published under.",
				Type:        "directory",
				Required:    true,
			},
			{
				Name:        "support",
				DisplayName: "Support threshold",
				Description: "Bipartitions with support below this value are collapsed. Null disables collapsing (passed as 0.0). Default 80 suits ultrafast bootstrap; use 70 for standard bootstrap.",
				Type:        "float",
				Default:     orthosnap.DefaultSupport,
			},
			{
				Name:        "occupancy",
				DisplayName: "Occupancy threshold",
				Description: "Minimum number of tips per retained orthologous subgroup. The tool's own default is 50% of the taxon count, rounded to the nearest integer.",
				Type:        "int",
				Default:     orthosnap.DefaultOccupancy,
			},
			{
				Name:        "rooted",
				DisplayName: "Tree is rooted",
				Description: "Assume the input phylogeny is already rooted instead of midpoint-rooting it.",
				Type:        "bool",
				Default:     false,
			},
			{
				Name:        "snap_trees",
				DisplayName: "Write SNAP-OG trees",
				Description: "Also emit a newick file for each identified subgroup.",
				Type:        "bool",
				Default:     false,
			},
			{
				Name:        "inparalog_to_keep",
				DisplayName: "Inparalog to keep",
				Description: "Which species-specific inparalog to retain, by sequence length or by tip-to-root branch length. The none value selects the default, longest_seq_len.",
				Type:        "enum",
				Default:     string(orthosnap.InparalogLongestSeqLen),
				Allowed:     policies,
			},
		},
	}
}

// YAML renders the schema for consumption by a workflow-authoring UI.
func (s Schema) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return out, nil
}

// LoadParamsFile reads a YAML parameter file on top of the step defaults.
// Absent keys keep their defaults; an explicit "support: null" clears the
// threshold so the adapter's zero-coercion kicks in.
func LoadParamsFile(path string) (orthosnap.Params, error) {
	params := orthosnap.DefaultParams()

	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("read params file: %w", err)
	}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return params, fmt.Errorf("parse params file %s: %w", path, err)
	}
	if !params.InparalogToKeep.Valid() {
		return params, fmt.Errorf("params file %s: unknown inparalog_to_keep value %q", path, params.InparalogToKeep)
	}
	return params, nil
}

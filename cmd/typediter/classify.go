package main

import (
	"github.com/spf13/cobra"

	"typediterable/internal/diagnostic"
	"typediterable/internal/shape"
	"typediterable/signature"
)

// constructorReport is the classification of one constructor.
type constructorReport struct {
	Name       string `json:"name"                 yaml:"name"`
	Kind       string `json:"kind,omitempty"       yaml:"kind,omitempty"`
	Decl       string `json:"declaration,omitempty" yaml:"declaration,omitempty"`
	Signature  string `json:"signature"            yaml:"signature"`
	Summary    string `json:"summary,omitempty"    yaml:"summary,omitempty"`
	Convention string `json:"convention"           yaml:"convention"`
	Pinned     bool   `json:"pinned,omitempty"     yaml:"pinned,omitempty"`
	Error      string `json:"error,omitempty"      yaml:"error,omitempty"`
}

type classifyReport struct {
	RunID        string                  `json:"run_id"                yaml:"run_id"`
	Constructors []constructorReport     `json:"constructors"          yaml:"constructors"`
	Diagnostics  *diagnostic.Diagnostics `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <descriptor.yaml>",
		Short: "Report the calling convention of each constructor in a descriptor file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runClassify(cmd, args[0])
		},
	}
}

func (a *app) runClassify(cmd *cobra.Command, path string) error {
	log := a.log().WithField("descriptor", path)

	file, err := shape.LoadFile(path)
	if err != nil {
		return err
	}

	diags := shape.Validate(file)
	for _, d := range diags.Warnings {
		log.Warn(d.String())
	}

	report := classifyReport{RunID: a.runID}

	for i := range file.Constructors {
		report.Constructors = append(report.Constructors, classifyConstructor(&file.Constructors[i]))
	}

	if diags.Len() > 0 {
		report.Diagnostics = diags
	}

	log.WithField("constructors", len(report.Constructors)).Debug("classified descriptor")

	if err := a.write(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	return diags.Error()
}

func classifyConstructor(c *shape.Constructor) constructorReport {
	out := constructorReport{Name: c.Name, Convention: signature.Auto.String()}

	sig, err := c.Signature()
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Signature = sig.String()

	summary := signature.Summarize(sig)
	out.Summary = summary.String()

	convention, err := c.ParsedConvention()
	if err != nil {
		out.Error = err.Error()
		return out
	}

	if convention.IsResolved() {
		out.Convention = convention.String()
		out.Pinned = true

		return out
	}

	convention, err = signature.Classify(summary)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Convention = convention.String()

	return out
}

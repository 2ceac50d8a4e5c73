package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"typediterable/internal/analyze"
	"typediterable/internal/shape"
	"typediterable/signature"
)

type inspectReport struct {
	RunID        string              `json:"run_id"       yaml:"run_id"`
	Packages     []string            `json:"packages"     yaml:"packages"`
	Constructors []constructorReport `json:"constructors" yaml:"constructors"`
}

func newInspectCmd(a *app) *cobra.Command {
	var descriptor string

	cmd := &cobra.Command{
		Use:   "inspect <package>...",
		Short: "Report the calling convention of exported New* functions and structs in Go packages",
		Long: `inspect loads Go packages and reports the calling convention of their exported
New* functions and struct types.

With --descriptor the supported constructors are also written as a descriptor
file usable by classify and cast.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(cmd, args, descriptor)
		},
	}

	cmd.Flags().StringVar(&descriptor, "descriptor", "", "Write supported constructors to this descriptor file")

	return cmd
}

func (a *app) runInspect(cmd *cobra.Command, patterns []string, descriptor string) error {
	log := a.log().WithField("patterns", patterns)

	report, err := analyze.NewAnalyzer().LoadPackages(patterns...)
	if err != nil {
		return err
	}

	out := inspectReport{RunID: a.runID, Packages: report.Packages}
	file := &shape.File{Version: "1"}

	for _, e := range report.Entries {
		entry := constructorReport{
			Name:       e.ID.Short(),
			Kind:       e.Kind.String(),
			Decl:       e.Declaration,
			Signature:  e.Signature.String(),
			Convention: e.Convention.String(),
		}

		if e.Supported() {
			entry.Summary = e.Summary.String()
			file.Constructors = append(file.Constructors, shape.FromSignature(e.ID.Name, e.Signature, signature.Auto))
		} else {
			entry.Error = e.Err.Error()
			log.WithField("constructor", entry.Name).WithError(e.Err).Warn("no calling convention")
		}

		out.Constructors = append(out.Constructors, entry)
	}

	log.WithField("constructors", len(out.Constructors)).Debug("inspected packages")

	if descriptor != "" {
		if err := shape.WriteFile(file, descriptor); err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"descriptor":   descriptor,
			"constructors": len(file.Constructors),
		}).Info("wrote descriptor")
	}

	return a.write(cmd.OutOrStdout(), out)
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoobzio/metricz"

	"typediterable/internal/diagnostic"
	"typediterable/internal/shape"
	"typediterable/iterable"
)

var errUnknownConstructor = errors.New("unknown constructor")

type castMetrics struct {
	Attempts  float64 `json:"attempts"  yaml:"attempts"`
	Successes float64 `json:"successes" yaml:"successes"`
	Failures  float64 `json:"failures"  yaml:"failures"`
	Fallbacks float64 `json:"fallbacks" yaml:"fallbacks"`
}

type castReport struct {
	RunID       string                  `json:"run_id"                yaml:"run_id"`
	Constructor string                  `json:"constructor"           yaml:"constructor"`
	Convention  string                  `json:"convention"            yaml:"convention"`
	Records     []shape.Record          `json:"records"               yaml:"records"`
	Metrics     castMetrics             `json:"metrics"               yaml:"metrics"`
	Diagnostics *diagnostic.Diagnostics `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

func newCastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cast <descriptor.yaml> <constructor> <elements.yaml>",
		Short: "Construct records from raw YAML elements",
		Long: `cast binds the named constructor of a descriptor file to a typed iterable and
constructs one record per raw element of the elements file.

With --on-error=skip failing elements are logged, reported as diagnostics and
skipped. With --on-error=fail the first failure ends the run; records built
before it are still written.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCast(cmd, args[0], args[1], args[2])
		},
	}
}

func (a *app) runCast(cmd *cobra.Command, descriptorPath, name, elementsPath string) error {
	log := a.log().WithField("constructor", name)

	file, err := shape.LoadFile(descriptorPath)
	if err != nil {
		return err
	}

	ctor, ok := file.Lookup(name)
	if !ok {
		return fmt.Errorf("%w %q in %s", errUnknownConstructor, name, descriptorPath)
	}

	elements, err := shape.LoadElements(elementsPath)
	if err != nil {
		return err
	}

	factory, err := iterable.LookupName(a.v.GetString(keyConvention))
	if err != nil {
		return err
	}

	registry := metricz.New()

	it, err := ctor.Iterable(factory, iterable.WithMetrics(registry))
	if err != nil {
		return err
	}

	log = log.WithField("convention", it.Convention())
	log.WithField("elements", len(elements)).Debug("casting")

	diags := &diagnostic.Diagnostics{}
	diags.AddInfo(diagnostic.CodeResolved,
		fmt.Sprintf("resolved %s from %s", it.Convention(), factory), name, diagnostic.NoIndex)

	var handler iterable.ErrorHandler
	if a.v.GetString(keyOnError) == policySkip {
		handler = iterable.Chain(
			iterable.LogErrors(log),
			diags.Recorder(name, diagnostic.SeverityWarning),
		)
	}

	records, castErr := iterable.Collect(it.Cast(elements, handler))
	if castErr != nil {
		var ce *iterable.CastError
		if errors.As(castErr, &ce) {
			diags.Add(diagnostic.FromError(diagnostic.SeverityError, name, ce.Index, ce.Raw, ce.Err))
		} else {
			diags.AddError(diagnostic.CodeCastFailed, castErr.Error(), name, diagnostic.NoIndex)
		}

		log.WithError(castErr).Error("cast stopped")
	}

	report := castReport{
		RunID:       a.runID,
		Constructor: name,
		Convention:  it.Convention().String(),
		Records:     records,
		Metrics: castMetrics{
			Attempts:  registry.Counter(iterable.CastAttemptsTotal).Value(),
			Successes: registry.Counter(iterable.CastSuccessesTotal).Value(),
			Failures:  registry.Counter(iterable.CastFailuresTotal).Value(),
			Fallbacks: registry.Counter(iterable.CastFallbacksTotal).Value(),
		},
		Diagnostics: diags,
	}

	if report.Records == nil {
		report.Records = []shape.Record{}
	}

	log.WithField("records", len(records)).Info("cast finished")

	if err := a.write(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	return castErr
}

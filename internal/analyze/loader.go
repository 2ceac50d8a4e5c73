package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"typediterable/signature"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// ConstructorPrefix selects the package-level functions reported as constructors.
const ConstructorPrefix = "New"

// Analyzer loads Go packages and reports their constructors.
type Analyzer struct {
	report *Report
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{report: &Report{}}
}

// LoadPackages loads the specified packages and adds their constructors to the report.
// Patterns are standard Go package patterns (e.g., "./...", "typediterable/examples/shapes").
func (a *Analyzer) LoadPackages(patterns ...string) (*Report, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg.PkgPath, pkg.Types)
	}

	a.report.sort()

	return a.report, nil
}

// Report returns the current report.
func (a *Analyzer) Report() *Report {
	return a.report
}

// processPackage extracts constructors from a type-checked package.
func (a *Analyzer) processPackage(pkgPath string, pkg *types.Package) {
	a.report.Packages = append(a.report.Packages, pkgPath)

	qualifier := types.RelativeTo(pkg)

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}

		var entry *Entry

		switch o := obj.(type) {
		case *types.Func:
			if !strings.HasPrefix(name, ConstructorPrefix) {
				continue
			}

			entry = analyzeFunc(o, qualifier)

		case *types.TypeName:
			st, ok := o.Type().Underlying().(*types.Struct)
			if !ok || o.IsAlias() {
				continue
			}

			entry = analyzeStruct(o, st)
		}

		if entry == nil {
			continue
		}

		entry.ID = TypeID{PkgPath: pkgPath, Name: name}
		classify(entry)

		a.report.Entries = append(a.report.Entries, entry)
	}
}

func classify(e *Entry) {
	if e.Err != nil {
		return
	}

	e.Summary = signature.Summarize(e.Signature)
	e.Convention, e.Err = signature.Classify(e.Summary)
}

package analyze

import (
	"slices"
	"strings"

	"typediterable/internal/common"
	"typediterable/signature"
)

// TypeID uniquely identifies a declaration by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "typediterable/examples/shapes"
	Name    string // e.g., "NewPoint"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the identifier qualified by the package alias: "shapes.NewPoint".
func (t TypeID) Short() string {
	return common.QualifiedName(t.PkgPath, t.Name)
}

// EntryKind tells how a constructor was found.
type EntryKind int

const (
	EntryKindUnknown EntryKind = iota
	EntryKindFunc              // exported New* function
	EntryKindStruct            // exported struct type built from its fields
)

// String returns a human-readable representation of the EntryKind.
func (k EntryKind) String() string {
	switch k {
	case EntryKindFunc:
		return "func"
	case EntryKindStruct:
		return "struct"
	default:
		return common.UnknownStr
	}
}

// Entry is one constructor found in a package.
type Entry struct {
	ID          TypeID
	Kind        EntryKind
	Declaration string // e.g. "NewPoint(x int, y int) Point"
	Signature   signature.Signature
	Summary     signature.Summary
	Convention  signature.Convention // signature.Auto when Err is set
	Err         error                // why no convention could be derived
}

// Supported reports whether a convention was derived.
func (e *Entry) Supported() bool {
	return e.Err == nil
}

// Report holds the constructors of all loaded packages.
type Report struct {
	// Packages are the loaded import paths in load order.
	Packages []string
	// Entries sorted by package path, then name.
	Entries []*Entry
}

// Lookup returns the entry for id, or nil if not found.
func (r *Report) Lookup(id TypeID) *Entry {
	for _, e := range r.Entries {
		if e.ID == id {
			return e
		}
	}

	return nil
}

// Unsupported returns the entries without a convention.
func (r *Report) Unsupported() []*Entry {
	var out []*Entry

	for _, e := range r.Entries {
		if !e.Supported() {
			out = append(out, e)
		}
	}

	return out
}

func (r *Report) sort() {
	slices.SortFunc(r.Entries, func(a, b *Entry) int {
		if c := strings.Compare(a.ID.PkgPath, b.ID.PkgPath); c != 0 {
			return c
		}

		return strings.Compare(a.ID.Name, b.ID.Name)
	})
}

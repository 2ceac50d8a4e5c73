// Package analyze inspects Go packages statically and reports the calling
// convention of their constructors.
//
// It uses golang.org/x/tools/go/packages with go/types to find exported
// New* functions and exported struct types, derives a signature for each and
// classifies it the way the Auto factory would at run time.
//
// Key types:
//   - TypeID: package import path + identifier
//   - Entry: one constructor with its declaration, signature and convention
//   - Report: all entries of the loaded packages
package analyze

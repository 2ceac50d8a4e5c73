// Package shape provides the YAML schema for constructor-shape descriptor files,
// their parsing and validation, and record constructors built from them.
//
// A descriptor declares the parameters of one or more constructors so that their
// calling convention can be classified, and raw elements cast, without Go code.
//
// # Schema Overview
//
//	version: "1"
//	constructors:
//	  - name: Point
//	    convention: auto           # optional, any name accepted by ParseConvention
//	    parameters:
//	      - x                      # shorthand: required positional-or-keyword
//	      - {name: y, default: 0}
//	      - {name: label, kind: keyword-only, default: ""}
//	      - {name: rest, kind: var-positional}
//
// # Parameter kinds
//
// The kind key accepts any name understood by signature.ParseParameterKind:
// positional-only (posonly), positional-or-keyword (the default),
// var-positional (args), keyword-only (kwonly) and var-keyword (kwargs).
// A present default key, even "default: null", makes the parameter optional.
//
// # Records
//
// Constructor.Builder returns an iterable.Constructor producing a Record: the
// bound parameter values keyed by name, with variadic captures stored under the
// capture parameter's name.
package shape

// Package signature describes constructor shapes and decides how a constructor should be called.
//
// A Signature is an ordered list of Parameters, each with a ParameterKind and an optional default.
// Summarize reduces a Signature to a Summary (per-kind counts, variadic flags) and Classify maps
// a Summary to a Convention using a fixed, ordered decision table:
//
//  1. positional-only and keyword-only parameters both present: unsupported
//  2. no named parameters: VARIABLE_LENGTH_ARGUMENT for *args, VARIABLE_LENGTH_KEYWORD_ARGUMENT
//     for **kwargs, otherwise unsupported
//  3. at least one required keyword-only parameter: VARIABLE_LENGTH_KEYWORD_ARGUMENT
//  4. exactly one positional slot: ONE_ARGUMENT
//  5. several positional slots with a required positional-only one, or *args without **kwargs:
//     VARIABLE_LENGTH_ARGUMENT
//  6. at most one required positional parameter: K2O_FALLBACKABLE
//  7. otherwise: VARIABLE_LENGTH_KEYWORD_ARGUMENT
//
// Bind matches call Arguments against a Signature the way a keyword-capable language would,
// reporting wrong arity or names as *ArityError. FromFunc and FromStruct derive signatures from
// Go func values and struct types.
package signature

// Package executor resolves client-supplied selection trees against the
// registry and its backing store.
//
// # Overview
//
// A request names a root operation (a field on the query root, e.g.
// user(id: 1)), and a nested selection set. Execution looks the root up in
// the registry, invokes its store lookup with the coerced id argument, and
// then walks the selection tree recursively:
//
//   - A scalar field is extracted from the current entity and emitted as is.
//   - A relationship field invokes its registry resolver and recurses into the
//     nested selection set with the target type's declarations. A
//     many-cardinality relationship yields one resolved sub-tree per related
//     entity, preserving the store's insertion order; a one-cardinality
//     relationship yields a single sub-tree or null.
//   - A name not declared on the current type records an UNKNOWN_FIELD error
//     for that field only.
//
// # Errors and partial success
//
// A root lookup that finds nothing resolves to an explicit null: "not found"
// is a legitimate, representable result, not a failure. Request-shape errors
// (UNKNOWN_OPERATION, UNKNOWN_FIELD, INVALID_ARGUMENT_TYPE) are recorded as
// located errors with message, path and an extensions code, and are strictly
// local: a bad field never aborts resolution of its siblings. Absence is
// never silently coerced into a default value.
//
// # Termination
//
// Resolution always terminates because the selection tree is supplied once
// per request and is finite; every recursion step consumes one of its nodes.
// There is no independent cycle guard: the registry never declares a
// relationship cycle reachable through a growing selection, and the executor
// relies on that declaration-side guarantee.
package executor

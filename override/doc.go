// Package override holds the per-builder store of pending property values.
//
// A Store maps property keys (see match.Key) to values. It has two write
// paths with deliberately different semantics:
//
//   - Set inserts only when the key is absent. The first value set for a key
//     wins; later sets for the same key are ignored.
//   - GetOrAdd returns the stored value, or computes a fallback exactly once,
//     stores it and returns it. Factories use it to resolve each property so
//     a key is never resolved twice for one build.
//
// Stored values are untyped. Convert and Resolve cast them to the static type
// of the property or constructor parameter that consumes them.
package override

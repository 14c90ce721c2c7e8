// Package plan turns analyzed packages into builder plans consumed by code
// generation.
//
// Planning pipeline:
//  1. Analyze packages → type graph
//  2. Load YAML (optional) → validate
//  3. For each selected struct type:
//     - Collect properties (exported fields, then getters)
//     - Pick the constructor with the most parameters, first declared on ties
//     - Bind every parameter to the property with the same folded name
//     - Bind the remaining settable properties to fields or setters
//  4. Emit diagnostics (unknown names, mismatches, inert properties)
package plan

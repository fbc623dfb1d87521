// Package normalize coerces raw tabular data into conformance with a
// parsed table schema.
//
// The transform is tolerant by design: value-level coercion failures
// degrade to NULL rather than aborting the run, matching the behavior of
// the bulk-loading pipelines this tool replaces. Structural problems
// (schema columns missing from the input header) are fatal.
package normalize

// Package dataset loads raw tabular data from CSV sources.
//
// A Dataset is the untyped input to the normalizer: a header naming the
// source columns and the data records as strings, in file order.
package dataset

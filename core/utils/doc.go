// Package utils provides common utility functions for the Infinity tooling.
// It holds loose type conversion helpers used when walking untyped JSON
// structures during inspection.
package utils

// Package rates prices shipments against the fee schedule. The calculator
// is pure and is the single pricing authority: quote and finalize both call
// it, and client-supplied prices are never stored.
package rates

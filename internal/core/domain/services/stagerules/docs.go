// Package stagerules implements the cascading form rule resolver: for each
// of the five shipment form stages it derives the active field rules from
// the form data entered so far, the country table and the fee schedule.
//
// Resolution is pure and stateless. Every call builds fresh rule values, so
// the same form data always yields the same rule set and resolutions for
// different requests cannot interfere.
package stagerules

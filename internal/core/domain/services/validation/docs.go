// Package validation checks shipment form data against the business rules.
// Drafts are validated leniently so partial forms can be saved; complete
// validation enforces every rule and is the gate a shipment must pass to be
// finalized. All violations are collected, never just the first.
package validation

// Package shipment contains the Shipment aggregate: the content fields
// assembled through the multi-stage form, the priced rate breakdown and the
// draft/finalized lifecycle.
//
// The aggregate enforces the one-way Draft -> Finalized transition and the
// immutability of finalized content. It does not price itself and it does
// not validate business rules; the rates and validation domain services own
// those concerns and feed their results into the aggregate through
// UpdateDetails and Finalize.
package shipment

// Package geography holds the static country reference table and the
// classification of shipments into Domestic, IntraGulf and International.
//
// Classification is a pure lookup over the table: identical countries are
// Domestic, two distinct Gulf countries are IntraGulf, everything else is
// International. Country matching is exact-string on canonical names; the
// ISO code on each entry exists so callers can localize labels at the
// presentation layer without changing rule inputs.
package geography

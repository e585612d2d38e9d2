package geography

import (
	"errors"

	"shipping/internal/pkg/errs"
)

// ErrEmptyCountryTable is returned when a Directory is constructed without countries.
var ErrEmptyCountryTable = errors.New("country table must contain at least one country")

// Country is one entry of the static country reference table.
//
// Name is the canonical identifier used everywhere in rule resolution and
// classification; Code carries the ISO 3166-1 alpha-2 code so presentation
// layers can translate labels without touching rule inputs.
type Country struct {
	Code   string `yaml:"code"`
	Name   string `yaml:"name"`
	IsGulf bool   `yaml:"isGulf"`
}

// Directory is the read-only lookup over the static country table.
//
// Lookups are exact-match on the canonical country name: no casing or
// diacritic normalization is applied, so callers must supply canonical
// identifiers. Unknown names classify as non-Gulf, which is the more
// restrictive validation path.
//
// Directory is immutable after construction and safe for concurrent use.
type Directory struct {
	countries []Country
	byName    map[string]Country
}

// NewDirectory builds a Directory from the static country set.
// Returns ErrEmptyCountryTable when no countries are supplied.
func NewDirectory(countries []Country) (*Directory, error) {
	if len(countries) == 0 {
		return nil, ErrEmptyCountryTable
	}

	byName := make(map[string]Country, len(countries))
	for _, c := range countries {
		if c.Name == "" {
			return nil, errs.NewValueIsRequiredError("country name")
		}
		byName[c.Name] = c
	}

	return &Directory{
		countries: append([]Country(nil), countries...),
		byName:    byName,
	}, nil
}

// Countries returns the full static country set in table order.
func (d *Directory) Countries() []Country {
	return append([]Country(nil), d.countries...)
}

// IsGulf reports whether the named country belongs to the Gulf region.
// Unknown names report false.
func (d *Directory) IsGulf(name string) bool {
	return d.byName[name].IsGulf
}

// Contains reports whether the named country exists in the table.
func (d *Directory) Contains(name string) bool {
	_, ok := d.byName[name]
	return ok
}

// Classify derives the shipment type from a sender/receiver country pair.
//
// The pair is Domestic iff the two names are identical strings, IntraGulf
// iff both are Gulf countries, and International otherwise.
func (d *Directory) Classify(senderCountry, receiverCountry string) ShipmentType {
	if senderCountry == receiverCountry {
		return Domestic
	}
	if d.IsGulf(senderCountry) && d.IsGulf(receiverCountry) {
		return IntraGulf
	}
	return International
}

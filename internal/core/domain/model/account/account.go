// Package account contains the Account entity: the owner of shipments and
// the source of the default sender profile used to pre-fill the sender stage.
//
// Authentication and session issuance live outside this service; the core
// only needs the account's identity for ownership checks and its saved
// sender profile for seeding drafts.
package account

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through the NewAccount constructor.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// ErrEmailIsRequired is returned when an account is constructed without an email.
var ErrEmailIsRequired = errors.New("email is required")

// SenderProfile is the account's saved default sender address, used to
// pre-fill blank sender fields when a draft is created.
type SenderProfile struct {
	Name       string
	Phone      string
	Country    string
	City       string
	Street     string
	PostalCode string
}

// Account identifies one customer of the shipping service.
type Account struct {
	id            kernel.UUID
	email         string
	senderProfile SenderProfile

	isConstructed bool
}

// NewAccount creates an account with a validated id and email.
// The sender profile may be empty; it only serves as a pre-fill source.
func NewAccount(id kernel.UUID, email string, senderProfile SenderProfile) (*Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, ErrEmailIsRequired
	}

	return &Account{
		id:            id,
		email:         email,
		senderProfile: senderProfile,
		isConstructed: true,
	}, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Email returns the account's email address.
func (a *Account) Email() string {
	return a.email
}

// SenderProfile returns the saved default sender address.
func (a *Account) SenderProfile() SenderProfile {
	return a.senderProfile
}

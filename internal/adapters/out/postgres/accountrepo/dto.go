// Package accountrepo provides data transfer objects and mapping functions for account persistence.
package accountrepo

import (
	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting accounts with
// their saved default sender profile.
type AccountDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"uniqueIndex"`

	SenderProfile SenderProfileDTO `gorm:"embedded;embeddedPrefix:sender_"`
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// SenderProfileDTO represents the embedded default sender address.
type SenderProfileDTO struct {
	Name       string
	Phone      string
	Country    string
	City       string
	Street     string
	PostalCode string
}

func fromDomain(aggregate *account.Account) AccountDTO {
	profile := aggregate.SenderProfile()
	return AccountDTO{
		ID:    aggregate.ID().Bytes(),
		Email: aggregate.Email(),
		SenderProfile: SenderProfileDTO{
			Name:       profile.Name,
			Phone:      profile.Phone,
			Country:    profile.Country,
			City:       profile.City,
			Street:     profile.Street,
			PostalCode: profile.PostalCode,
		},
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.NewAccount(id, dto.Email, account.SenderProfile{
		Name:       dto.SenderProfile.Name,
		Phone:      dto.SenderProfile.Phone,
		Country:    dto.SenderProfile.Country,
		City:       dto.SenderProfile.City,
		Street:     dto.SenderProfile.Street,
		PostalCode: dto.SenderProfile.PostalCode,
	})
}

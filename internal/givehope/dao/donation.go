// Модели пожертвований и их платежного статуса.
package dao

import (
	"time"

	"gorm.io/gorm"
)

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationConfirmed DonationStatus = "confirmed"
	DonationDeclined  DonationStatus = "declined"
)

type Donation struct {
	// id uuid IS_NULL:NO
	Id string `json:"id" gorm:"primaryKey"`

	// amount in minor currency units
	Amount   int64  `json:"amount"`
	Currency string `json:"currency" gorm:"default:usd"`

	Email     string `json:"email" gorm:"index"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// intent_id text IS_NULL:YES
	IntentId string `json:"intent_id" gorm:"index"`

	Status DonationStatus `json:"status" gorm:"default:pending;index"`

	// campaign_id uuid IS_NULL:YES
	CampaignId *string `json:"campaign_id,omitempty" gorm:"index" extensions:"x-nullable"`

	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty" extensions:"x-nullable"`
}

func (Donation) TableName() string { return "donations" }

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.Id == "" {
		d.Id = GenID()
	}
	return nil
}

// GetDonation возвращает пожертвование по идентификатору.
func GetDonation(db *gorm.DB, id string) (Donation, error) {
	var donation Donation
	err := db.Where("id = ?", id).First(&donation).Error
	return donation, err
}

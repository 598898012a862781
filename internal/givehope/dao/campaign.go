// Модели email-кампаний и их получателей.
package dao

import (
	"time"

	"gorm.io/gorm"
)

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignSending   CampaignStatus = "sending"
	CampaignSent      CampaignStatus = "sent"
)

type Campaign struct {
	// id uuid IS_NULL:NO
	Id string `json:"id" gorm:"primaryKey"`
	// name text IS_NULL:NO
	Name    string `json:"name" gorm:"index"`
	Subject string `json:"subject"`

	// document_id uuid IS_NULL:YES
	DocumentId *string         `json:"document_id" gorm:"index" extensions:"x-nullable"`
	Document   *StudioDocument `json:"document_detail,omitempty" gorm:"foreignKey:DocumentId" extensions:"x-nullable"`

	Status CampaignStatus `json:"status" gorm:"default:draft"`

	ScheduledAt *time.Time `json:"scheduled_at,omitempty" extensions:"x-nullable"`
	SentAt      *time.Time `json:"sent_at,omitempty" extensions:"x-nullable"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Recipients []CampaignRecipient `json:"-" gorm:"foreignKey:CampaignId"`
}

func (Campaign) TableName() string { return "campaigns" }

func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.Id == "" {
		c.Id = GenID()
	}
	return nil
}

type CampaignRecipient struct {
	// id uuid IS_NULL:NO
	Id string `json:"id" gorm:"primaryKey"`
	// campaign_id uuid IS_NULL:NO
	CampaignId string `json:"campaign_id" gorm:"index"`

	Email     string `json:"email" gorm:"index"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// last donation in minor currency units, used for merge tags
	DonationAmount int64 `json:"donation_amount"`

	UnsubscribeToken string `json:"-" gorm:"index"`

	SentAt    *time.Time `json:"sent_at,omitempty" extensions:"x-nullable"`
	LastError string     `json:"last_error,omitempty"`
}

func (CampaignRecipient) TableName() string { return "campaign_recipients" }

func (r *CampaignRecipient) BeforeCreate(tx *gorm.DB) error {
	if r.Id == "" {
		r.Id = GenID()
	}
	if r.UnsubscribeToken == "" {
		r.UnsubscribeToken = GenID()
	}
	return nil
}

// GetCampaign возвращает кампанию с привязанным документом.
func GetCampaign(db *gorm.DB, id string) (Campaign, error) {
	var campaign Campaign
	err := db.Preload("Document").Where("id = ?", id).First(&campaign).Error
	return campaign, err
}

// DueCampaigns возвращает запланированные кампании, срок отправки которых наступил.
func DueCampaigns(db *gorm.DB, now time.Time) ([]Campaign, error) {
	var campaigns []Campaign
	err := db.Preload("Document").
		Where("status = ? AND scheduled_at <= ?", CampaignScheduled, now).
		Find(&campaigns).Error
	return campaigns, err
}

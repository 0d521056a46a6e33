package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionTier string

const (
	TierBase    SubscriptionTier = "BASE"
	TierPremium SubscriptionTier = "PREMIUM"
)

// ClubModel merepresentasikan tabel clubs (tenant root)
type ClubModel struct {
	ID               uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	Name             string           `json:"name" gorm:"type:text;not null;column:name"`
	Email            string           `json:"email" gorm:"type:text;not null;uniqueIndex:uq_clubs_email;column:email"`
	AccessCode       string           `json:"accessCode" gorm:"type:varchar(16);not null;uniqueIndex:uq_clubs_access_code;column:access_code"`
	Address          *string          `json:"address,omitempty" gorm:"type:text;column:address"`
	ContactPerson    *string          `json:"contactPerson,omitempty" gorm:"type:text;column:contact_person"`
	ContactPhone     *string          `json:"contactPhone,omitempty" gorm:"type:text;column:contact_phone"`
	SubscriptionTier SubscriptionTier `json:"subscriptionTier" gorm:"type:varchar(16);not null;column:subscription_tier"`
	HasReformer      bool             `json:"hasReformer" gorm:"not null;column:has_reformer"`
	IsActive         bool             `json:"isActive" gorm:"not null;column:is_active"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;autoUpdateTime"`
}

func (ClubModel) TableName() string { return "clubs" }

package storage

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Validator corresponds to the validators table
type Validator struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	Moniker         string    `gorm:"not null" json:"moniker"`
	OperatorAddress string    `gorm:"uniqueIndex;not null" json:"operatorAddress"`
	Network         string    `gorm:"index;not null" json:"network"`
	Commission      float64   `json:"commission"`
	HalalCertified  bool      `json:"halalCertified"`
	Active          bool      `gorm:"index" json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the record id
func (v *Validator) BeforeCreate(_ *gorm.DB) error {
	if len(v.ID) == 0 {
		v.ID = uuid.NewString()
	}

	return nil
}

// ReferralCode corresponds to the referral_codes table
type ReferralCode struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	Code          string    `gorm:"uniqueIndex;not null" json:"code"`
	OwnerAddress  string    `gorm:"index;not null" json:"ownerAddress"`
	RewardPercent float64   `json:"rewardPercent"`
	UsageCount    uint64    `json:"usageCount"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the record id
func (rc *ReferralCode) BeforeCreate(_ *gorm.DB) error {
	if len(rc.ID) == 0 {
		rc.ID = uuid.NewString()
	}

	return nil
}

// HalalScreening corresponds to the halal_screenings table
type HalalScreening struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Network    string    `gorm:"index;not null" json:"network"`
	AssetName  string    `gorm:"not null" json:"assetName"`
	Status     string    `gorm:"index;not null" json:"status"`
	Notes      string    `json:"notes"`
	ScreenedAt time.Time `json:"screenedAt"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the record id
func (hs *HalalScreening) BeforeCreate(_ *gorm.DB) error {
	if len(hs.ID) == 0 {
		hs.ID = uuid.NewString()
	}

	return nil
}

// Delegation corresponds to the delegations table. Amount holds base units of
// the native token.
type Delegation struct {
	ID               string    `gorm:"type:uuid;primaryKey" json:"id"`
	DelegatorAddress string    `gorm:"index;not null" json:"delegatorAddress"`
	ValidatorAddress string    `gorm:"index;not null" json:"validatorAddress"`
	Amount           string    `gorm:"not null" json:"amount"`
	TxHash           string    `gorm:"uniqueIndex" json:"txHash"`
	Height           int64     `json:"height"`
	RevealIncluded   bool      `json:"revealIncluded"`
	ReferralCode     string    `gorm:"index" json:"referralCode"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the record id
func (d *Delegation) BeforeCreate(_ *gorm.DB) error {
	if len(d.ID) == 0 {
		d.ID = uuid.NewString()
	}

	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is an owning organization (shipping line, plant operator) a
// customer belongs to.
type Company struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name    string    `gorm:"size:255;not null;uniqueIndex"          json:"name"`
	Address *string   `gorm:"column:address"                         json:"address,omitempty"`
	Phone   *string   `gorm:"size:30"                                json:"phone,omitempty"`
	Email   *string   `gorm:"size:100"                               json:"email,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"          json:"-"`
}

type Customer struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string     `gorm:"size:255;not null"                      json:"name"`
	CompanyID *uuid.UUID `gorm:"type:uuid;index"                        json:"companyId,omitempty"`
	Company   *Company   `gorm:"foreignKey:CompanyID"                   json:"company,omitempty"`
	Phone     *string    `gorm:"size:30"                                json:"phone,omitempty"`
	Email     *string    `gorm:"size:100"                               json:"email,omitempty"`
	Address   *string    `gorm:"column:address"                         json:"address,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"          json:"-"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Engine is a serviced engine unit registered against a customer.
type Engine struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Model      string     `gorm:"size:100;not null"                      json:"model"`
	SerialNo   string     `gorm:"column:serial_no;size:100;not null;index" json:"serialNo"`
	Maker      *string    `gorm:"size:100"                               json:"maker,omitempty"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index"                        json:"customerId,omitempty"`
	Customer   *Customer  `gorm:"foreignKey:CustomerID"                  json:"customer,omitempty"`
	Remarks    *string    `gorm:"column:remarks"                         json:"remarks,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"          json:"-"`
}

// Pump is a serviced pump unit registered against a customer.
type Pump struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Model      string     `gorm:"size:100;not null"                      json:"model"`
	SerialNo   string     `gorm:"column:serial_no;size:100;not null;index" json:"serialNo"`
	Maker      *string    `gorm:"size:100"                               json:"maker,omitempty"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index"                        json:"customerId,omitempty"`
	Customer   *Customer  `gorm:"foreignKey:CustomerID"                  json:"customer,omitempty"`
	Remarks    *string    `gorm:"column:remarks"                         json:"remarks,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"          json:"-"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

// AuditLog records one mutating action against a record: who did what, with
// before/after snapshots of the row. Rows are append-only.
type AuditLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TableName string         `gorm:"size:100;not null;index" json:"table_name"`
	RecordID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"record_id"`
	Action    AuditAction    `gorm:"type:varchar(20);not null" json:"action"`
	Before    datatypes.JSON `gorm:"type:jsonb" json:"before,omitempty"`
	After     datatypes.JSON `gorm:"type:jsonb" json:"after,omitempty"`
	UserID    *uuid.UUID     `gorm:"type:uuid" json:"user_id"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) (err error) {
	a.ID = uuid.New()
	return
}

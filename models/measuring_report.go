package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// MeasuringReport is the top-level row of a components-teardown measuring
// report. Section rows live in the ctmr_* table family, keyed by
// measuring_report_id, and are always replaced wholesale on edit.
type MeasuringReport struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	JobOrderNo     string     `gorm:"column:job_order_no;index"              json:"jobOrderNo"`
	CustomerName   string     `gorm:"column:customer_name;not null"          json:"customerName"`
	CustomerID     *uuid.UUID `gorm:"type:uuid;index"                        json:"customerId,omitempty"`
	Customer       *Customer  `gorm:"foreignKey:CustomerID"                  json:"customer,omitempty"`
	ReportDate     JSONTime   `gorm:"column:report_date;not null"            json:"reportDate"`
	EngineModel    string     `gorm:"column:engine_model;not null"           json:"engineModel"`
	EngineSerialNo string     `gorm:"column:engine_serial_no;not null"       json:"engineSerialNo"`
	EngineID       *uuid.UUID `gorm:"type:uuid;index"                        json:"engineId,omitempty"`
	Engine         *Engine    `gorm:"foreignKey:EngineID"                    json:"engine,omitempty"`
	RunningHours   *string    `gorm:"column:running_hours"                   json:"runningHours,omitempty"`
	TechnicianName string     `gorm:"column:technician_name"                 json:"technicianName"`
	Photos         pq.StringArray `gorm:"column:photos;type:text[]"          json:"photos,omitempty"`
	Remarks        *string    `gorm:"column:remarks"                         json:"remarks,omitempty"`

	CreatedBy uuid.UUID      `gorm:"type:uuid;column:created_by"            json:"createdBy"`
	UpdatedBy *uuid.UUID     `gorm:"type:uuid;column:updated_by"            json:"updatedBy,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime"                         json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"                         json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"                                  json:"-"`
}

func (MeasuringReport) TableName() string {
	return "measuring_reports"
}

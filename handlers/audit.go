package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/datatypes"

	"github.com/Miraku17/PowerSystems-sub003/config"
	"github.com/Miraku17/PowerSystems-sub003/models"
)

// recordAudit appends one audit row for a mutating action. Audit writes are
// fire-and-forget: a failed append is logged and never fails the caller.
func recordAudit(tableName string, recordID uuid.UUID, action models.AuditAction, before, after interface{}, userID uuid.UUID) {
	entry := models.AuditLog{
		TableName: tableName,
		RecordID:  recordID,
		Action:    action,
	}
	if userID != uuid.Nil {
		entry.UserID = &userID
	}
	if before != nil {
		if raw, err := json.Marshal(before); err == nil {
			entry.Before = datatypes.JSON(raw)
		}
	}
	if after != nil {
		if raw, err := json.Marshal(after); err == nil {
			entry.After = datatypes.JSON(raw)
		}
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		log.Printf("audit: failed to record %s on %s/%s: %v", action, tableName, recordID, err)
	}
}

// GetAuditLogs lists audit entries for one record, newest first.
func GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["recordId"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	var entries []models.AuditLog
	if err := config.DB.Preload("User").
		Where("record_id = ?", recordID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load audit logs: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"data": entries})
}

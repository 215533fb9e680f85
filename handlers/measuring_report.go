package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Miraku17/PowerSystems-sub003/config"
	"github.com/Miraku17/PowerSystems-sub003/middleware"
	"github.com/Miraku17/PowerSystems-sub003/models"
)

// Handlers for the components-teardown measuring report. One submission
// carries the report header plus a measurementData object whose per-section
// slices fan out into the ctmr_* table family. Section writes are
// best-effort: the report row itself is authoritative, individual section
// failures are logged and skipped.

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// parseMeasurementData decodes the nested measurement payload. Malformed
// JSON is tolerated: log it and carry on with an empty object.
func parseMeasurementData(raw string) map[string]interface{} {
	if raw == "" {
		return map[string]interface{}{}
	}
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		log.Printf("ctmr: malformed measurementData, treating as empty: %v", err)
		return map[string]interface{}{}
	}
	if payload == nil {
		return map[string]interface{}{}
	}
	return payload
}

// sectionMeta pulls the <key>Meta object for a section, or nil.
func sectionMeta(payload map[string]interface{}, key string) map[string]interface{} {
	meta, _ := payload[key].(map[string]interface{})
	return meta
}

// sectionData pulls the <key>Data array for a section. Non-object elements
// are dropped.
func sectionData(payload map[string]interface{}, key string) []map[string]interface{} {
	raw, _ := payload[key].([]interface{})
	if raw == nil {
		return nil
	}
	rows := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		if row, ok := item.(map[string]interface{}); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// writeSections walks the fixed section order and writes each section's
// slice of the payload, then the flat sections. Shared by create and update
// so both paths stay identical.
func writeSections(writer *CtmrSectionWriter, reportID uuid.UUID, payload map[string]interface{}) {
	for i := range models.CtmrSections {
		section := &models.CtmrSections[i]
		meta := section.SanitizeMeta(sectionMeta(payload, section.MetaKey()))
		data := sectionData(payload, section.DataKey())
		writer.WriteSection(section, reportID, meta, data)
	}
	for _, name := range models.CtmrFlatSectionNames {
		flat := sectionMeta(payload, models.SnakeToCamel(name))
		writer.WriteFlatSection(name, reportID, flat)
	}
}

// checkJobOrderUnique enforces uniqueness of the job order number among
// non-deleted reports. excludeID skips the report being edited.
func checkJobOrderUnique(jobOrderNo string, excludeID uuid.UUID) (conflict bool, err error) {
	query := config.DB.Where("job_order_no = ?", jobOrderNo)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	var existing models.MeasuringReport
	result := query.First(&existing)
	if result.Error == nil {
		return true, nil
	}
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, result.Error
}

// CreateMeasuringReport handles the multipart submission of a new report:
// flat header fields plus a JSON-encoded measurementData field.
func CreateMeasuringReport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
		return
	}

	customerName := r.FormValue("customerName")
	engineModel := r.FormValue("engineModel")
	engineSerialNo := r.FormValue("engineSerialNo")
	if customerName == "" || engineModel == "" || engineSerialNo == "" {
		respondError(w, http.StatusBadRequest, "customerName, engineModel and engineSerialNo are required")
		return
	}

	jobOrderNo := r.FormValue("jobOrderNo")
	if jobOrderNo != "" {
		conflict, err := checkJobOrderUnique(jobOrderNo, uuid.Nil)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to validate job order number: "+err.Error())
			return
		}
		if conflict {
			respondError(w, http.StatusBadRequest, "a report with job order number "+jobOrderNo+" already exists")
			return
		}
	}

	user := middleware.GetUser(r)

	report := models.MeasuringReport{
		JobOrderNo:     jobOrderNo,
		CustomerName:   customerName,
		EngineModel:    engineModel,
		EngineSerialNo: engineSerialNo,
		TechnicianName: r.FormValue("technicianName"),
		CreatedBy:      user.ID,
	}
	if v := r.FormValue("reportDate"); v != "" {
		if err := report.ReportDate.UnmarshalJSON([]byte(strconv.Quote(v))); err != nil {
			respondError(w, http.StatusBadRequest, "invalid reportDate: "+err.Error())
			return
		}
	}
	if v := r.FormValue("runningHours"); v != "" {
		report.RunningHours = &v
	}
	if v := r.FormValue("remarks"); v != "" {
		report.Remarks = &v
	}
	if v := r.FormValue("customerId"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			report.CustomerID = &id
		}
	}
	if v := r.FormValue("engineId"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			report.EngineID = &id
		}
	}
	if v := r.FormValue("photos"); v != "" {
		var photos []string
		if err := json.Unmarshal([]byte(v), &photos); err != nil {
			log.Printf("ctmr: malformed photos field, ignoring: %v", err)
		} else {
			report.Photos = pq.StringArray(photos)
		}
	}

	if err := config.DB.Create(&report).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create report: "+err.Error())
		return
	}

	payload := parseMeasurementData(r.FormValue("measurementData"))
	writer := NewCtmrSectionWriter()
	writeSections(writer, report.ID, payload)

	recordAudit("measuring_reports", report.ID, models.AuditActionCreate, nil, report, user.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "measuring report created",
		"data":    []models.MeasuringReport{report},
	})
}

type updateMeasuringReportRequest struct {
	JobOrderNo      *string          `json:"jobOrderNo"`
	CustomerName    *string          `json:"customerName"`
	CustomerID      *uuid.UUID       `json:"customerId"`
	ReportDate      *models.JSONTime `json:"reportDate"`
	EngineModel     *string          `json:"engineModel"`
	EngineSerialNo  *string          `json:"engineSerialNo"`
	EngineID        *uuid.UUID       `json:"engineId"`
	RunningHours    *string          `json:"runningHours"`
	TechnicianName  *string          `json:"technicianName"`
	Remarks         *string          `json:"remarks"`
	Photos          []string         `json:"photos"`
	MeasurementData json.RawMessage  `json:"measurementData"`
}

// UpdateMeasuringReport edits the report header and, when measurementData is
// supplied, tears down and rebuilds every section table for the report.
func UpdateMeasuringReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	var req updateMeasuringReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	var report models.MeasuringReport
	if err := config.DB.Unscoped().First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "report not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load report: "+err.Error())
		return
	}
	if report.DeletedAt.Valid {
		respondError(w, http.StatusBadRequest, "report has been deleted and can no longer be edited")
		return
	}

	user := middleware.GetUser(r)
	if perm := middleware.CanEditReport(user, report.CreatedBy); !perm.Allowed {
		respondError(w, perm.Status, perm.Message)
		return
	}

	before := report

	if req.JobOrderNo != nil && *req.JobOrderNo != report.JobOrderNo && *req.JobOrderNo != "" {
		conflict, err := checkJobOrderUnique(*req.JobOrderNo, report.ID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to validate job order number: "+err.Error())
			return
		}
		if conflict {
			respondError(w, http.StatusBadRequest, "a report with job order number "+*req.JobOrderNo+" already exists")
			return
		}
	}

	if req.JobOrderNo != nil {
		report.JobOrderNo = *req.JobOrderNo
	}
	if req.CustomerName != nil {
		report.CustomerName = *req.CustomerName
	}
	if req.CustomerID != nil {
		report.CustomerID = req.CustomerID
	}
	if req.ReportDate != nil {
		report.ReportDate = *req.ReportDate
	}
	if req.EngineModel != nil {
		report.EngineModel = *req.EngineModel
	}
	if req.EngineSerialNo != nil {
		report.EngineSerialNo = *req.EngineSerialNo
	}
	if req.EngineID != nil {
		report.EngineID = req.EngineID
	}
	if req.RunningHours != nil {
		report.RunningHours = req.RunningHours
	}
	if req.TechnicianName != nil {
		report.TechnicianName = *req.TechnicianName
	}
	if req.Remarks != nil {
		report.Remarks = req.Remarks
	}
	if req.Photos != nil {
		report.Photos = pq.StringArray(req.Photos)
	}
	report.UpdatedBy = &user.ID

	if err := config.DB.Save(&report).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update report: "+err.Error())
		return
	}

	if len(req.MeasurementData) > 0 {
		// Full replacement: sweep every section table, then re-run the same
		// write sequence as create. Reading rows cascade with their parents.
		writer := NewCtmrSectionWriter()
		if err := writer.DeleteAllSections(report.ID); err != nil {
			log.Printf("ctmr: delete sections for report %s failed: %v", report.ID, err)
		} else {
			payload := parseMeasurementData(string(req.MeasurementData))
			writeSections(writer, report.ID, payload)
		}
	}

	recordAudit("measuring_reports", report.ID, models.AuditActionUpdate, before, report, user.ID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "measuring report updated",
		"data":    report,
	})
}

// GetMeasuringReport returns the report header plus the reassembled
// measurementData object read back from the section tables.
func GetMeasuringReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	var report models.MeasuringReport
	if err := config.DB.Preload("Customer").Preload("Engine").First(&report, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "report not found")
		return
	}

	measurementData := map[string]interface{}{}
	for i := range models.CtmrSections {
		section := &models.CtmrSections[i]

		var parents []map[string]interface{}
		if err := config.DB.Table(section.ParentTable).
			Where("measuring_report_id = ?", report.ID).
			Find(&parents).Error; err != nil {
			log.Printf("ctmr: read %s for report %s failed: %v", section.ParentTable, report.ID, err)
			continue
		}
		if len(parents) == 0 {
			continue
		}
		parent := parents[0]
		measurementData[section.MetaKey()] = parent

		var children []map[string]interface{}
		if err := config.DB.Table(section.DataTable).
			Where(section.FKColumn+" = ?", parent["id"]).
			Find(&children).Error; err != nil {
			log.Printf("ctmr: read %s for report %s failed: %v", section.DataTable, report.ID, err)
			continue
		}
		if len(children) > 0 {
			measurementData[section.DataKey()] = children
		}
	}
	for _, name := range models.CtmrFlatSectionNames {
		var rows []map[string]interface{}
		table := models.CtmrFlatTable(name)
		if err := config.DB.Table(table).
			Where("measuring_report_id = ?", report.ID).
			Find(&rows).Error; err != nil {
			log.Printf("ctmr: read %s for report %s failed: %v", table, report.ID, err)
			continue
		}
		if len(rows) > 0 {
			measurementData[models.SnakeToCamel(name)] = rows[0]
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data": map[string]interface{}{
			"report":          report,
			"measurementData": measurementData,
		},
	})
}

// GetAllMeasuringReports lists non-deleted reports, newest first, with
// optional filters and pagination.
func GetAllMeasuringReports(w http.ResponseWriter, r *http.Request) {
	query := config.DB.Model(&models.MeasuringReport{}).Order("created_at DESC")

	if v := r.URL.Query().Get("jobOrderNo"); v != "" {
		query = query.Where("job_order_no = ?", v)
	}
	if v := r.URL.Query().Get("customerName"); v != "" {
		query = query.Where("customer_name ILIKE ?", "%"+v+"%")
	}
	if v := r.URL.Query().Get("engineSerialNo"); v != "" {
		query = query.Where("engine_serial_no = ?", v)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to count reports: "+err.Error())
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var reports []models.MeasuringReport
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&reports).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list reports: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  reports,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// DeleteMeasuringReport soft-deletes a report. Section rows stay in place;
// the report is simply excluded from reads and its job order number becomes
// reusable.
func DeleteMeasuringReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	var report models.MeasuringReport
	if err := config.DB.First(&report, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "report not found")
		return
	}

	user := middleware.GetUser(r)
	if perm := middleware.CanEditReport(user, report.CreatedBy); !perm.Allowed {
		respondError(w, perm.Status, perm.Message)
		return
	}

	if err := config.DB.Delete(&report).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete report: "+err.Error())
		return
	}

	recordAudit("measuring_reports", report.ID, models.AuditActionDelete, report, nil, user.ID)
	w.WriteHeader(http.StatusNoContent)
}

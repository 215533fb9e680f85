package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Miraku17/PowerSystems-sub003/config"
	"github.com/Miraku17/PowerSystems-sub003/models"
)

// CtmrSectionWriter persists one measuring section at a time: the parent row
// first, then its reading rows stamped with the parent's id. Failures are
// logged and swallowed so one broken section never blocks the rest of a
// submission.
type CtmrSectionWriter struct {
	db *gorm.DB
}

// NewCtmrSectionWriter creates a section writer on the shared connection.
func NewCtmrSectionWriter() *CtmrSectionWriter {
	return &CtmrSectionWriter{
		db: config.DB,
	}
}

// WriteSection inserts a section's parent row and bulk-inserts its readings.
// A section with neither meta nor data was simply not filled in and is
// skipped. Meta must already be sanitized by the caller.
func (sw *CtmrSectionWriter) WriteSection(section *models.CtmrSection, reportID uuid.UUID, meta map[string]interface{}, data []map[string]interface{}) {
	if len(meta) == 0 && len(data) == 0 {
		return
	}

	parent := buildParentRecord(reportID, meta)
	parentID, err := sw.insertRecord(section.ParentTable, parent)
	if err != nil {
		log.Printf("ctmr: insert %s for report %s failed: %v", section.ParentTable, reportID, err)
		return
	}

	if len(data) == 0 {
		return
	}

	children := stampChildRecords(data, section.FKColumn, parentID)
	if err := sw.bulkInsert(section.DataTable, children); err != nil {
		// The parent row stays; a spec row with no readings is tolerated.
		log.Printf("ctmr: insert %s for report %s failed: %v", section.DataTable, reportID, err)
	}
}

// WriteFlatSection inserts a single-row section with no data table.
func (sw *CtmrSectionWriter) WriteFlatSection(name string, reportID uuid.UUID, payload map[string]interface{}) {
	if len(payload) == 0 {
		return
	}
	table := models.CtmrFlatTable(name)
	record := buildParentRecord(reportID, payload)
	if _, err := sw.insertRecord(table, record); err != nil {
		log.Printf("ctmr: insert %s for report %s failed: %v", table, reportID, err)
	}
}

// DeleteAllSections removes every section row for a report. Reading rows go
// with their parents via the ON DELETE CASCADE foreign keys.
func (sw *CtmrSectionWriter) DeleteAllSections(reportID uuid.UUID) error {
	for _, section := range models.CtmrSections {
		if err := sw.db.Exec("DELETE FROM "+section.ParentTable+" WHERE measuring_report_id = ?", reportID).Error; err != nil {
			return fmt.Errorf("delete %s: %w", section.ParentTable, err)
		}
	}
	for _, name := range models.CtmrFlatSectionNames {
		table := models.CtmrFlatTable(name)
		if err := sw.db.Exec("DELETE FROM "+table+" WHERE measuring_report_id = ?", reportID).Error; err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}
	return nil
}

// insertRecord inserts one row built from a field map and returns the
// generated id.
func (sw *CtmrSectionWriter) insertRecord(tableName string, record map[string]interface{}) (uuid.UUID, error) {
	recordID := uuid.New()
	record["id"] = recordID
	record["created_at"] = time.Now()

	var columns []string
	var placeholders []string
	var values []interface{}
	i := 1

	for col, val := range record {
		columns = append(columns, col)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i))
		values = append(values, val)
		i++
	}

	sql := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		tableName,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	var returnedID uuid.UUID
	if err := sw.db.Raw(sql, values...).Scan(&returnedID).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert section record: %v", err)
	}
	return returnedID, nil
}

// bulkInsert inserts all rows in one statement. Rows may carry different
// field sets; missing fields bind as NULL.
func (sw *CtmrSectionWriter) bulkInsert(tableName string, records []map[string]interface{}) error {
	if len(records) == 0 {
		return nil
	}

	var columns []string
	seen := map[string]bool{}
	for _, record := range records {
		for col := range record {
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
		}
	}

	var rows []string
	var values []interface{}
	i := 1
	for _, record := range records {
		var placeholders []string
		for _, col := range columns {
			placeholders = append(placeholders, fmt.Sprintf("$%d", i))
			values = append(values, record[col])
			i++
		}
		rows = append(rows, "("+strings.Join(placeholders, ", ")+")")
	}

	sql := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES %s",
		tableName,
		strings.Join(columns, ", "),
		strings.Join(rows, ", "),
	)

	if err := sw.db.Exec(sql, values...).Error; err != nil {
		return fmt.Errorf("failed to bulk-insert section data: %v", err)
	}
	return nil
}

// buildParentRecord copies the payload, drops explicit nulls, and stamps the
// owning report id.
func buildParentRecord(reportID uuid.UUID, payload map[string]interface{}) map[string]interface{} {
	record := map[string]interface{}{
		"measuring_report_id": reportID,
	}
	for field, value := range payload {
		if value == nil {
			continue
		}
		record[field] = value
	}
	return record
}

// stampChildRecords copies each reading row, drops explicit nulls, and sets
// the parent foreign key.
func stampChildRecords(data []map[string]interface{}, fkColumn string, parentID uuid.UUID) []map[string]interface{} {
	records := make([]map[string]interface{}, 0, len(data))
	for _, row := range data {
		record := map[string]interface{}{
			fkColumn: parentID,
		}
		for field, value := range row {
			if value == nil {
				continue
			}
			record[field] = value
		}
		records = append(records, record)
	}
	return records
}

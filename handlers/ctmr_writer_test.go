package handlers

import (
	"testing"

	"github.com/google/uuid"

	"github.com/Miraku17/PowerSystems-sub003/models"
)

func TestBuildParentRecord(t *testing.T) {
	reportID := uuid.New()
	payload := map[string]interface{}{
		"spec_wear_limit": "0.05",
		"unit":            "mm",
		"remarks":         "",  // empty string is a value, not an absence
		"dropped":         nil, // explicit null must be dropped
	}

	record := buildParentRecord(reportID, payload)

	if record["measuring_report_id"] != reportID {
		t.Error("report id not stamped")
	}
	if record["spec_wear_limit"] != "0.05" {
		t.Error("spec field lost")
	}
	if record["remarks"] != "" {
		t.Error("empty string should be preserved")
	}
	if _, ok := record["dropped"]; ok {
		t.Error("nil field should be dropped")
	}
	// Input payload must not be mutated
	if _, ok := payload["measuring_report_id"]; ok {
		t.Error("input payload was mutated")
	}
}

func TestBuildParentRecordEmpty(t *testing.T) {
	reportID := uuid.New()
	record := buildParentRecord(reportID, nil)
	if len(record) != 1 || record["measuring_report_id"] != reportID {
		t.Errorf("empty payload should yield only the report id, got %v", record)
	}
}

func TestStampChildRecords(t *testing.T) {
	parentID := uuid.New()
	data := []map[string]interface{}{
		{"position": "No.1", "reading": "105.02"},
		{"position": "No.2", "reading": "105.04", "skipme": nil},
		{"position": "No.3", "axis": "x", "reading": "105.01"},
	}

	records := stampChildRecords(data, "cylinder_bore_id", parentID)

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, record := range records {
		if record["cylinder_bore_id"] != parentID {
			t.Errorf("record %d: fk not stamped", i)
		}
	}
	if _, ok := records[1]["skipme"]; ok {
		t.Error("nil field should be dropped from child record")
	}
	if records[2]["axis"] != "x" {
		t.Error("child field lost")
	}
}

func TestWriteSectionEmptyIsNoop(t *testing.T) {
	// No meta and no data means the section was not filled in; the writer
	// must return before touching the database (db is nil here).
	writer := &CtmrSectionWriter{}
	section, err := models.CtmrSectionByName("cylinder_bore")
	if err != nil {
		t.Fatal(err)
	}

	writer.WriteSection(section, uuid.New(), nil, nil)
	writer.WriteSection(section, uuid.New(), map[string]interface{}{}, []map[string]interface{}{})
	writer.WriteFlatSection("crankshaft_end_clearance", uuid.New(), nil)
}

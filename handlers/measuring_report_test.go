package handlers

import (
	"testing"

	"github.com/Miraku17/PowerSystems-sub003/models"
)

func TestParseMeasurementData(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		keys int
	}{
		{"empty string", "", 0},
		{"empty object", "{}", 0},
		{"malformed json tolerated", "{not json", 0},
		{"json null tolerated", "null", 0},
		{"two sections", `{"cylinderBoreMeta":{"spec_wear_limit":"0.05"},"cylinderBoreData":[{"position":"No.1"}]}`, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := parseMeasurementData(tt.raw)
			if payload == nil {
				t.Fatal("payload must never be nil")
			}
			if len(payload) != tt.keys {
				t.Errorf("expected %d keys, got %d", tt.keys, len(payload))
			}
		})
	}
}

func TestSectionMeta(t *testing.T) {
	payload := parseMeasurementData(`{
		"cylinderBoreMeta": {"spec_wear_limit": "0.05", "unit": "mm"},
		"mainJournalMeta": "not an object"
	}`)

	meta := sectionMeta(payload, "cylinderBoreMeta")
	if meta == nil || meta["spec_wear_limit"] != "0.05" {
		t.Errorf("expected cylinder bore meta, got %v", meta)
	}
	if got := sectionMeta(payload, "mainJournalMeta"); got != nil {
		t.Errorf("non-object meta should yield nil, got %v", got)
	}
	if got := sectionMeta(payload, "absentMeta"); got != nil {
		t.Errorf("absent meta should yield nil, got %v", got)
	}
}

func TestSectionData(t *testing.T) {
	payload := parseMeasurementData(`{
		"cylinderBoreData": [
			{"position": "No.1", "reading": "105.02"},
			"rogue element",
			{"position": "No.2", "reading": "105.04"}
		],
		"mainJournalData": {"not": "an array"}
	}`)

	data := sectionData(payload, "cylinderBoreData")
	if len(data) != 2 {
		t.Fatalf("expected 2 rows (rogue element dropped), got %d", len(data))
	}
	if data[1]["position"] != "No.2" {
		t.Errorf("row order lost: %v", data)
	}
	if got := sectionData(payload, "mainJournalData"); got != nil {
		t.Errorf("non-array data should yield nil, got %v", got)
	}
	if got := sectionData(payload, "absentData"); got != nil {
		t.Errorf("absent data should yield nil, got %v", got)
	}
}

// The full submission shape: sanitizing a section's slice of the payload
// keeps the permitted spec field and strips the others, before anything is
// written.
func TestSectionSliceSanitizing(t *testing.T) {
	payload := parseMeasurementData(`{
		"mainJournalWidthMeta": {
			"spec_oversize_limit": "0.50",
			"spec_wear_limit": "0.05",
			"spec_max_ovality": "0.02"
		},
		"mainJournalMeta": {
			"spec_oversize_limit": "0.50",
			"spec_wear_limit": "0.05",
			"spec_max_ovality": "0.02"
		}
	}`)

	widthSection, err := models.CtmrSectionByName("main_journal_width")
	if err != nil {
		t.Fatal(err)
	}
	meta := widthSection.SanitizeMeta(sectionMeta(payload, widthSection.MetaKey()))
	if meta["spec_oversize_limit"] != "0.50" {
		t.Error("oversize limit should survive for main_journal_width")
	}
	if _, ok := meta["spec_wear_limit"]; ok {
		t.Error("wear limit should be stripped for main_journal_width")
	}
	if _, ok := meta["spec_max_ovality"]; ok {
		t.Error("max ovality should be stripped for main_journal_width")
	}

	journalSection, err := models.CtmrSectionByName("main_journal")
	if err != nil {
		t.Fatal(err)
	}
	meta = journalSection.SanitizeMeta(sectionMeta(payload, journalSection.MetaKey()))
	if meta["spec_max_ovality"] != "0.02" {
		t.Error("max ovality should survive for main_journal")
	}
	if _, ok := meta["spec_oversize_limit"]; ok {
		t.Error("oversize limit should be stripped for main_journal")
	}
}

package models

import (
	"strings"
	"testing"
)

func TestSnakeToCamel(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"cylinder_bore", "cylinderBore"},
		{"main_journal_width", "mainJournalWidth"},
		{"con_rod_journal", "conRodJournal"},
		{"crankshaft_end_clearance", "crankshaftEndClearance"},
		{"tappet", "tappet"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SnakeToCamel(tt.in); got != tt.expected {
			t.Errorf("SnakeToCamel(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestSectionCatalog(t *testing.T) {
	if len(CtmrSections) != 28 {
		t.Fatalf("expected 28 parent/child sections, got %d", len(CtmrSections))
	}
	if len(CtmrFlatSectionNames) != 8 {
		t.Fatalf("expected 8 flat sections, got %d", len(CtmrFlatSectionNames))
	}

	for _, s := range CtmrSections {
		if s.ParentTable != "ctmr_"+s.Name {
			t.Errorf("section %s: parent table %s", s.Name, s.ParentTable)
		}
		if s.DataTable != "ctmr_"+s.Name+"_data" {
			t.Errorf("section %s: data table %s", s.Name, s.DataTable)
		}
		if s.FKColumn != s.Name+"_id" {
			t.Errorf("section %s: fk column %s", s.Name, s.FKColumn)
		}
		if s.Key != SnakeToCamel(s.Name) {
			t.Errorf("section %s: key %s", s.Name, s.Key)
		}
	}
}

func TestSpecFieldGroups(t *testing.T) {
	tests := []struct {
		section  string
		expected string
	}{
		{"main_journal_width", SpecOversizeLimit},
		{"con_rod_journal", SpecOversizeLimit},
		{"main_journal", SpecMaxOvality},
		{"cylinder_bore", SpecWearLimit},
		{"valve_stem", SpecWearLimit},
		{"gear_backlash", SpecWearLimit},
	}

	for _, tt := range tests {
		section, err := CtmrSectionByName(tt.section)
		if err != nil {
			t.Fatalf("CtmrSectionByName(%q): %v", tt.section, err)
		}
		if section.SpecField != tt.expected {
			t.Errorf("section %s: spec field %s, expected %s", tt.section, section.SpecField, tt.expected)
		}
	}

	if _, err := CtmrSectionByName("flux_capacitor"); err == nil {
		t.Error("expected error for unknown section")
	}
}

func TestSanitizeMeta(t *testing.T) {
	fullMeta := func() map[string]interface{} {
		return map[string]interface{}{
			SpecWearLimit:     "0.05",
			SpecOversizeLimit: "0.25",
			SpecMaxOvality:    "0.02",
			"unit":            "mm",
			"custom_field":    "kept",
		}
	}

	tests := []struct {
		section   string
		kept      string
		forbidden []string
	}{
		{"main_journal_width", SpecOversizeLimit, []string{SpecWearLimit, SpecMaxOvality}},
		{"con_rod_journal", SpecOversizeLimit, []string{SpecWearLimit, SpecMaxOvality}},
		{"main_journal", SpecMaxOvality, []string{SpecWearLimit, SpecOversizeLimit}},
		{"cylinder_bore", SpecWearLimit, []string{SpecOversizeLimit, SpecMaxOvality}},
		{"piston_ring_gap", SpecWearLimit, []string{SpecOversizeLimit, SpecMaxOvality}},
	}

	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			section, err := CtmrSectionByName(tt.section)
			if err != nil {
				t.Fatal(err)
			}
			meta := section.SanitizeMeta(fullMeta())

			if _, ok := meta[tt.kept]; !ok {
				t.Errorf("%s should survive sanitizing for %s", tt.kept, tt.section)
			}
			for _, field := range tt.forbidden {
				if _, ok := meta[field]; ok {
					t.Errorf("%s should be stripped for %s", field, tt.section)
				}
			}
			// Unknown extra fields pass through untouched
			if meta["custom_field"] != "kept" {
				t.Error("unknown fields must pass through")
			}
			if meta["unit"] != "mm" {
				t.Error("unit must pass through")
			}
		})
	}
}

func TestSanitizeMetaNil(t *testing.T) {
	section, err := CtmrSectionByName("cylinder_bore")
	if err != nil {
		t.Fatal(err)
	}
	if got := section.SanitizeMeta(nil); got != nil {
		t.Errorf("nil meta should pass through, got %v", got)
	}
}

func TestMetaDataKeys(t *testing.T) {
	section, err := CtmrSectionByName("cylinder_bore")
	if err != nil {
		t.Fatal(err)
	}
	if section.MetaKey() != "cylinderBoreMeta" {
		t.Errorf("meta key = %s", section.MetaKey())
	}
	if section.DataKey() != "cylinderBoreData" {
		t.Errorf("data key = %s", section.DataKey())
	}
}

func TestCtmrTableSQL(t *testing.T) {
	section, err := CtmrSectionByName("main_journal")
	if err != nil {
		t.Fatal(err)
	}

	parentSQL := CtmrParentTableSQL(*section)
	if !strings.Contains(parentSQL, "CREATE TABLE IF NOT EXISTS ctmr_main_journal (") {
		t.Errorf("parent DDL missing table name:\n%s", parentSQL)
	}
	if !strings.Contains(parentSQL, "measuring_report_id UUID NOT NULL REFERENCES measuring_reports(id) ON DELETE CASCADE") {
		t.Errorf("parent DDL missing report FK:\n%s", parentSQL)
	}

	dataSQL := CtmrDataTableSQL(*section)
	if !strings.Contains(dataSQL, "CREATE TABLE IF NOT EXISTS ctmr_main_journal_data (") {
		t.Errorf("data DDL missing table name:\n%s", dataSQL)
	}
	if !strings.Contains(dataSQL, "main_journal_id UUID NOT NULL REFERENCES ctmr_main_journal(id) ON DELETE CASCADE") {
		t.Errorf("data DDL missing cascading FK:\n%s", dataSQL)
	}

	flatSQL := CtmrFlatTableSQL("crankshaft_end_clearance")
	if !strings.Contains(flatSQL, "CREATE TABLE IF NOT EXISTS ctmr_crankshaft_end_clearance (") {
		t.Errorf("flat DDL missing table name:\n%s", flatSQL)
	}
}

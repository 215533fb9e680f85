package models

import (
	"fmt"
	"strings"
)

// DDL for the measuring-section table family. The parent tables carry all
// three spec columns; the sanitizer, not the schema, keeps them disjoint.

// CtmrParentTableSQL builds the CREATE TABLE statement for one section's
// parent table.
func CtmrParentTableSQL(s CtmrSection) string {
	columns := []string{
		"id UUID PRIMARY KEY DEFAULT gen_random_uuid()",
		"measuring_report_id UUID NOT NULL REFERENCES measuring_reports(id) ON DELETE CASCADE",
		"spec_wear_limit TEXT",
		"spec_oversize_limit TEXT",
		"spec_max_ovality TEXT",
		"unit VARCHAR(20)",
		"remarks TEXT",
		"created_at TIMESTAMP NOT NULL DEFAULT NOW()",
	}

	sql := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n  %s\n);", s.ParentTable, strings.Join(columns, ",\n  "))
	sql += fmt.Sprintf("\nCREATE INDEX IF NOT EXISTS idx_%s_report ON %s(measuring_report_id);", s.ParentTable, s.ParentTable)
	return sql
}

// CtmrDataTableSQL builds the CREATE TABLE statement for one section's data
// table. The FK cascades so replacing a parent row sweeps its readings.
func CtmrDataTableSQL(s CtmrSection) string {
	columns := []string{
		"id UUID PRIMARY KEY DEFAULT gen_random_uuid()",
		fmt.Sprintf("%s UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE", s.FKColumn, s.ParentTable),
		"position VARCHAR(50)",
		"axis VARCHAR(20)",
		"reading TEXT",
		"result VARCHAR(50)",
		"remarks TEXT",
		"created_at TIMESTAMP NOT NULL DEFAULT NOW()",
	}

	sql := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n  %s\n);", s.DataTable, strings.Join(columns, ",\n  "))
	sql += fmt.Sprintf("\nCREATE INDEX IF NOT EXISTS idx_%s_parent ON %s(%s);", s.DataTable, s.DataTable, s.FKColumn)
	return sql
}

// CtmrFlatTableSQL builds the CREATE TABLE statement for one flat section.
func CtmrFlatTableSQL(name string) string {
	table := CtmrFlatTable(name)
	columns := []string{
		"id UUID PRIMARY KEY DEFAULT gen_random_uuid()",
		"measuring_report_id UUID NOT NULL REFERENCES measuring_reports(id) ON DELETE CASCADE",
		"standard_value TEXT",
		"measured_value TEXT",
		"result VARCHAR(50)",
		"remarks TEXT",
		"created_at TIMESTAMP NOT NULL DEFAULT NOW()",
	}

	sql := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n  %s\n);", table, strings.Join(columns, ",\n  "))
	sql += fmt.Sprintf("\nCREATE INDEX IF NOT EXISTS idx_%s_report ON %s(measuring_report_id);", table, table)
	return sql
}

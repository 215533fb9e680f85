package models

import (
	"fmt"
	"strings"
)

// The components-teardown measuring report fans one submission out into a
// family of per-section tables. Each measured section gets one parent row
// (section-wide specs) in ctmr_<section> and zero or more reading rows in
// ctmr_<section>_data, keyed back by <section>_id. Flat sections are a
// single row with no data table.

const ctmrTablePrefix = "ctmr_"

// Spec columns are disjoint per section: exactly one of the three applies.
const (
	SpecWearLimit     = "spec_wear_limit"
	SpecOversizeLimit = "spec_oversize_limit"
	SpecMaxOvality    = "spec_max_ovality"
)

// CtmrSection describes one measured section's tables and payload keys.
type CtmrSection struct {
	Name        string // snake_case section name
	Key         string // camelCase base for measurementData keys
	ParentTable string
	DataTable   string
	FKColumn    string // column on the data table pointing at the parent row
	SpecField   string // the one spec column this section's parent accepts
}

// ctmrSectionNames fixes the section walk order. Create and update must walk
// the same order.
var ctmrSectionNames = []string{
	"cylinder_bore",
	"cylinder_liner",
	"piston_skirt",
	"piston_pin",
	"piston_pin_bore",
	"piston_ring_gap",
	"piston_ring_groove",
	"con_rod_small_end",
	"con_rod_big_end",
	"con_rod_bushing",
	"main_journal",
	"main_journal_width",
	"con_rod_journal",
	"main_bearing_bore",
	"crankshaft_runout",
	"camshaft_journal",
	"cam_lobe_height",
	"camshaft_bushing",
	"valve_stem",
	"valve_guide",
	"valve_recession",
	"valve_spring",
	"rocker_arm_bore",
	"rocker_shaft",
	"tappet",
	"push_rod",
	"idler_gear_bushing",
	"gear_backlash",
}

// oversizeLimitSections take spec_oversize_limit; maxOvalitySections take
// spec_max_ovality; every other section takes spec_wear_limit.
var (
	oversizeLimitSections = map[string]bool{
		"main_journal_width": true,
		"con_rod_journal":    true,
	}
	maxOvalitySections = map[string]bool{
		"main_journal": true,
	}
)

// CtmrFlatSectionNames are single-row sections with no parent/data split.
var CtmrFlatSectionNames = []string{
	"crankshaft_end_clearance",
	"camshaft_end_clearance",
	"cylinder_head_distortion",
	"block_deck_distortion",
	"flywheel_runout",
	"flywheel_housing_runout",
	"vibration_damper",
	"turbocharger_end_play",
}

// CtmrSections is the fixed, ordered list of parent/child sections.
var CtmrSections []CtmrSection

// ctmrSectionIndex maps section name to its descriptor.
var ctmrSectionIndex = map[string]*CtmrSection{}

func init() {
	CtmrSections = make([]CtmrSection, 0, len(ctmrSectionNames))
	for _, name := range ctmrSectionNames {
		section := CtmrSection{
			Name:        name,
			Key:         SnakeToCamel(name),
			ParentTable: ctmrTablePrefix + name,
			DataTable:   ctmrTablePrefix + name + "_data",
			FKColumn:    name + "_id",
			SpecField:   SpecWearLimit,
		}
		if oversizeLimitSections[name] {
			section.SpecField = SpecOversizeLimit
		} else if maxOvalitySections[name] {
			section.SpecField = SpecMaxOvality
		}
		CtmrSections = append(CtmrSections, section)
		ctmrSectionIndex[name] = &CtmrSections[len(CtmrSections)-1]
	}
}

// CtmrSectionByName looks up a section descriptor. The section list is
// fixed, so a miss indicates a programming error in the caller.
func CtmrSectionByName(name string) (*CtmrSection, error) {
	section, ok := ctmrSectionIndex[name]
	if !ok {
		return nil, fmt.Errorf("unknown measuring section: %s", name)
	}
	return section, nil
}

// CtmrFlatTable returns the table name for a flat section.
func CtmrFlatTable(name string) string {
	return ctmrTablePrefix + name
}

// SanitizeMeta strips the spec fields a section's parent table does not
// accept. A nil payload passes through unchanged; unknown extra fields are
// left alone (the database schema is the final authority).
func (s *CtmrSection) SanitizeMeta(meta map[string]interface{}) map[string]interface{} {
	if meta == nil {
		return nil
	}
	for _, field := range []string{SpecWearLimit, SpecOversizeLimit, SpecMaxOvality} {
		if field != s.SpecField {
			delete(meta, field)
		}
	}
	return meta
}

// MetaKey and DataKey are the measurementData payload keys for this section.
func (s *CtmrSection) MetaKey() string { return s.Key + "Meta" }
func (s *CtmrSection) DataKey() string { return s.Key + "Data" }

// SnakeToCamel converts a snake_case identifier to camelCase
// ("cylinder_bore" -> "cylinderBore").
func SnakeToCamel(name string) string {
	parts := strings.Split(name, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}

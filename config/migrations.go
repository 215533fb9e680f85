package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/Miraku17/PowerSystems-sub003/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250901_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.Company{}, &models.Customer{},
					&models.Engine{}, &models.Pump{}, &models.MeasuringReport{}, &models.AuditLog{})
			},
		},
		{
			ID: "20250901_create_ctmr_section_tables",
			Migrate: func(tx *gorm.DB) error {
				// Parent tables first: data tables reference them.
				for _, section := range models.CtmrSections {
					if err := tx.Exec(models.CtmrParentTableSQL(section)).Error; err != nil {
						return err
					}
					if err := tx.Exec(models.CtmrDataTableSQL(section)).Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
		{
			ID: "20250901_create_ctmr_flat_tables",
			Migrate: func(tx *gorm.DB) error {
				for _, name := range models.CtmrFlatSectionNames {
					if err := tx.Exec(models.CtmrFlatTableSQL(name)).Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
	})

	return m.Migrate()
}

package db

import (
	"log"

	"gorm.io/gorm"

	"mentorhub/models"
)

// Migrate runs schema migrations and seeds the built-in roles. Called
// explicitly (MIGRATE=true) rather than on every boot.
func Migrate() {
	Init()

	if err := MigrateWith(DB); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	log.Println("✅ Migrations applied successfully!")
}

// MigrateWith applies the schema to an arbitrary connection; tests reuse it
// against an in-memory database.
func MigrateWith(database *gorm.DB) error {
	err := database.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Profile{},
		&models.MentorSkill{},
		&models.AvailabilityWindow{},
		&models.Booking{},
	)
	if err != nil {
		return err
	}

	// The no-double-booking invariant lives in the schema, not only in
	// application code: at most one non-cancelled booking per mentor, date
	// and start time.
	err = database.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_slot
		ON bookings (mentor_id, session_date, start_time)
		WHERE status <> 'cancelled' AND deleted_at IS NULL`).Error
	if err != nil {
		return err
	}

	return seedRoles(database)
}

func seedRoles(database *gorm.DB) error {
	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "Administrator with full access"},
		{Name: models.RoleMentor, Description: "Mentor offering one-on-one sessions"},
		{Name: models.RoleMentee, Description: "Mentee booking sessions with mentors"},
	}

	for _, role := range roles {
		var existing models.Role
		if database.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			if err := database.Create(&role).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

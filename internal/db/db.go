package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/agendaplus/salon-scheduler/internal/config"
	domain "github.com/agendaplus/salon-scheduler/internal/domain/appointment"
	"github.com/agendaplus/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Stylist{},
		&models.Client{},
		&models.Category{},
		&models.Service{},
		&models.StylistService{},
		&models.Schedule{},
		&models.AppointmentStatus{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.Notification{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	seedStatuses(db, log)

	return db
}

// seedStatuses garante os seis status canônicos da máquina de estados.
func seedStatuses(db *gorm.DB, log zerolog.Logger) {
	for _, name := range domain.AllStatusNames() {
		var count int64
		db.Model(&models.AppointmentStatus{}).
			Where("name = ?", string(name)).
			Count(&count)

		if count == 0 {
			status := models.AppointmentStatus{
				Name:        string(name),
				Description: domain.StatusDescription(name),
			}
			if err := db.Create(&status).Error; err != nil {
				log.Fatal().Err(err).Str("status", string(name)).Msg("failed to seed status")
			}
		}
	}
}

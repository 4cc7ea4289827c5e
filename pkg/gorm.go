package pkg

import (
	"fmt"

	"github.com/nederlandse-workbook/learning-service/internal/config"
	"github.com/nederlandse-workbook/learning-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	var logLevel logger.LogLevel
	if cfg.Environment == "production" {
		logLevel = logger.Error
	} else {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Word{},
		&models.Category{},
		&models.CategorizedWord{},
		&models.Flashcard{},
		&models.QuizSession{},
		&models.QuizAnswer{},
		&models.UserProgress{},
		&models.DailyActivity{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

package database

import (
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/welbinator/therepo/internal/config"
	"github.com/welbinator/therepo/internal/models"
)

var DB *gorm.DB

func Connect(dsn string) error {
	if dsn == "" {
		return errors.New("empty DSN")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(60 * time.Minute)

	DB = db
	return nil
}

func AutoMigrateAndSeed() error {
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Attachment{},
		&models.Submission{},
		&models.SubmissionMeta{},
		&models.Term{},
		&models.SubmissionTerm{},
	); err != nil {
		return err
	}
	return seedAdmin()
}

func seedAdmin() error {
	var count int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return nil
	}
	user := models.User{
		Email:    config.Current.AdminEmail,
		Username: "admin",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := user.SetPassword(config.Current.AdminPassword); err != nil {
		return err
	}
	return DB.Create(&user).Error
}

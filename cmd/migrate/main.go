package main

import (
	"github.com/piddash/pidgen/internal/config"
	"github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/database"
	"github.com/piddash/pidgen/internal/env"
	"github.com/piddash/pidgen/internal/model"
	"github.com/piddash/pidgen/internal/util"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	db.Exec(`CREATE EXTENSION IF NOT EXISTS citext`)

	migrateErr := db.AutoMigrate(
		&model.User{},
		&model.Token{},
		&model.Role{},
		&model.BusinessUnit{},
		&model.Customer{},
		&model.BillingType{},
		&model.Segment{},
		&model.CoreProject{},
		&model.Project{},
		&model.ProjectLog{},
	)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}

	if err := seed(db); err != nil {
		logger.Panic(err)
	}

	logger.Info("Migration and seed complete")
}

// seed creates the bootstrap super admin and the role catalog. Existing rows
// are left untouched so the command is safe to rerun.
func seed(db *gorm.DB) error {
	for _, role := range []model.Role{
		{Name: string(constant.RoleSuperAdmin), Description: "Final approval authority over generated PIDs"},
		{Name: string(constant.RoleAdmin), Description: "Generates PIDs and reviews project submissions"},
		{Name: string(constant.RoleUser), Description: "Creates and edits project requests"},
	} {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&role).Error; err != nil {
			return err
		}
	}

	password, err := util.HashPassword(env.GetString("SEED_SUPERADMIN_PASSWORD", "changeme123"))
	if err != nil {
		return err
	}

	superAdmin := model.User{
		Username: env.GetString("SEED_SUPERADMIN_USERNAME", "superadmin"),
		Email:    env.GetString("SEED_SUPERADMIN_EMAIL", "superadmin@example.com"),
		Password: password,
		Role:     constant.RoleSuperAdmin,
		IsActive: true,
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&superAdmin).Error
}

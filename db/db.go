package db

import (
	"crosscheck/config"
	"crosscheck/models"
	"crosscheck/tools"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// Connect opens the database connection (sqlite3 by default) and runs
// automigrate plus reference-data seeding.
func Connect() (*gorm.DB, error) {
	database := conf.Database
	if database == "" {
		database = "sqlite3"
	}

	var (
		db  *gorm.DB
		err error
	)

	if database == "postgres" || database == "postgresql" {
		tools.Logger.Info("Connecting to postgresql...")
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass
		db, err = gorm.Open("postgres", path)
	} else {
		tools.Logger.Info("Connecting to sqlite3...")
		db, err = gorm.Open("sqlite3", "db/database.db")
	}

	if err != nil {
		tools.Logger.Errorf("Got error when connect database: %v", err)
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs automigrate for every entity and seeds the payment
// types. Safe to run repeatedly.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Landlord{},
		&models.Tenant{},
		&models.Property{},
		&models.TenantPropertyRel{},
		&models.PaymentType{},
		&models.Payment{},
	).Error; err != nil {
		return err
	}
	if err := addForeignKeys(db); err != nil {
		return err
	}
	return SeedPaymentTypes(db)
}

// addForeignKeys installs the cascade-delete constraints. sqlite cannot
// add constraints to an existing table, so on that dialect deletion of
// dependents is handled in the controllers instead; the pragma still
// enforces any declared references.
func addForeignKeys(db *gorm.DB) error {
	if db.Dialect().GetName() == "sqlite3" {
		return db.Exec("PRAGMA foreign_keys = ON").Error
	}

	type fk struct {
		model interface{}
		field string
		dest  string
		onDel string
	}
	fks := []fk{
		{&models.Landlord{}, "user_id", "users(id)", "CASCADE"},
		{&models.Tenant{}, "landlord_id", "landlords(id)", "CASCADE"},
		{&models.Property{}, "landlord_id", "landlords(id)", "CASCADE"},
		{&models.TenantPropertyRel{}, "tenant_id", "tenants(id)", "CASCADE"},
		{&models.TenantPropertyRel{}, "rented_property_id", "properties(id)", "CASCADE"},
		{&models.Payment{}, "tenant_id", "tenants(id)", "CASCADE"},
		{&models.Payment{}, "rented_property_id", "properties(id)", "CASCADE"},
		{&models.Payment{}, "landlord_id", "landlords(id)", "CASCADE"},
		{&models.Payment{}, "payment_type_id", "payment_types(id)", "RESTRICT"},
	}
	for _, f := range fks {
		if err := db.Model(f.model).AddForeignKey(f.field, f.dest, f.onDel, "CASCADE").Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedPaymentTypes inserts the fixed payment categories when missing.
func SeedPaymentTypes(db *gorm.DB) error {
	labels := []string{"Rent", "Deposit", "Late Fee", "Utilities", "Other"}
	for _, label := range labels {
		var pt models.PaymentType
		if err := db.Where("label = ?", label).First(&pt).Error; err == nil {
			continue
		}
		pt = models.PaymentType{Label: label}
		if err := db.Create(&pt).Error; err != nil {
			return err
		}
	}
	return nil
}

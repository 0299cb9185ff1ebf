package models

import "gorm.io/gorm"

// Migrate runs forward schema migrations for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Address{},
		&Category{},
		&Product{},
		&ProductImage{},
		&Bid{},
		&Favorite{},
		&Order{},
		&Payment{},
	)
}

// Rollback drops every table, newest dependencies first. Used by the reset
// path in development.
func Rollback(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&Payment{},
		&Order{},
		&Favorite{},
		&Bid{},
		&ProductImage{},
		&Product{},
		&Category{},
		&Address{},
		&User{},
	)
}

package entity

import "gorm.io/gorm"

func MigrateTable(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Project{},
		&RewardOption{},
		&Coupon{},
		&Funding{},
		&Ask{},
		&Answer{},
	)
}

// Package model holds the GORM persistence models. They mirror the tables
// created by the embedded migrations and never leave the persistence layer.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Username     string  `gorm:"type:text;uniqueIndex;not null"`
	PasswordHash string  `gorm:"type:text;not null"`
	ImageURL     *string `gorm:"type:text"`
	Bio          *string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Recipes []RecipeModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

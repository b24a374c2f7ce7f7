// Package model contains the GORM persistence models mirroring the database schema.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	Username string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Email    string    `gorm:"type:varchar(200);uniqueIndex;not null"`
	Password string    `gorm:"type:varchar(100);not null"`
	Verified bool      `gorm:"column:is_verified;default:false;index"`
	JoinDate time.Time `gorm:"autoCreateTime"`

	Businesses []BusinessModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	Id           uuid.UUID                      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string                         `gorm:"type:varchar(255);uniqueIndex:idx_users_username;not null"`
	Email        string                         `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	PasswordHash string                         `gorm:"type:varchar(255);not null"`
	Role         string                         `gorm:"type:varchar(50);not null;default:'student';index"`
	Courses      datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	Contact      datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	CreatedAt    time.Time                      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                      `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

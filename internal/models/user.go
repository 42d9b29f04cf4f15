package models

import (
	"time"
)

type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"not null;type:varchar(255)" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null;type:varchar(255)" json:"email"`
	Password  string    `gorm:"not null;type:varchar(255)" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Skills []Skill `gorm:"many2many:user_skills" json:"skills,omitempty"`
}

func (User) TableName() string {
	return "users"
}

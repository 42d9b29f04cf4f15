package models

import (
	"time"
)

type Project struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string    `gorm:"not null;type:varchar(255)" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Tags   []Tag   `gorm:"many2many:project_tags" json:"tags,omitempty"`
	Skills []Skill `gorm:"many2many:project_skills" json:"skills,omitempty"`
	Users  []User  `gorm:"many2many:user_projects" json:"users,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}

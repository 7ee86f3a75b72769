package models

import (
	"gorm.io/gorm"
)

type MentorSkill struct {
	gorm.Model
	MentorID uint   `json:"mentor_id" gorm:"index"`
	Skill    string `json:"skill"`
	Category string `json:"category"`
}

package models

import (
	"gorm.io/gorm"
)

// Profile holds the display information shown to mentees when browsing
// mentors. Bio and AvatarURL are pointers so "never set" and "set to empty"
// stay distinguishable.
type Profile struct {
	gorm.Model
	UserID    uint    `json:"user_id" gorm:"uniqueIndex"`
	FullName  string  `json:"full_name"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

package models

import "github.com/google/uuid"

// Tag is a named label shared across thoughts; its slug is the
// canonical identity (two names that slugify alike are one tag).
type Tag struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"type:varchar(36);primaryKey;not null"`
	Name string    `json:"name" db:"name" gorm:"type:text;not null"`
	Slug string    `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
}

// TagWithCount annotates a tag with its published-thought count
type TagWithCount struct {
	Tag
	Count int `json:"count"`
}

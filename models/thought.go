package models

import (
	"time"

	"github.com/google/uuid"
)

// Thought represents a single published or draft post
type Thought struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:varchar(36);primaryKey;not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Content     string    `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt     *string   `json:"excerpt,omitempty" db:"excerpt" gorm:"type:text"`
	ReadingTime int       `json:"readingTime" db:"reading_time" gorm:"type:integer;not null;default:1"`
	WordCount   int       `json:"wordCount" db:"word_count" gorm:"type:integer;not null;default:0"`
	AuthorID    uuid.UUID `json:"authorId" db:"author_id" gorm:"type:varchar(36);not null;index"`
	IsPublished bool      `json:"isPublished" db:"is_published" gorm:"type:boolean;not null;default:true"`
	ViewCount   int       `json:"viewCount" db:"view_count" gorm:"type:integer;not null;default:0"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Author User  `json:"-" gorm:"foreignKey:AuthorID;references:ID"`
	Tags   []Tag `json:"-" gorm:"many2many:thought_tags;joinForeignKey:ThoughtID;joinReferences:TagID"`
}

// ThoughtWithAuthor is the joined view returned by all read paths:
// the thought plus its author's public profile and its tags.
type ThoughtWithAuthor struct {
	Thought
	Author AuthorProfile `json:"author"`
	Tags   []Tag         `json:"tags"`
}

// WithAuthor builds the joined view from a thought whose Author and
// Tags relations have been loaded.
func (t Thought) WithAuthor() ThoughtWithAuthor {
	tags := t.Tags
	if tags == nil {
		tags = []Tag{}
	}
	return ThoughtWithAuthor{
		Thought: t,
		Author:  t.Author.Profile(),
		Tags:    tags,
	}
}

// Stats holds aggregate counts over the published thought set
type Stats struct {
	TotalThoughts int `json:"totalThoughts"`
	TotalTags     int `json:"totalTags"`
	TotalWords    int `json:"totalWords"`
	TotalViews    int `json:"totalViews"`
}

package database

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rpupo63/unsaid-thoughts-backend/errs"
	"github.com/rpupo63/unsaid-thoughts-backend/models"
	"gorm.io/gorm"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// GetOrCreate resolves a free-text tag name to its Tag row, creating
// one on first use. Lookup is by slug, so names that normalize alike
// collapse to the same row; an existing row keeps its stored name even
// when the input casing differs.
func (r *TagRepo) GetOrCreate(name string) (*models.Tag, error) {
	return getOrCreateTag(r.db, name)
}

// FindBySlug returns a tag by slug, or nil when no such tag exists
func (r *TagRepo) FindBySlug(slug string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("slug = ?", slug).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindAllWithCounts returns every tag used by at least one published
// thought, annotated with that count and sorted most-used first.
func (r *TagRepo) FindAllWithCounts() ([]models.TagWithCount, error) {
	var rows []struct {
		ID    string
		Name  string
		Slug  string
		Count int
	}
	err := r.db.Model(&models.Tag{}).
		Select("tags.id, tags.name, tags.slug, COUNT(thought_tags.tag_id) AS count").
		Joins("JOIN thought_tags ON thought_tags.tag_id = tags.id").
		Joins("JOIN thoughts ON thoughts.id = thought_tags.thought_id AND thoughts.is_published = ?", true).
		Group("tags.id, tags.name, tags.slug").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	tags := make([]models.TagWithCount, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			return nil, err
		}
		tags = append(tags, models.TagWithCount{
			Tag:   models.Tag{ID: id, Name: row.Name, Slug: row.Slug},
			Count: row.Count,
		})
	}
	return tags, nil
}

// getOrCreateTag is the shared find-or-create used both directly and
// from inside thought transactions.
func getOrCreateTag(db *gorm.DB, name string) (*models.Tag, error) {
	slug := Slugify(name)
	if slug == "" {
		return nil, errs.BadRequest("tag name has no usable characters")
	}

	var existing models.Tag
	err := db.Where("slug = ?", slug).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := models.Tag{
		ID:   uuid.New(),
		Name: strings.ToLower(name),
		Slug: slug,
	}
	if err := db.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

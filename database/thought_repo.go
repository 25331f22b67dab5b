package database

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/unsaid-thoughts-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ThoughtRepo struct {
	db *gorm.DB
}

func NewThoughtRepo(db *gorm.DB) *ThoughtRepo {
	return &ThoughtRepo{db}
}

// excerptLength is how much of the content becomes the derived excerpt.
const excerptLength = 200

// deriveExcerpt returns the first 200 characters of content, with an
// ellipsis marker when content was truncated.
func deriveExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) > excerptLength {
		return string(runes[:excerptLength]) + "..."
	}
	return content
}

// ThoughtFilter narrows the result of Find. Zero values mean "no filter".
type ThoughtFilter struct {
	Limit    int
	Tag      string
	AuthorID *uuid.UUID
	Search   string
	Exclude  *uuid.UUID
}

// Find returns joined thoughts ordered most-recent-first. Without an
// author scope only published thoughts are visible; scoping to an
// author returns all of that author's thoughts, drafts included, since
// the only author-scoped caller is the owner's own dashboard.
//
// The tag, exclude, search and limit filters are applied in that fixed
// order over the already-joined rows, so combining them is equivalent
// to applying each in sequence.
func (r *ThoughtRepo) Find(filter ThoughtFilter) ([]models.ThoughtWithAuthor, error) {
	query := r.db.Preload("Author").Preload("Tags").Order("created_at DESC")
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	} else {
		query = query.Where("is_published = ?", true)
	}

	var rows []models.Thought
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	thoughts := make([]models.ThoughtWithAuthor, 0, len(rows))
	for _, row := range rows {
		thoughts = append(thoughts, row.WithAuthor())
	}

	if filter.Tag != "" {
		kept := thoughts[:0]
		for _, t := range thoughts {
			for _, tag := range t.Tags {
				if tag.Slug == filter.Tag {
					kept = append(kept, t)
					break
				}
			}
		}
		thoughts = kept
	}

	if filter.Exclude != nil {
		kept := thoughts[:0]
		for _, t := range thoughts {
			if t.ID != *filter.Exclude {
				kept = append(kept, t)
			}
		}
		thoughts = kept
	}

	if filter.Search != "" {
		term := strings.ToLower(filter.Search)
		kept := thoughts[:0]
		for _, t := range thoughts {
			if matchesSearch(t, term) {
				kept = append(kept, t)
			}
		}
		thoughts = kept
	}

	if filter.Limit > 0 && len(thoughts) > filter.Limit {
		thoughts = thoughts[:filter.Limit]
	}

	return thoughts, nil
}

func matchesSearch(t models.ThoughtWithAuthor, term string) bool {
	if strings.Contains(strings.ToLower(t.Title), term) {
		return true
	}
	if t.Excerpt != nil && strings.Contains(strings.ToLower(*t.Excerpt), term) {
		return true
	}
	return strings.Contains(strings.ToLower(t.Content), term)
}

// FindBySlug returns a joined thought by slug, or nil when absent
func (r *ThoughtRepo) FindBySlug(slug string) (*models.ThoughtWithAuthor, error) {
	return r.findOne("slug = ?", slug)
}

// FindByID returns a joined thought by id, or nil when absent
func (r *ThoughtRepo) FindByID(id uuid.UUID) (*models.ThoughtWithAuthor, error) {
	return r.findOne("id = ?", id)
}

func (r *ThoughtRepo) findOne(cond string, value any) (*models.ThoughtWithAuthor, error) {
	var row models.Thought
	err := r.db.Preload("Author").Preload("Tags").Where(cond, value).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	joined := row.WithAuthor()
	return &joined, nil
}

// Create persists a new thought for the given author and links its
// tags, all inside one transaction so a tag failure rolls the thought
// back too. A missing excerpt is derived from the content.
func (r *ThoughtRepo) Create(thought *models.Thought, authorID uuid.UUID, tagNames []string) (*models.ThoughtWithAuthor, error) {
	thought.ID = uuid.New()
	thought.AuthorID = authorID
	if thought.Excerpt == nil || *thought.Excerpt == "" {
		excerpt := deriveExcerpt(thought.Content)
		thought.Excerpt = &excerpt
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(thought).Error; err != nil {
			return err
		}
		return linkTags(tx, thought.ID, tagNames)
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(thought.ID)
}

// ThoughtUpdate carries partial field updates; nil means leave unchanged.
type ThoughtUpdate struct {
	Title       *string
	Slug        *string
	Content     *string
	Excerpt     *string
	ReadingTime *int
	WordCount   *int
	IsPublished *bool
}

// Update applies a partial update, stamping updatedAt. The excerpt is
// recomputed only when content changes without an explicit excerpt.
// A non-nil tagNames, empty included, fully replaces the thought's tag
// associations; nil preserves them. Returns nil when the thought does
// not exist.
func (r *ThoughtRepo) Update(id uuid.UUID, update ThoughtUpdate, tagNames []string) (*models.ThoughtWithAuthor, error) {
	columns := map[string]any{"updated_at": time.Now()}
	if update.Title != nil {
		columns["title"] = *update.Title
	}
	if update.Slug != nil {
		columns["slug"] = *update.Slug
	}
	if update.Content != nil {
		columns["content"] = *update.Content
		if update.Excerpt == nil {
			columns["excerpt"] = deriveExcerpt(*update.Content)
		}
	}
	if update.Excerpt != nil {
		columns["excerpt"] = *update.Excerpt
	}
	if update.ReadingTime != nil {
		columns["reading_time"] = *update.ReadingTime
	}
	if update.WordCount != nil {
		columns["word_count"] = *update.WordCount
	}
	if update.IsPublished != nil {
		columns["is_published"] = *update.IsPublished
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Thought{}).Where("id = ?", id).Updates(columns)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if tagNames == nil {
			return nil
		}
		if err := tx.Where("thought_id = ?", id).Delete(&models.ThoughtTag{}).Error; err != nil {
			return err
		}
		return linkTags(tx, id, tagNames)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return r.FindByID(id)
}

// Delete removes a thought and its tag associations, reporting whether
// a row was actually removed. Tags themselves are left in place.
func (r *ThoughtRepo) Delete(id uuid.UUID) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("thought_id = ?", id).Delete(&models.ThoughtTag{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Thought{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// IncrementViewCount bumps the view counter by one without touching
// updatedAt. Callers invoke it once per successful fetch by slug.
func (r *ThoughtRepo) IncrementViewCount(id uuid.UUID) error {
	return r.db.Model(&models.Thought{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

// Stats aggregates over published thoughts, optionally scoped to one
// author. The tag total counts tags with at least one published
// association globally, regardless of scope; callers depend on it
// staying global.
func (r *ThoughtRepo) Stats(authorID *uuid.UUID) (*models.Stats, error) {
	query := r.db.Model(&models.Thought{}).Where("is_published = ?", true)
	if authorID != nil {
		query = query.Where("author_id = ?", *authorID)
	}

	var totals struct {
		Thoughts int
		Words    int
		Views    int
	}
	err := query.
		Select("COUNT(*) AS thoughts, COALESCE(SUM(word_count), 0) AS words, COALESCE(SUM(view_count), 0) AS views").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	var tagCount int64
	err = r.db.Model(&models.ThoughtTag{}).
		Joins("JOIN thoughts ON thoughts.id = thought_tags.thought_id").
		Where("thoughts.is_published = ?", true).
		Distinct("thought_tags.tag_id").
		Count(&tagCount).Error
	if err != nil {
		return nil, err
	}

	return &models.Stats{
		TotalThoughts: totals.Thoughts,
		TotalTags:     int(tagCount),
		TotalWords:    totals.Words,
		TotalViews:    totals.Views,
	}, nil
}

// linkTags resolves each name through the tag normalizer and inserts
// the association rows. Names are deduplicated by slug first, and
// names that slugify to nothing are dropped, so one submission can
// never produce a duplicate association.
func linkTags(tx *gorm.DB, thoughtID uuid.UUID, tagNames []string) error {
	seen := make(map[string]struct{}, len(tagNames))
	for _, name := range tagNames {
		slug := Slugify(name)
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}

		tag, err := getOrCreateTag(tx, name)
		if err != nil {
			return err
		}
		link := models.ThoughtTag{ThoughtID: thoughtID, TagID: tag.ID}
		if err := tx.Omit(clause.Associations).Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

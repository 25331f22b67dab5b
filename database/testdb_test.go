package database

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rpupo63/unsaid-thoughts-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
// A single connection keeps every statement on the same :memory: store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		ID:        uuid.New(),
		Username:  username,
		Email:     username + "@example.com",
		Password:  "hashed-password",
		CreatedAt: time.Now(),
	}
	require.NoError(t, NewUserRepo(db).Add(&user))
	return user
}

// thoughtSpec keeps test fixtures terse.
type thoughtSpec struct {
	title     string
	content   string
	published bool
	createdAt time.Time
	tags      []string
	wordCount int
	viewCount int
}

func createTestThought(t *testing.T, db *gorm.DB, authorID uuid.UUID, spec thoughtSpec) models.ThoughtWithAuthor {
	t.Helper()

	content := spec.content
	if content == "" {
		content = "some content for " + spec.title
	}

	thought := models.Thought{
		Title:       spec.title,
		Slug:        Slugify(spec.title) + "-" + uuid.NewString()[:8],
		Content:     content,
		IsPublished: spec.published,
		WordCount:   spec.wordCount,
		ViewCount:   spec.viewCount,
		ReadingTime: 1,
	}
	if !spec.createdAt.IsZero() {
		thought.CreatedAt = spec.createdAt
	}

	created, err := NewThoughtRepo(db).Create(&thought, authorID, spec.tags)
	require.NoError(t, err)
	return *created
}

package database

import (
	"github.com/rpupo63/unsaid-thoughts-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	userRepo    *UserRepo
	thoughtRepo *ThoughtRepo
	tagRepo     *TagRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:    NewUserRepo(db),
		thoughtRepo: NewThoughtRepo(db),
		tagRepo:     NewTagRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ThoughtRepo() *ThoughtRepo {
	return d.thoughtRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

// Migrate creates or updates the four tables backing the app. The join
// table is registered first so it gets its composite primary key and
// cascade constraints instead of gorm's default surrogate layout.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Thought{}, "Tags", &models.ThoughtTag{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Thought{},
		&models.ThoughtTag{},
	)
}

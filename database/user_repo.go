package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/unsaid-thoughts-backend/models"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindByID returns a user by id, or nil when no such user exists
func (r *UserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns a user by email, or nil when no such user exists
func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername returns a user by username, or nil when no such user exists
func (r *UserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Add inserts a new user into the database
func (r *UserRepo) Add(user *models.User) error {
	return r.db.Create(user).Error
}

// ProfileUpdate carries the mutable profile fields; nil means leave unchanged.
type ProfileUpdate struct {
	DisplayName *string
	Bio         *string
	AvatarURL   *string
}

// UpdateProfile applies a partial profile update and returns the
// updated user, or nil when the user does not exist.
func (r *UserRepo) UpdateProfile(id uuid.UUID, update ProfileUpdate) (*models.User, error) {
	columns := map[string]any{}
	if update.DisplayName != nil {
		columns["display_name"] = *update.DisplayName
	}
	if update.Bio != nil {
		columns["bio"] = *update.Bio
	}
	if update.AvatarURL != nil {
		columns["avatar_url"] = *update.AvatarURL
	}

	if len(columns) > 0 {
		res := r.db.Model(&models.User{}).Where("id = ?", id).Updates(columns)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}

	return r.FindByID(id)
}

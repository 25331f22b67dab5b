package api

import "github.com/rpupo63/unsaid-thoughts-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler    authHandler
	profileHandler profileHandler
	thoughtHandler thoughtHandler
	tagHandler     tagHandler
	statsHandler   statsHandler
}

// RegisterRequest is the body of POST /api/auth/register
type RegisterRequest struct {
	Username    string  `json:"username" validate:"required,min=3,max=30"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	DisplayName *string `json:"displayName,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse carries the account and its freshly issued bearer token
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// UpdateProfileRequest is the body of PATCH /api/profile; absent
// fields are left unchanged.
type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	AvatarURL   *string `json:"avatarUrl,omitempty" validate:"omitempty,http_url"`
}

// CreateThoughtRequest is the body of POST /api/thoughts
type CreateThoughtRequest struct {
	Title       string   `json:"title" validate:"required"`
	Slug        string   `json:"slug" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Excerpt     *string  `json:"excerpt,omitempty"`
	ReadingTime *int     `json:"readingTime,omitempty"`
	WordCount   *int     `json:"wordCount,omitempty"`
	IsPublished *bool    `json:"isPublished,omitempty"`
	TagNames    []string `json:"tagNames,omitempty"`
}

// UpdateThoughtRequest is the body of PATCH /api/thoughts/:id. All
// fields are optional; a present tagNames (empty list included) fully
// replaces the thought's tags, an absent one preserves them.
type UpdateThoughtRequest struct {
	Title       *string   `json:"title,omitempty"`
	Slug        *string   `json:"slug,omitempty"`
	Content     *string   `json:"content,omitempty"`
	Excerpt     *string   `json:"excerpt,omitempty"`
	ReadingTime *int      `json:"readingTime,omitempty"`
	WordCount   *int      `json:"wordCount,omitempty"`
	IsPublished *bool     `json:"isPublished,omitempty"`
	TagNames    *[]string `json:"tagNames,omitempty"`
}

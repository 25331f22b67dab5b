package api

import (
	"github.com/rpupo63/unsaid-thoughts-backend/database"
	"github.com/rpupo63/unsaid-thoughts-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, tokens *services.TokenIssuer) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(database.UserRepo(), tokens),
		profileHandler: newProfileHandler(database.UserRepo()),
		thoughtHandler: newThoughtHandler(database.ThoughtRepo()),
		tagHandler:     newTagHandler(database.TagRepo()),
		statsHandler:   newStatsHandler(database.ThoughtRepo()),
	}
}

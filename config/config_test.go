package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	cfg := map[string]string{"PORT": "9090", "EMPTY": ""}

	assert.Equal(t, "9090", GetString(cfg, "PORT", "8080"))
	assert.Equal(t, "8080", GetString(cfg, "MISSING", "8080"))
	assert.Equal(t, "", GetString(cfg, "EMPTY", "8080"))
	assert.Equal(t, "8080", GetString(nil, "PORT", "8080"))
}

func TestMustGetString(t *testing.T) {
	cfg := map[string]string{"SESSION_SECRET": "s3cret", "EMPTY": ""}

	val, err := MustGetString(cfg, "SESSION_SECRET")
	assert.NoError(t, err)
	assert.Equal(t, "s3cret", val)

	_, err = MustGetString(cfg, "MISSING")
	assert.Error(t, err)

	// an empty value is as unusable as an absent one
	_, err = MustGetString(cfg, "EMPTY")
	assert.Error(t, err)
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{"TIMEOUT": "30", "BAD": "thirty"}

	assert.Equal(t, 30, GetInt(cfg, "TIMEOUT", 60))
	assert.Equal(t, 60, GetInt(cfg, "MISSING", 60))
	assert.Equal(t, 60, GetInt(cfg, "BAD", 60))
	assert.Equal(t, 60, GetInt(nil, "TIMEOUT", 60))
}

func TestSplit(t *testing.T) {
	key, value := split("DB_HOST=localhost")
	assert.Equal(t, "DB_HOST", key)
	assert.Equal(t, "localhost", value)

	// values may themselves contain '='
	key, value = split("DATABASE_URL=postgres://u:p@h/db?sslmode=disable")
	assert.Equal(t, "DATABASE_URL", key)
	assert.Equal(t, "postgres://u:p@h/db?sslmode=disable", value)

	key, value = split("NOVALUE")
	assert.Equal(t, "NOVALUE", key)
	assert.Equal(t, "", value)
}

package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	entries, err := fs.ReadDir(migrations, "migrations")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, e := range entries {
		body, err := fs.ReadFile(migrations, "migrations/"+e.Name())
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", e.Name())
		assert.Contains(t, string(body), "-- +goose Down", e.Name())
	}
}

func TestMigrations_UsersSchema(t *testing.T) {
	body, err := fs.ReadFile(migrations, "migrations/00001_create_users.sql")
	require.NoError(t, err)

	schema := string(body)
	assert.True(t, strings.Contains(schema, "users_username_key"))
	assert.True(t, strings.Contains(schema, "users_email_key"))
	assert.Contains(t, schema, "refresh_token TEXT NULL")
}

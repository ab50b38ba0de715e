package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsOrderedGooseMigrations(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.Equal(t, []string{
		"00001_create_users.sql",
		"00002_create_collections.sql",
		"00003_create_nfts.sql",
		"00004_create_reviews.sql",
	}, files)

	for _, name := range files {
		content, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), "-- +goose Up"), name)
		assert.Contains(t, string(content), "-- +goose Down", name)
	}
}

func TestFS_ReviewsCascadeWithNFT(t *testing.T) {
	content, err := fs.ReadFile(FS, "00004_create_reviews.sql")
	require.NoError(t, err)

	assert.Contains(t, string(content), "REFERENCES nfts (token_id) ON DELETE CASCADE")
}

func TestFS_LikesNeverNegative(t *testing.T) {
	content, err := fs.ReadFile(FS, "00003_create_nfts.sql")
	require.NoError(t, err)

	assert.Contains(t, string(content), "CHECK (likes >= 0)")
}

func TestFS_CollectionDeleteRestrictedByNFTs(t *testing.T) {
	content, err := fs.ReadFile(FS, "00003_create_nfts.sql")
	require.NoError(t, err)

	assert.Contains(t, string(content), "REFERENCES collections (id) ON DELETE RESTRICT")
}

package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_IsDraft(t *testing.T) {
	tests := []struct {
		name       string
		collection Collection
		nftCount   int64
		want       bool
	}{
		{name: "generated and empty", collection: Collection{Name: DefaultCollectionName(4)}, want: true},
		{name: "holds NFTs", collection: Collection{Name: DefaultCollectionName(4)}, nftCount: 1, want: false},
		{name: "renamed", collection: Collection{Name: DefaultCollectionName(4), IsNameModified: true}, want: false},
		{name: "custom name never flagged", collection: Collection{Name: "art"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.collection.IsDraft(tt.nftCount))
		})
	}
}

func TestCollection_MarshalJSON_NFTs(t *testing.T) {
	body, err := json.Marshal(&Collection{Name: "art", NFTs: []*NFT{}})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"nfts":[]`)

	body, err = json.Marshal(&Collection{Name: "art"})
	require.NoError(t, err)
	assert.NotContains(t, string(body), `"nfts"`)
}

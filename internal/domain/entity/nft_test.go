package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketState_IsListed(t *testing.T) {
	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		state MarketState
		want  bool
	}{
		{name: "unlisted", state: UnlistedMarketState(), want: false},
		{name: "priced but not offered", state: MarketState{Price: 10, StartSaleDate: &start}, want: false},
		{name: "on sale", state: MarketState{IsOnSale: true}, want: true},
		{name: "on lease", state: MarketState{IsOnLease: true}, want: true},
		{name: "on auction", state: MarketState{IsOnAuction: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.IsListed())
		})
	}
}

func TestNFT_MarshalJSON_Reviews(t *testing.T) {
	t.Run("loaded and empty", func(t *testing.T) {
		body, err := json.Marshal(&NFT{TokenID: 7, Reviews: []*Review{}})
		require.NoError(t, err)

		assert.Contains(t, string(body), `"reviews":[]`)
	})

	t.Run("not loaded", func(t *testing.T) {
		body, err := json.Marshal(&NFT{TokenID: 7})
		require.NoError(t, err)

		assert.NotContains(t, string(body), `"reviews"`)
		assert.NotContains(t, string(body), `"user"`)
		assert.NotContains(t, string(body), `"collection"`)
	})
}

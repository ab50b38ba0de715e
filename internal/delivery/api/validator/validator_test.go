package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Address string `json:"address" validate:"required,eth_addr"`
	Link    string `json:"mainLink" validate:"omitempty,url"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   sample
		wantErr string
	}{
		{
			name:  "valid",
			input: sample{Address: "0x1111111111111111111111111111111111111111", Link: "https://example.com"},
		},
		{
			name:    "missing address",
			input:   sample{},
			wantErr: "Missing address",
		},
		{
			name:    "malformed address",
			input:   sample{Address: "0x12"},
			wantErr: "Invalid address 0x12",
		},
		{
			name:    "bad link",
			input:   sample{Address: "0x1111111111111111111111111111111111111111", Link: "nope"},
			wantErr: "Invalid mainLink",
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, Describe(err))
		})
	}
}

func TestDescribe_NonValidationError(t *testing.T) {
	assert.Equal(t, "Invalid request", Describe(assert.AnError))
}

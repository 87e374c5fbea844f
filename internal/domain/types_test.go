package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountValid(t *testing.T) {
	tests := []struct {
		name     string
		account  Account
		expected bool
	}{
		{
			name:     "checksummed address",
			account:  Account("0x396343362be2A4dA1cE0C1C210945346fb82Aa49"),
			expected: true,
		},
		{
			name:     "lowercase address",
			account:  Account("0x396343362be2a4da1ce0c1c210945346fb82aa49"),
			expected: true,
		},
		{
			name:     "empty",
			account:  Account(""),
			expected: false,
		},
		{
			name:     "too short",
			account:  Account("0x1234"),
			expected: false,
		},
		{
			name:     "not hex",
			account:  Account("0xZZ6343362be2A4dA1cE0C1C210945346fb82Aa49"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.account.Valid())
		})
	}
}

func TestAccountNormalize(t *testing.T) {
	lower := Account("0x396343362be2a4da1ce0c1c210945346fb82aa49")
	assert.Equal(t, Account("0x396343362be2A4dA1cE0C1C210945346fb82Aa49"), lower.Normalize())

	// non-hex identifiers pass through untouched
	opaque := Account("custodian")
	assert.Equal(t, opaque, opaque.Normalize())
}

func TestDefaultParams(t *testing.T) {
	params := DefaultParams()
	assert.Equal(t, uint64(150), params.MinCollateralRatio)
	assert.Equal(t, uint64(25), params.ProtocolFeeBPS)
	assert.Equal(t, uint64(50), params.YieldRateBPS)
}

func TestLedgerEventCanonicalJSON(t *testing.T) {
	event := LedgerEvent{
		ID:      NewEventID(),
		Type:    EventTypeTokenMinted,
		TokenID: 1,
		Actor:   Account("0xA111111111111111111111111111111111111111"),
		Amount:  150,
		Height:  10,
	}

	first, err := event.CanonicalJSON()
	require.NoError(t, err)
	second, err := event.CanonicalJSON()
	require.NoError(t, err)

	// canonicalization is deterministic, so the bytes double as a dedup key
	assert.Equal(t, first, second)
	assert.Contains(t, string(first), `"type":"token_minted"`)
}

func TestNewEventID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := NewEventID()
		require.Len(t, id, 26)
		require.False(t, seen[id])
		seen[id] = true
	}
}

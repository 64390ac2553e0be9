package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePort(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Port
		wantErr bool
	}{
		{"plain number", "8080", 8080, false},
		{"trailing garbage ignored", "8080abc", 8080, false},
		{"leading whitespace", "  3000", 3000, false},
		{"explicit plus", "+443", 443, false},
		{"negative accepted", "-5", -5, false},
		{"zero accepted", "0", 0, false},
		{"above max still parses", "99999", 99999, false},
		{"letters only", "abc", 0, true},
		{"empty", "", 0, true},
		{"sign only", "-", 0, true},
		{"leading letter", "a8080", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePort(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidPortInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePort_HugeNumbers(t *testing.T) {
	got, err := ParsePort("123456789012345678901234567890")
	require.NoError(t, err)
	assert.Greater(t, got, PortMax)

	_, err = ParsePort("-123456789012345678901234567890")
	assert.ErrorIs(t, err, ErrInvalidPortInput)
}

func TestParsePort_KeepsLargeNegativeValues(t *testing.T) {
	got, err := ParsePort("-99999999999")
	require.NoError(t, err)
	assert.Equal(t, "-99999999999", got.String())
	assert.Equal(t, "https://localhost:-99999999999", got.URL("", ""))
}

func TestValidatePortInput(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Port
		wantErr bool
	}{
		{"max port", "65535", 65535, false},
		{"one above max", "65536", 0, true},
		{"way above max", "99999", 0, true},
		{"not a number", "localhost", 0, true},
		{"no lower bound", "-1", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePortInput(tt.text)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPortInput)
				assert.Contains(t, err.Error(), tt.text)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPortURL(t *testing.T) {
	assert.Equal(t, "https://localhost:8080", Port(8080).URL("", ""))
	assert.Equal(t, "http://127.0.0.1:3000", Port(3000).URL("http", "127.0.0.1"))
	assert.Equal(t, "https://localhost:0", Port(0).URL(DefaultScheme, DefaultHost))
}

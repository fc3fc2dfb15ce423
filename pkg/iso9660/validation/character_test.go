package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCharacters(t *testing.T) {
	tests := []struct {
		name    string
		check   func(string) error
		input   string
		wantErr bool
	}{
		{"a-characters", func(s string) error { return ValidateACharacters(s, false) }, "MY DISC (2024)!", false},
		{"a-characters lower case", func(s string) error { return ValidateACharacters(s, false) }, "My Disc", true},
		{"a-characters separator", func(s string) error { return ValidateACharacters(s, false) }, "A;1", false},
		{"d-characters", func(s string) error { return ValidateDCharacters(s, false) }, "UBUNTU_24_04", false},
		{"d-characters space", func(s string) error { return ValidateDCharacters(s, false) }, "UBUNTU 24", true},
		{"d-characters separators allowed", func(s string) error { return ValidateDCharacters(s, true) }, "README.TXT;1", false},
		{"d-characters separators refused", func(s string) error { return ValidateDCharacters(s, false) }, "README.TXT", true},
		{"empty", func(s string) error { return ValidateDCharacters(s, false) }, "", false},
		{"non ascii", func(s string) error { return ValidateACharacters(s, false) }, "CAFÉ", true},
		{"owner plain", ValidateOwnerIdentifier, "GENISOIMAGE ISO 9660 FILESYSTEM", false},
		{"owner file", ValidateOwnerIdentifier, "_PUBLISH.TXT", false},
		{"owner bad file", ValidateOwnerIdentifier, "_PUB LISH.TXT", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrCharacterSet)
				return
			}
			require.NoError(t, err)
		})
	}
}

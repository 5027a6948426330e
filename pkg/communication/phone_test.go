package communication_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirasaad/valobs/pkg/communication"
	"github.com/amirasaad/valobs/pkg/valueobject"
)

func TestNewPhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		region  string
		want    string
		wantErr bool
	}{
		{"E.164 needs no region", "+14155552671", "", "+14155552671", false},
		{"national format with region", "020 7183 8750", "GB", "+442071838750", false},
		{"formatting is canonicalized", "(415) 555-2671", "US", "+14155552671", false},
		{"too short", "123", "US", "", true},
		{"garbage", "not a number", "US", "", true},
		{"national format without region", "020 7183 8750", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := communication.NewPhoneNumber(tt.number, tt.region)
			if tt.wantErr {
				require.ErrorIs(t, err, communication.ErrInvalidPhoneNumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.E164())
		})
	}
}

func TestPhoneNumber_Equality(t *testing.T) {
	a, err := communication.NewPhoneNumber("+14155552671", "")
	require.NoError(t, err)
	b, err := communication.NewPhoneNumber("(415) 555-2671", "US")
	require.NoError(t, err)

	assert.True(t, a.Equals(b), "canonical forms must compare equal")
}

func TestPhoneNumber_JSON(t *testing.T) {
	p, err := communication.NewPhoneNumber("+442071838750", "")
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `"+442071838750"`, string(data))

	back, err := valueobject.RoundTrip(p)
	require.NoError(t, err)
	assert.True(t, p.Equals(back))

	var bad communication.PhoneNumber
	err = json.Unmarshal([]byte(`"123"`), &bad)
	require.ErrorIs(t, err, communication.ErrInvalidPhoneNumber)
}

//go:build unit

package account_test

import (
	"testing"

	"treesync/internal/domain/account"
	"treesync/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials_Validate(t *testing.T) {
	testCases := []struct {
		name  string
		creds account.Credentials
		errIs error
	}{
		{
			name: "valid mews bundle",
			creds: account.Credentials{
				PmsType:     account.PmsMews,
				ClientToken: "ct",
				AccessToken: "at",
			},
		},
		{
			name: "mews bundle missing access token",
			creds: account.Credentials{
				PmsType:     account.PmsMews,
				ClientToken: "ct",
			},
			errIs: errs.ErrCredentialsInvalidFormat,
		},
		{
			name: "valid hotelspider bundle",
			creds: account.Credentials{
				PmsType:   account.PmsHotelSpider,
				Username:  "u",
				Password:  "p",
				HotelCode: "H123",
			},
		},
		{
			name: "hotelspider bundle missing hotel code",
			creds: account.Credentials{
				PmsType:  account.PmsHotelSpider,
				Username: "u",
				Password: "p",
			},
			errIs: errs.ErrCredentialsInvalidFormat,
		},
		{
			name:  "unknown pms type",
			creds: account.Credentials{PmsType: "opera"},
			errIs: account.ErrUnknownPmsType,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.creds.Validate()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParsePmsType(t *testing.T) {
	pms, err := account.ParsePmsType("mews")
	require.NoError(t, err)
	assert.Equal(t, account.PmsMews, pms)

	_, err = account.ParsePmsType("opera")
	assert.ErrorIs(t, err, account.ErrUnknownPmsType)
}

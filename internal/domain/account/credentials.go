package account

import (
	"treesync/internal/pkg/errs"
)

// Credentials is the decrypted, PMS-type-specific secret bundle. It lives
// in memory for the duration of one synchronization run and is never
// persisted in plaintext.
type Credentials struct {
	PmsType PmsType `json:"pmsType"`

	// Mews token pair
	ClientToken string `json:"clientToken,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`

	// HotelSpider triple
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
	HotelCode string `json:"hotelCode,omitempty"`
}

// Validate checks structural completeness without contacting the PMS.
func (c Credentials) Validate() error {
	switch c.PmsType {
	case PmsMews:
		if c.ClientToken == "" || c.AccessToken == "" {
			return errs.Mark(errs.New("mews bundle requires client and access tokens"), errs.ErrCredentialsInvalidFormat)
		}
	case PmsHotelSpider:
		if c.Username == "" || c.Password == "" || c.HotelCode == "" {
			return errs.Mark(errs.New("hotelspider bundle requires username, password and hotel code"), errs.ErrCredentialsInvalidFormat)
		}
	default:
		return errs.Wrap(ErrUnknownPmsType, string(c.PmsType))
	}
	return nil
}

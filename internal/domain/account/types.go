package account

import (
	"treesync/internal/pkg/errs"
)

// PmsType is the closed set of property-management systems reachable
// through the connector abstraction.
type PmsType string

const (
	PmsMews        PmsType = "mews"
	PmsHotelSpider PmsType = "hotelspider"
)

var ErrUnknownPmsType = errs.New("unknown pms type")

func ParsePmsType(s string) (PmsType, error) {
	switch PmsType(s) {
	case PmsMews, PmsHotelSpider:
		return PmsType(s), nil
	default:
		return "", errs.Wrap(ErrUnknownPmsType, s)
	}
}

// ExternalIDPending marks an account whose enterprise id has not been
// resolved by a first successful sync or discovery yet.
const ExternalIDPending = "pending"

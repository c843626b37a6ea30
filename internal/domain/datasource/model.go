package datasource

import (
	"fmt"
	"strings"
)

// Vendor identifies which tracking device produced a CSV export.
type Vendor string

const (
	VendorRapsodo    Vendor = "Rapsodo"
	VendorPitchLogic Vendor = "PitchLogic"
	VendorTrackman   Vendor = "Trackman"
	VendorUnknown    Vendor = "Unknown"
)

// ParseVendor matches a caller-supplied source name against the importable
// vendors, ignoring case and surrounding whitespace. The canonical vendor
// constant is returned so downstream registry lookups use one spelling.
func ParseVendor(name string) (Vendor, bool) {
	trimmed := strings.TrimSpace(name)
	for _, v := range []Vendor{VendorRapsodo, VendorPitchLogic, VendorTrackman} {
		if strings.EqualFold(trimmed, string(v)) {
			return v, true
		}
	}
	return VendorUnknown, false
}

func (v Vendor) Known() bool {
	switch v {
	case VendorRapsodo, VendorPitchLogic, VendorTrackman:
		return true
	}
	return false
}

// Source is one registered data source. The registry is seeded with the
// three vendors plus a Manual entry; uploads against an unregistered name
// are rejected outright.
type Source struct {
	ID          int64
	Name        string
	Description string
}

func (s Source) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("data source name is required")
	}
	return nil
}

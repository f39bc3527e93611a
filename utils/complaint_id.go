package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// ComplaintIDPrefix is prepended to every public complaint code
	ComplaintIDPrefix = "TF"

	complaintIDWidth = 5
)

// ErrInvalidComplaintID is returned when a public complaint code cannot be decoded
var ErrInvalidComplaintID = errors.New("invalid complaint id")

// EncodeComplaintID turns a row id into its public code, e.g. 7 -> "TF00007".
// Numbers wider than five digits are kept in full.
func EncodeComplaintID(rowID uint) string {
	return fmt.Sprintf("%s%0*d", ComplaintIDPrefix, complaintIDWidth, rowID)
}

// DecodeComplaintID accepts either a public code ("TF00042") or a bare number ("42")
// and returns the row id it refers to.
func DecodeComplaintID(publicID string) (uint, error) {
	digits := strings.TrimPrefix(publicID, ComplaintIDPrefix)
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidComplaintID, publicID)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidComplaintID, publicID)
		}
	}

	n, err := strconv.ParseUint(digits, 10, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidComplaintID, publicID)
	}
	return uint(n), nil
}

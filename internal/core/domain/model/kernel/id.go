package kernel

import (
	"fmt"
	"math"
	"strconv"

	"orders/internal/pkg/errs"
)

// ID is a positive, store-assigned identifier. Orders, users and products are
// all keyed by one; the zero value means "not assigned yet".
type ID int64

// NewID validates v and returns it as an ID.
//
// Example:
//
//	userID, err := kernel.NewID(7)
//	if err != nil {
//	    return err
//	}
func NewID(v int64) (ID, error) {
	id := ID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseID parses the decimal form used in URLs and token claims.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not a number", s))
	}
	return NewID(v)
}

// Validate reports whether the ID was assigned.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", int64(id), int64(1), int64(math.MaxInt64))
	}
	return nil
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id ID) IsEqual(other ID) bool {
	return id == other
}

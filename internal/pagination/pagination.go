// Package pagination implements forward keyset pagination over post identities.
//
// A page is fetched with one extra "probe" row. When the probe comes back the
// page is full, the probe is cut off and its identity becomes the inclusive
// boundary of the next page. The outcome is a tagged union: NoMore or More.
package pagination

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

const (
	MinPageSize = 2
	MaxPageSize = 100
)

var ErrInvalidCursor = errors.New("invalid cursor")

type Pagination interface {
	HasNextPage() bool
	isPagination()
}

type NoMore struct{}

func (NoMore) HasNextPage() bool { return false }
func (NoMore) isPagination()     {}

// MarshalJSON leaves nextCursor out entirely; clients test for the key, not its value.
func (NoMore) MarshalJSON() ([]byte, error) {
	return []byte(`{"hasNextPage":false}`), nil
}

type More struct {
	NextCursor int64
}

func (More) HasNextPage() bool { return true }
func (More) isPagination()     {}

func (m More) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		HasNextPage bool  `json:"hasNextPage"`
		NextCursor  int64 `json:"nextCursor"`
	}{
		HasNextPage: true,
		NextCursor:  m.NextCursor,
	})
}

// NextCursor returns the boundary for the following page, if there is one.
func NextCursor(p Pagination) (int64, bool) {
	if more, ok := p.(More); ok {
		return more.NextCursor, true
	}
	return 0, false
}

// LimitPlusOne is the row count to request for a page of pageSize.
func LimitPlusOne(pageSize int) int { return pageSize + 1 }

// TrimProbe cuts a fetched slice down to pageSize rows. rows must have been
// fetched with LimitPlusOne(pageSize) in page order.
func TrimProbe[T any](rows []T, pageSize int, id func(T) int64) ([]T, Pagination) {
	if len(rows) <= pageSize {
		return rows, NoMore{}
	}
	probe := rows[pageSize]
	return rows[:pageSize], More{NextCursor: id(probe)}
}

// ParseCursor reads a cursor query value. Empty, zero and negative values mean
// "first page" and yield nil.
func ParseCursor(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	if n <= 0 {
		return nil, nil
	}
	return &n, nil
}

func ValidPageSize(size int) bool {
	return size >= MinPageSize && size <= MaxPageSize
}

package pagination

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(v int64) int64 { return v }

func TestTrimProbe(t *testing.T) {
	tests := []struct {
		name     string
		rows     []int64
		pageSize int
		wantRows []int64
		wantPage Pagination
	}{
		{
			name:     "empty",
			rows:     []int64{},
			pageSize: 3,
			wantRows: []int64{},
			wantPage: NoMore{},
		},
		{
			name:     "short page",
			rows:     []int64{9, 8},
			pageSize: 3,
			wantRows: []int64{9, 8},
			wantPage: NoMore{},
		},
		{
			name:     "exactly one page",
			rows:     []int64{9, 8, 7},
			pageSize: 3,
			wantRows: []int64{9, 8, 7},
			wantPage: NoMore{},
		},
		{
			name:     "probe present",
			rows:     []int64{9, 8, 7, 6},
			pageSize: 3,
			wantRows: []int64{9, 8, 7},
			wantPage: More{NextCursor: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotRows, gotPage := TrimProbe(tt.rows, tt.pageSize, identity)
			assert.Equal(t, tt.wantRows, gotRows)
			assert.Equal(t, tt.wantPage, gotPage)
			assert.Equal(t, tt.wantPage.HasNextPage(), gotPage.HasNextPage())
		})
	}
}

func TestLimitPlusOne(t *testing.T) {
	assert.Equal(t, 11, LimitPlusOne(10))
}

func TestPagination_MarshalJSON(t *testing.T) {
	t.Run("NoMore omits nextCursor", func(t *testing.T) {
		raw, err := json.Marshal(struct {
			Pagination Pagination `json:"pagination"`
		}{Pagination: NoMore{}})
		require.NoError(t, err)

		var body map[string]map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, false, body["pagination"]["hasNextPage"])
		_, present := body["pagination"]["nextCursor"]
		assert.False(t, present)
	})

	t.Run("More carries nextCursor", func(t *testing.T) {
		raw, err := json.Marshal(More{NextCursor: 42})
		require.NoError(t, err)
		assert.JSONEq(t, `{"hasNextPage":true,"nextCursor":42}`, string(raw))
	})
}

func TestNextCursor(t *testing.T) {
	cursor, ok := NextCursor(More{NextCursor: 5})
	assert.True(t, ok)
	assert.Equal(t, int64(5), cursor)

	_, ok = NextCursor(NoMore{})
	assert.False(t, ok)
}

func TestParseCursor(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *int64
		wantErr error
	}{
		{name: "absent", raw: "", want: nil},
		{name: "zero means first page", raw: "0", want: nil},
		{name: "positive", raw: "17", want: func() *int64 { v := int64(17); return &v }()},
		{name: "negative means first page", raw: "-1", want: nil},
		{name: "garbage", raw: "abc", wantErr: ErrInvalidCursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCursor(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidPageSize(t *testing.T) {
	assert.False(t, ValidPageSize(1))
	assert.True(t, ValidPageSize(2))
	assert.True(t, ValidPageSize(100))
	assert.False(t, ValidPageSize(101))
}

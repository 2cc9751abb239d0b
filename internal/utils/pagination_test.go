package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaginationFromQuery(t *testing.T) {
	tests := []struct {
		name         string
		pageStr      string
		pageSizeStr  string
		wantPage     int
		wantPageSize int
	}{
		{"defaults", "", "", 1, 20},
		{"explicit values", "3", "50", 3, 50},
		{"zero page falls back", "0", "10", 1, 10},
		{"negative page falls back", "-2", "10", 1, 10},
		{"oversized page size ignored", "1", "500", 1, 20},
		{"garbage input falls back", "abc", "xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := ParsePaginationFromQuery(tt.pageStr, tt.pageSizeStr)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}

func TestCalculatePaginationInfo(t *testing.T) {
	info := CalculatePaginationInfo(95, 2, 20)
	assert.Equal(t, 95, info.Total)
	assert.Equal(t, 5, info.TotalPages)
	assert.True(t, info.HasNext)
	assert.True(t, info.HasPrevious)

	empty := CalculatePaginationInfo(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrevious)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	tests := []struct {
		name  string
		page  int
		first int
		size  int
	}{
		{"first page", 1, 1, 10},
		{"second page", 2, 11, 10},
		{"partial last page", 3, 21, 5},
		{"past the end", 4, 0, 0},
		{"zero", 0, 0, 0},
		{"negative", -1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(tt.page, items)
			assert.Len(t, got, tt.size)
			if tt.size > 0 {
				assert.Equal(t, tt.first, got[0])
			}
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	got := Paginate[string](1, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

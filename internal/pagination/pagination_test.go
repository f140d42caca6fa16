package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateClampsZeroInputs(t *testing.T) {
	params := Paginate(0, 0)
	assert.Equal(t, 0, params.Skip)
	assert.Equal(t, 1, params.Take)
}

func TestPaginateClampsPage(t *testing.T) {
	params := Paginate(-3, 10)
	assert.Equal(t, 0, params.Skip)
	assert.Equal(t, 10, params.Take)
}

func TestPaginateClampsPageSize(t *testing.T) {
	params := Paginate(1, 10000)
	assert.Equal(t, MaxPageSize, params.Take)

	params = Paginate(1, -1)
	assert.Equal(t, 1, params.Take)
}

func TestPaginateSkipMath(t *testing.T) {
	tests := []struct {
		page     int
		pageSize int
		skip     int
	}{
		{1, 20, 0},
		{2, 20, 20},
		{3, 5, 10},
		{2, 1, 1},
	}
	for _, tt := range tests {
		params := Paginate(tt.page, tt.pageSize)
		assert.Equal(t, tt.skip, params.Skip, "page=%d pageSize=%d", tt.page, tt.pageSize)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 3, TotalPages(3, 1))
}

func TestNewPage(t *testing.T) {
	params := Paginate(2, 1)
	page := NewPage([]string{"b"}, 3, 2, params)

	assert.Equal(t, []string{"b"}, page.Items)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 1, page.PageSize)
	assert.Equal(t, 3, page.TotalPages)
}

func TestNewPageNilItems(t *testing.T) {
	page := NewPage[string](nil, 0, 1, Paginate(1, 20))
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

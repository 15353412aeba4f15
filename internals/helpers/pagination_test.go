package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(95, 1, 10)
	assert.Equal(t, int64(95), p.Total)
	assert.Equal(t, 10, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = BuildPaginationFromPage(95, 10, 10)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	// Empty result still reports one page.
	p = BuildPaginationFromPage(0, 1, 10)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)

	// Bogus inputs fall back to sane defaults.
	p = BuildPaginationFromPage(5, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}

package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	helper "moonsys_backend/internals/helpers"
)

func TestParseTagIDs(t *testing.T) {
	assert.Equal(t, []uint{1, 2, 3}, parseTagIDs("1,2,3"))
	assert.Equal(t, []uint{4, 7}, parseTagIDs(" 4 , x, 7, 0, -2 "))
	assert.Nil(t, parseTagIDs(""))
	assert.Nil(t, parseTagIDs(" , , "))
}

func TestListPaginationFromCount(t *testing.T) {
	// The list handler feeds the gorm count (int64) straight into the
	// pagination builder.
	var total int64 = 25
	p := helper.BuildPaginationFromPage(total, 2, 10)
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

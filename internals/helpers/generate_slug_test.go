package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "hello-world", GenerateSlug("Hello World"))
	assert.Equal(t, "e-commerce-platform", GenerateSlug("E-Commerce Platform!"))
	assert.Equal(t, "a-b-c", GenerateSlug("  a  ---  b __ c  "))
	assert.Equal(t, "", GenerateSlug("!!!"))
	assert.Equal(t, "moonsys-2024", GenerateSlug("Moonsys 2024"))
}

func TestCutToLen(t *testing.T) {
	assert.Equal(t, "abc", cutToLen("abc", 10))
	assert.Equal(t, "abcde", cutToLen("abcdefgh", 5))
	// A cut never leaves a trailing dash.
	assert.Equal(t, "ab", cutToLen("ab-cdef", 3))
}

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeStrings(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"a", "b"}, DedupeStrings([]string{"a", "b", "a", "a"}))
	var empty []string
	assert.Equal(empty, DedupeStrings([]string{}))
}

func TestExtractTextURLs(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		s   string
		out []string
	}{
		{
			s:   "great salary, see bit.ly/jobs123 for details",
			out: []string{"bit.ly/jobs123"},
		},
		{
			s:   "apply at https://careers.example.com/frontend and www.example.cz",
			out: []string{"https://careers.example.com/frontend", "www.example.cz"},
		},
	}

	for _, fix := range fixtures {
		assert.Equal(fix.out, ExtractTextURLs(fix.s))
	}
}

func TestHashOfString(t *testing.T) {
	assert := assert.New(t)

	// hashing function should be consistent over time
	assert.Equal(HashOfString("dummy-value"), HashOfString("dummy-value"))
	assert.NotEqual(HashOfString("dummy-value"), HashOfString("other-value"))
	assert.Len(HashOfString("dummy-value"), 16)
}

package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeText(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		text string
		out  []string
	}{
		{text: "", out: []string{}},
		{text: "Frontend Developer, Praha!", out: []string{"frontend", "developer", "praha"}},
		{text: "Plzeň", out: []string{"plzen"}},
		{text: "  foo1;bar2,baz3...", out: []string{"foo1", "bar2", "baz3"}},
	}

	for _, fix := range fixtures {
		assert.Equal(fix.out, TokenizeText(fix.text))
	}
}

func TestJaccardSimilarity(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(1.0, JaccardSimilarity("", ""))
	assert.Equal(1.0, JaccardSimilarity("senior go developer", "Senior Go Developer!"))
	assert.Equal(0.0, JaccardSimilarity("backend engineer", "warehouse operator"))

	// three of four distinct tokens shared
	sim := JaccardSimilarity("senior go developer prague", "senior go developer brno")
	assert.InDelta(0.6, sim, 0.01)
}

func TestSlugify(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("makemoneyfast", Slugify("Make Money FAST!!!"))
	assert.Equal("", Slugify("$$$ ..."))
}

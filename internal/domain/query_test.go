package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_NoSuffix(t *testing.T) {
	for _, input := range []string{"london", "new york", "", "san+francisco bay", "köln"} {
		q := Parse(input)
		assert.Equal(t, input, q.Name, "input %q", input)
		assert.Equal(t, DetailNone, q.Detail, "input %q", input)
	}
}

func TestParse_SinglePlus(t *testing.T) {
	q := Parse("london+")
	assert.Equal(t, "london", q.Name)
	assert.Equal(t, DetailPartial, q.Detail)
}

func TestParse_DoublePlus(t *testing.T) {
	q := Parse("london++")
	assert.Equal(t, "london", q.Name)
	assert.Equal(t, DetailFull, q.Detail)
}

func TestParse_OnlyLastTwoCharsSignificant(t *testing.T) {
	// Extra pluses belong to the base name under the "++" rule.
	q := Parse("a+++")
	assert.Equal(t, "a+", q.Name)
	assert.Equal(t, DetailFull, q.Detail)

	q = Parse("++++")
	assert.Equal(t, "++", q.Name)
	assert.Equal(t, DetailFull, q.Detail)
}

func TestParse_BareSuffixes(t *testing.T) {
	q := Parse("+")
	assert.Equal(t, "", q.Name)
	assert.Equal(t, DetailPartial, q.Detail)

	q = Parse("++")
	assert.Equal(t, "", q.Name)
	assert.Equal(t, DetailFull, q.Detail)
}

func TestParse_RoundTrip(t *testing.T) {
	suffixes := map[Detail]string{
		DetailNone:    "",
		DetailPartial: "+",
		DetailFull:    "++",
	}
	for _, base := range []string{"tokyo", "rio de janeiro", ""} {
		for detail, suffix := range suffixes {
			input := base + suffix
			q := Parse(input)
			assert.Equal(t, detail, q.Detail, "input %q", input)
			assert.Equal(t, input, q.Name+suffixes[q.Detail], "input %q", input)
		}
	}
}

func TestDetail_String(t *testing.T) {
	assert.Equal(t, "none", DetailNone.String())
	assert.Equal(t, "partial", DetailPartial.String())
	assert.Equal(t, "full", DetailFull.String())
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovie_DisplayTitle(t *testing.T) {
	assert.Equal(t, "Titanic (1997)", Movie{Title: "Titanic", Year: 1997}.DisplayTitle())
	assert.Equal(t, "Titanic", Movie{Title: "Titanic"}.DisplayTitle())
}

func TestCategory_IsValid(t *testing.T) {
	for _, c := range AllCategories() {
		assert.True(t, c.IsValid(), c)
	}
	assert.False(t, Category("trivia").IsValid())
	assert.False(t, Category("").IsValid())
	assert.Len(t, AllCategories(), 10)
}

func TestCandidate_Empty(t *testing.T) {
	assert.True(t, Candidate{}.Empty())
	assert.True(t, Candidate{Text: "x"}.Empty())
	assert.True(t, Candidate{Key: "oscars"}.Empty())
	assert.False(t, Candidate{Text: "x", Key: "oscars"}.Empty())
}

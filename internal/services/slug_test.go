package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobSlug(t *testing.T) {
	slug := JobSlug("Senior Backend Engineer (Go)")
	assert.True(t, strings.HasPrefix(slug, "senior-backend-engineer-go-"), slug)
	assert.NotContains(t, slug, "--")
	assert.Equal(t, strings.ToLower(slug), slug)
}

func TestJobSlugUnique(t *testing.T) {
	a := JobSlug("Designer")
	b := JobSlug("Designer")
	assert.NotEqual(t, a, b)
}

func TestJobSlugEmptyTitle(t *testing.T) {
	assert.NotEmpty(t, JobSlug("!!!"))
}

package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommunitySize(t *testing.T) {
	assert.Equal(t, 1000, CommunitySize(0))
	assert.Equal(t, 1000, CommunitySize(3))
	assert.Equal(t, 1001, CommunitySize(4))
	assert.Equal(t, 1030, CommunitySize(100))
	assert.Equal(t, 1000, CommunitySize(-5))
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	at := time.Date(2024, 5, 1, 0, 30, 0, 0, loc)

	got := StartOfDay(at)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestCategoryValid(t *testing.T) {
	assert.Len(t, Categories, 20)
	assert.True(t, CategoryBusinessOpportunity.Valid())
	assert.False(t, Category("lottery").Valid())
	assert.False(t, Category("").Valid())
}

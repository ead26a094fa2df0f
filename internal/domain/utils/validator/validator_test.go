package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Badsnus/golf-stats/internal/domain/entity"
)

func TestName(t *testing.T) {
	assert.True(t, Name("Alice"))
	assert.True(t, Name("Sunnyvale GC"))
	assert.False(t, Name(""))
	assert.False(t, Name("   "))
	assert.False(t, Name(strings.Repeat("a", maxNameLength+1)))
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("alice@example.com"))
	assert.False(t, Email("alice"))
	assert.False(t, Email("Alice <alice@example.com>"))
	assert.False(t, Email(""))
}

func TestDatePlayed(t *testing.T) {
	assert.True(t, DatePlayed(entity.MustDate("2024-05-01")))
	assert.False(t, DatePlayed(entity.Date{}))
}

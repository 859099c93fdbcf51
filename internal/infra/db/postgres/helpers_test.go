package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicate(t *testing.T) {
	dup := &pq.Error{Code: uniqueViolation, Constraint: "scam_reports_phone_number_key"}

	assert.True(t, isDuplicate(dup))
	assert.True(t, isDuplicate(fmt.Errorf("insert: %w", dup)))
	assert.False(t, isDuplicate(&pq.Error{Code: "23503"}))
	assert.False(t, isDuplicate(errors.New("boom")))
}

func TestEscapeLikePattern(t *testing.T) {
	assert.Equal(t, `50\%\_off`, escapeLikePattern(`50%_off`))
}

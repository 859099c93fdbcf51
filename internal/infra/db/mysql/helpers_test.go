package mysql

import (
	"errors"
	"fmt"
	"testing"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicate(t *testing.T) {
	dup := &mysqldrv.MySQLError{Number: erDupEntry, Message: "Duplicate entry '5551234567' for key 'uq_scam_reports_phone'"}

	assert.True(t, isDuplicate(dup))
	assert.True(t, isDuplicate(fmt.Errorf("insert: %w", dup)))
	assert.False(t, isDuplicate(&mysqldrv.MySQLError{Number: 1146}))
	assert.False(t, isDuplicate(errors.New("boom")))
	assert.False(t, isDuplicate(nil))
}

func TestNullStringRoundTrip(t *testing.T) {
	type kind string
	v := kind("voicemail")

	ns := nullString(&v)
	assert.True(t, ns.Valid)
	assert.Equal(t, &v, fromNull[kind](ns))

	assert.False(t, nullString[kind](nil).Valid)
	assert.Nil(t, fromNull[kind](nullString[kind](nil)))
}

func TestEscapeLikePattern(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLikePattern(`a%b_c\d`))
}

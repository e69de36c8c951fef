package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookTypeLoanDuration(t *testing.T) {
	assert.Equal(t, 10*24*time.Hour, FictionLong.LoanDuration())
	assert.Equal(t, 5*24*time.Hour, FictionMedium.LoanDuration())
	assert.Equal(t, 2*24*time.Hour, FictionShort.LoanDuration())
	assert.Equal(t, time.Duration(0), BookType(0).LoanDuration())
}

func TestBookTypeValid(t *testing.T) {
	assert.True(t, FictionLong.Valid())
	assert.True(t, FictionMedium.Valid())
	assert.True(t, FictionShort.Valid())
	assert.False(t, BookType(0).Valid())
	assert.False(t, BookType(4).Valid())
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommaInt(t *testing.T) {
	assert.Equal(t, "61,593", CommaInt(61593))
	assert.Equal(t, "500", CommaInt(500))
	assert.Equal(t, "1,000,000", CommaInt(1000000))
	assert.Equal(t, "-20,000", CommaInt(-20000))
	assert.Equal(t, "0", CommaInt(0))
}

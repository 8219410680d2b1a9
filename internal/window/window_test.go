package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenInvalidSize(t *testing.T) {
	_, err := Open(Config{Width: 0, Height: 10})
	assert.EqualError(t, err, "invalid window size 0x10")
}

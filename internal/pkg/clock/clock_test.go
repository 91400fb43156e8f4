package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeClocker(t *testing.T) {
	c := New()

	start := c.Now()
	time.Sleep(time.Millisecond)

	assert.GreaterOrEqual(t, c.Since(start), time.Millisecond)
	assert.False(t, c.Now().Before(start))
}

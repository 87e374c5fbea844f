package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual(t *testing.T) {
	c := NewManual(5)
	assert.Equal(t, uint64(5), c.Now())

	c.Advance(10)
	assert.Equal(t, uint64(15), c.Now())

	c.Set(20)
	assert.Equal(t, uint64(20), c.Now())

	// regressions are ignored
	c.Set(3)
	assert.Equal(t, uint64(20), c.Now())
}

func TestInterval(t *testing.T) {
	genesis := time.Now().Add(-10 * time.Second)
	c := NewInterval(genesis, time.Second)

	height := c.Now()
	assert.GreaterOrEqual(t, height, uint64(10))
	assert.Less(t, height, uint64(12))

	// heights never go backwards
	assert.GreaterOrEqual(t, c.Now(), height)
}

func TestInterval_GenesisInFuture(t *testing.T) {
	c := NewInterval(time.Now().Add(time.Hour), time.Second)
	assert.Equal(t, uint64(0), c.Now())
}

package mocks_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/pegsolitaire-go/internal/dependencies/mocks"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := mocks.NewMockClock(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start, c.Now())

	c.Advance(time.Hour)
	assert.Equal(t, start.Add(time.Hour), c.Now())

	c.SetStep(time.Second)
	assert.Equal(t, start.Add(time.Hour), c.Now())
	assert.Equal(t, start.Add(time.Hour+time.Second), c.Now())
}

func TestMockRandom(t *testing.T) {
	r := mocks.NewMockRandom()
	r.QueueString("token", "ID")
	r.QueueIntn(4)

	assert.Equal(t, "token", r.String(32, "abc"))
	assert.Equal(t, "ID", r.String(6, "abc"))
	assert.Empty(t, r.String(6, "abc"))

	assert.Equal(t, 4, r.Intn(10))
	assert.Equal(t, 0, r.Intn(10))
	assert.Equal(t, []int{10, 10}, r.IntnCalls)

	r.Reset()
	assert.Empty(t, r.IntnCalls)
}

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	ref := time.Date(2024, 6, 5, 9, 30, 0, 0, time.UTC)

	c := Fixed(ref)

	assert.Equal(t, ref, c.Now())
	assert.Equal(t, c.Now(), c.Now())
}

func TestReal_Location(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)

	now := Real{Location: loc}.Now()

	assert.Equal(t, loc, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Minute)
}

func TestFunc(t *testing.T) {
	calls := 0
	c := Func(func() time.Time {
		calls++
		return time.Unix(0, 0)
	})

	c.Now()
	c.Now()

	assert.Equal(t, 2, calls)
}

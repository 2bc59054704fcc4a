package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	c := Fixed{T: at}
	assert.Equal(t, at, c.Now())
	assert.Equal(t, c.Now(), c.Now())
}

func TestSystemClockUsesLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	now := NewSystemClock(loc).Now()
	assert.Equal(t, loc, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Minute)
}

func TestNewSystemClockForZone_UnknownFallsBackToUTC(t *testing.T) {
	now := NewSystemClockForZone("Nowhere/Invalid").Now()
	assert.Equal(t, time.UTC, now.Location())
}

package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerReportsAtInterval(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewTracker(&buf, 100, 10)

	tracker.Start()
	tracker.Update(5)
	assert.Empty(t, buf.String(), "should not report below interval")

	tracker.Update(10)
	assert.Contains(t, buf.String(), "10/100")
	assert.Contains(t, buf.String(), "10.0%")
}

func TestTrackerIncrement(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewTracker(&buf, 20, 5)

	tracker.Start()
	for i := 0; i < 20; i++ {
		tracker.Increment(1)
	}
	assert.Contains(t, buf.String(), "20/20")
}

func TestTrackerFinish(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewTracker(&buf, 50, 100)

	tracker.Start()
	tracker.Update(25)
	tracker.Finish()

	assert.Contains(t, buf.String(), "50/50")
	assert.Contains(t, buf.String(), "100.0%")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestTrackerCapsAtTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewTracker(&buf, 10, 1)

	tracker.Start()
	tracker.Update(99)
	assert.Contains(t, buf.String(), "10/10")
}

func TestTrackerIgnoresUpdatesBeforeStart(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewTracker(&buf, 10, 1)

	tracker.Update(5)
	tracker.Increment(5)
	tracker.Finish()
	assert.Empty(t, buf.String())
}

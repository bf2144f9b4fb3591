package obs

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errMissing = errors.New("missing")

func captureLogs(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	clock := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	prevNow, prevLogf := now, logf
	now = func() time.Time {
		clock = clock.Add(15 * time.Millisecond)
		return clock
	}
	logf = func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}
	t.Cleanup(func() { now, logf = prevNow, prevLogf })
	return &lines
}

func TestTimeOutcomes(t *testing.T) {
	lines := captureLogs(t)
	ctx := WithRequestID(context.Background(), "abc")

	run := func(err error) {
		defer Time(ctx, "store.get", errMissing)(&err)
	}
	run(nil)
	run(fmt.Errorf("load: %w", errMissing))
	run(errors.New("connection refused"))

	assert.Equal(t, []string{
		"req_id=abc op=store.get dur=15ms outcome=ok",
		"req_id=abc op=store.get dur=15ms outcome=miss",
		"req_id=abc op=store.get dur=15ms outcome=error err=connection refused",
	}, *lines)
}

func TestTimeWithoutRequestID(t *testing.T) {
	lines := captureLogs(t)
	func() {
		defer Time(context.Background(), "cache.redis.set")(nil)
	}()
	assert.Equal(t, []string{"req_id= op=cache.redis.set dur=15ms outcome=ok"}, *lines)
	assert.Equal(t, "", RequestID(context.Background()))
}

package obs

import (
	"context"
	"errors"
	"log"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Swapped in tests.
var (
	now  = time.Now
	logf = log.Printf
)

// WithRequestID tags ctx so Time can correlate log lines with a request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs how long op took once the returned func runs. Use it deferred:
//
//	defer obs.Time(ctx, "store.get", store.ErrNotFound)(&err)
//
// Errors matching one of expected are logged as outcome=miss rather than
// outcome=error, so a lookup of an unknown scenario does not read as a fault.
func Time(ctx context.Context, op string, expected ...error) func(errp *error) {
	start := now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		ms := now().Sub(start).Milliseconds()

		var err error
		if errp != nil {
			err = *errp
		}
		switch outcome(err, expected) {
		case "error":
			logf("req_id=%s op=%s dur=%dms outcome=error err=%v", reqID, op, ms, err)
		case "miss":
			logf("req_id=%s op=%s dur=%dms outcome=miss", reqID, op, ms)
		default:
			logf("req_id=%s op=%s dur=%dms outcome=ok", reqID, op, ms)
		}
	}
}

func outcome(err error, expected []error) string {
	if err == nil {
		return "ok"
	}
	for _, e := range expected {
		if errors.Is(err, e) {
			return "miss"
		}
	}
	return "error"
}

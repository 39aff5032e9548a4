package debugger

import (
	"context"
	stderr "errors"

	"github.com/uber/dbgbroker/src/dbgbroker/entity"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/errors"
)

// validate rejects requests the broker cannot serve at all. It runs before the bypass check.
func validate(req *entity.SessionRequest) error {
	if req.Request != entity.RequestLaunch {
		return &errors.UnsupportedRequestKindError{Request: req.Request}
	}
	if req.DebugType == entity.DebugTypeUnset {
		return &errors.MissingDebugTypeError{}
	}
	return nil
}

// errorKind names the metric tag for a failed resolution.
func errorKind(err error) string {
	switch {
	case errors.IsBadRequest(err):
		return "bad_request"
	case stderr.Is(err, context.Canceled), stderr.Is(err, context.DeadlineExceeded):
		return "canceled"
	}

	var notReady *errors.DebuggerNotReadyError
	if stderr.As(err, &notReady) {
		return "not_ready"
	}
	var version *errors.UnsupportedVersionError
	if stderr.As(err, &version) {
		return "unsupported_version"
	}
	return "launch"
}

func (c *controller) countError(err error) {
	c.stats.Tagged(map[string]string{_tagKind: errorKind(err)}).Counter(_metricErrors).Inc(1)
}

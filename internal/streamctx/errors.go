// internal/streamctx/errors.go
package streamctx

import "errors"

// Errors returned by Context/Reader operations.
var (
	// ErrNeedMoreData is returned when the buffer handed to Parse does
	// not hold a complete frame header or body yet, including a frame
	// whose header parsed but whose declared length runs past the end of
	// the buffer. NeedMoreData means "call Parse again once more bytes
	// are appended", never "this frame is bad".
	ErrNeedMoreData = errors.New("streamctx: need more data")

	// ErrTruncated names a frame body that is cut short. Reader.Parse
	// does not return it: a frame whose declared length runs past the
	// end of the supplied buffer is reported as ErrNeedMoreData.
	ErrTruncated = errors.New("streamctx: frame body truncated")

	// ErrStopped is returned by Parse once a Reader has been stopped;
	// no further callbacks fire.
	ErrStopped = errors.New("streamctx: reader stopped")

	// ErrAmbiguousFraming is returned by SetRaw when the Context has
	// already committed to ADTS framing from a prior Parse call.
	ErrAmbiguousFraming = errors.New("streamctx: framing already determined")
)

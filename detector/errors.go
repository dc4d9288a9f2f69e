package detector

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the shared kind for every validation failure in
// this package. Every more specific sentinel below wraps it via %w, so
// errors.Is(err, ErrInvalidArgument) is true regardless of which
// constructor or scoring call produced it, while callers that need the
// precise cause can still match the specific sentinel. This departs
// from the plain-sentinel-only convention used elsewhere in the module
// (sentinels are ordinarily never wrapped at definition site), since
// this package's validation failures are naturally one shared
// "InvalidArgument" kind spanning several distinct causes.
var ErrInvalidArgument = errors.New("detector: invalid argument")

// ErrBadDim indicates rows, buckets, or D were not positive.
var ErrBadDim = fmt.Errorf("%w: rows, buckets, and d must be > 0", ErrInvalidArgument)

// ErrBadDecay indicates a decay factor outside (0,1].
var ErrBadDecay = fmt.Errorf("%w: decay must be in (0,1]", ErrInvalidArgument)

// ErrUnknownMethod indicates a Method value outside {MethodNormal, MethodTopK}.
var ErrUnknownMethod = fmt.Errorf("%w: unknown method", ErrInvalidArgument)

// ErrMissingK indicates MethodTopK was requested without a k argument.
var ErrMissingK = fmt.Errorf("%w: top-k method requires k", ErrInvalidArgument)

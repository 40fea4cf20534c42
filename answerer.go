package askbook

import "context"

// Answerer is a strategy pattern interface for the remote answering service.
//
// Ask issues exactly one exchange for the given query and reports the
// outcome as a [Result]. Transport and protocol failures are Result variants
// rather than error returns because every outcome, failures included,
// becomes a transcript entry; callers never branch on an error.
type Answerer interface {
	Ask(ctx context.Context, query string) Result
}

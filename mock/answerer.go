// Package mock provides test doubles for askbook interfaces using function
// fields.
package mock

import (
	"context"

	"github.com/hnasir/askbook"
)

// Interface compliance check.
var _ askbook.Answerer = (*Answerer)(nil)

// Answerer is a test double for askbook.Answerer.
// Set AskFn before calling Ask.
type Answerer struct {
	AskFn func(ctx context.Context, query string) askbook.Result
}

// Ask delegates to AskFn.
func (a *Answerer) Ask(ctx context.Context, query string) askbook.Result {
	return a.AskFn(ctx, query)
}

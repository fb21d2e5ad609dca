package cli

import (
	"context"

	"github.com/wizzomafizzo/tasksave/internal/gh"
)

// BodyFetcher looks up the description of a pull request. gh.Runner is the
// production implementation.
type BodyFetcher interface {
	PRBody(ctx context.Context, url string) gh.Result
}

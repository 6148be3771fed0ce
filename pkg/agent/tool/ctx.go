package tool

import "context"

// UpdateFunc receives progress messages posted while a tool runs. Each
// receptionist surface installs its own: the ask command prints the messages,
// the HTTP controller writes them to the request log.
type UpdateFunc func(ctx context.Context, message string)

type contextKey struct{}

// WithUpdate returns a context carrying fn as the progress sink for tools
// dispatched under it.
func WithUpdate(ctx context.Context, fn UpdateFunc) context.Context {
	return context.WithValue(ctx, contextKey{}, fn)
}

// Update posts a progress message to the sink installed by WithUpdate.
// Without a sink the call is a no-op.
func Update(ctx context.Context, message string) {
	if fn, ok := ctx.Value(contextKey{}).(UpdateFunc); ok {
		fn(ctx, message)
	}
}

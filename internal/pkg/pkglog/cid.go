package pkglog

import "context"

type correlationIDKey struct{}

// GetCorrelationID returns the correlation ID stored in the context, or an
// empty string when the request never passed through the correlation middleware.
func GetCorrelationID(ctx context.Context) string {
	cid, _ := correlationID(ctx)
	return cid
}

// SetCorrelationID stores a correlation ID into the context.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}

func correlationID(ctx context.Context) (string, bool) {
	cid, ok := ctx.Value(correlationIDKey{}).(string)
	return cid, ok && cid != ""
}

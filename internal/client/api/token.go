package api

import "context"

// TokenSource yields the current bearer token, "" when there is none.
// It is consulted on every request.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

type tokenKey struct{}

// WithToken returns a context whose requests carry token instead of the
// client's TokenSource. An empty token suppresses the header.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(tokenKey{}).(string)
	return tok, ok
}

// token picks the bearer for one call: a context token wins over source.
func token(ctx context.Context, source TokenSource) string {
	if tok, ok := tokenFromContext(ctx); ok {
		return tok
	}
	if source == nil {
		return ""
	}
	return source.Token()
}

package guard

import (
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Authenticator is the part of a session the guard looks at.
type Authenticator interface {
	Authenticated() bool
}

// Decision is the outcome of resolving a navigation.
type Decision struct {
	View       View
	Path       string
	Params     map[string]string
	Title      string
	Redirected bool
}

// Guard resolves paths against the route tree. It holds no session state;
// the caller passes the current session on every Resolve.
type Guard struct {
	mux    *chi.Mux
	routes map[string]Route
}

func New() *Guard {
	g := &Guard{mux: chi.NewRouter(), routes: make(map[string]Route, len(Routes))}
	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for _, r := range Routes {
		g.mux.Get(r.Pattern, noop)
		g.routes[r.Pattern] = r
	}
	return g
}

// Resolve decides what to render for target given sess. Without an
// authenticated session every path except the login route lands on login.
// With one, unknown paths resolve to the not-found view.
func (g *Guard) Resolve(sess Authenticator, target string) Decision {
	p := clean(target)
	authed := sess != nil && sess.Authenticated()

	rctx := chi.NewRouteContext()
	if !g.mux.Match(rctx, http.MethodGet, p) {
		if !authed {
			return g.login(true)
		}
		return Decision{View: ViewNotFound, Path: p, Title: "Not found"}
	}

	route := g.routes[rctx.RoutePattern()]
	if route.Private && !authed {
		return g.login(true)
	}

	d := Decision{View: route.View, Path: p, Title: route.Title}
	if keys := rctx.URLParams.Keys; len(keys) > 0 {
		d.Params = make(map[string]string, len(keys))
		for i, k := range keys {
			d.Params[k] = rctx.URLParams.Values[i]
		}
	}
	return d
}

func (g *Guard) login(redirected bool) Decision {
	r := g.routes[LoginPath]
	return Decision{View: r.View, Path: LoginPath, Title: r.Title, Redirected: redirected}
}

func clean(p string) string {
	p = strings.TrimSpace(p)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

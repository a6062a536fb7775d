package guard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workwise/internal/domain/auth"
)

// DefaultMaxHops bounds redirect chains.
const DefaultMaxHops = 4

var ErrRedirectLoop = errors.New("too many redirects")

// Params holds the {name} segments of a matched pattern.
type Params map[string]string

// View renders one screen.
type View func(ctx context.Context, params Params) error

type route struct {
	segments []string
	view     View
	// guards holds the allowed set of each enclosing group, outermost first.
	guards [][]auth.Role
}

// Router maps paths to views and runs the guard on every navigation.
type Router struct {
	Sessions Loader
	MaxHops  int
	routes   []route
	notFound View
}

func NewRouter(sessions Loader) *Router {
	return &Router{Sessions: sessions, MaxHops: DefaultMaxHops}
}

// Group is a set of protected routes sharing an allowed role set.
type Group struct {
	router *Router
	guards [][]auth.Role
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// Public registers a route that renders without a session.
func (r *Router) Public(pattern string, view View) {
	r.routes = append(r.routes, route{segments: splitPath(pattern), view: view})
}

// Protected opens a group reachable only by the allowed roles; no roles means
// any authenticated user.
func (r *Router) Protected(allowed ...auth.Role) *Group {
	return &Group{router: r, guards: [][]auth.Role{allowed}}
}

// NotFound sets the catch-all view.
func (r *Router) NotFound(view View) {
	r.notFound = view
}

// Group nests a further restriction inside g.
func (g *Group) Group(allowed ...auth.Role) *Group {
	guards := make([][]auth.Role, 0, len(g.guards)+1)
	guards = append(guards, g.guards...)
	return &Group{router: g.router, guards: append(guards, allowed)}
}

func (g *Group) Handle(pattern string, view View) {
	g.router.routes = append(g.router.routes, route{segments: splitPath(pattern), view: view, guards: g.guards})
}

func (rt route) match(parts []string) (Params, bool) {
	if len(parts) != len(rt.segments) {
		return nil, false
	}
	params := Params{}
	for i, seg := range rt.segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if parts[i] == "" {
				return nil, false
			}
			params[seg[1:len(seg)-1]] = parts[i]
			continue
		}
		if seg != parts[i] {
			return nil, false
		}
	}
	return params, true
}

// Resolution is the outcome of resolving a path.
type Resolution struct {
	Path     string
	Params   Params
	View     View
	NotFound bool
}

// Resolve follows guard redirects from path until a view may render.
func (r *Router) Resolve(path string) (Resolution, error) {
	hops := r.MaxHops
	if hops <= 0 {
		hops = DefaultMaxHops
	}
	for range hops + 1 {
		parts := splitPath(path)
		matched := false
		var redirect string
		for _, rt := range r.routes {
			params, ok := rt.match(parts)
			if !ok {
				continue
			}
			matched = true
			for _, allowed := range rt.guards {
				if d := Check(r.Sessions, allowed); d.Outcome != Render {
					redirect = d.Target
					break
				}
			}
			if redirect == "" {
				return Resolution{Path: path, Params: params, View: rt.view}, nil
			}
			break
		}
		if !matched {
			return Resolution{Path: path, Params: Params{}, View: r.notFound, NotFound: true}, nil
		}
		path = redirect
	}
	return Resolution{}, fmt.Errorf("%w: last target %s", ErrRedirectLoop, path)
}

// Navigate resolves path and renders the resulting view. It returns the path
// that actually rendered.
func (r *Router) Navigate(ctx context.Context, path string) (string, error) {
	res, err := r.Resolve(path)
	if err != nil {
		return "", err
	}
	if res.View == nil {
		return res.Path, nil
	}
	return res.Path, res.View(ctx, res.Params)
}

package mux

import (
	"net/http"

	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/router"
	"github.com/xy-planning-network/waypoint/tree"
	"github.com/xy-planning-network/waypoint/urlpath"
)

// rootKey names the node at the top of every Mux's tree;
// it never appears in a request path.
const rootKey = "/"

// A Route maps a path to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Mux routes requests for resources through a waypoint routing tree.
type Mux struct {
	Env           string
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	notFound      http.Handler
	prefix        string
	root          *tree.Node
}

// New constructs a *Mux for the given environment.
// A nil logReq leaves request logging off.
//
// Requests matching no registered Route are answered by
// [http.NotFound] until [*Mux.HandleNotFound] replaces it.
func New(env string, logReq middleware.Adapter) *Mux {
	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	root, err := tree.NewNode(rootKey)
	if err != nil {
		// rootKey is a compile-time constant; NewNode cannot reject it
		panic(err)
	}

	return &Mux{
		Env:      env,
		logReq:   logReq,
		notFound: http.NotFoundHandler(),
		root:     root,
	}
}

// Handle applies the [Route] to the [*Mux].
func (m *Mux) Handle(route Route) error {
	return m.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (m *Mux) HandleNotFound(handler http.HandlerFunc) {
	m.notFound = middleware.Chain(
		middleware.ReportPanic(m.Env)(handler),
		m.logReq,
	)
}

// HandleRoutes registers the set of Routes on the Mux
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
//
// Registering a Route under an already registered path replaces the
// previous handler.
func (m *Mux) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) error {
	for _, route := range routes {
		mws := make([]middleware.Adapter, 0, len(m.everyReqStack)+len(middlewares)+len(route.Middlewares))
		mws = append(mws, m.everyReqStack...)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)
		handler := middleware.Chain(middleware.ReportPanic(m.Env)(route.Handler), mws...)

		node, err := m.grow(urlpath.New(m.prefix + "/" + route.Path))
		if err != nil {
			return err
		}

		node.SetHandler(func(args ...any) (any, error) {
			handler.ServeHTTP(args[0].(http.ResponseWriter), args[1].(*http.Request))
			return nil, nil
		})
	}

	return nil
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Mux] will apply to every Route registered after this call.
func (m *Mux) OnEveryRequest(middlewares ...middleware.Adapter) {
	m.everyReqStack = append(m.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
//
// net/http serves requests concurrently, so the lookup walks the tree
// without touching any state shared between requests.
func (m *Mux) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	node, err := m.find(urlpath.New(req.URL.Path))
	if err != nil {
		m.notFound.ServeHTTP(w, req)
		return
	}

	// matched handlers receive the writer and request as Execute args
	if _, err := node.Execute(w, req); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Subrouter constructs a [*Mux] that registers Routes under the prefix.
//
// e.g., m.Subrouter("/api/v1") registers Routes for endpoints like /api/v1/users
func (m *Mux) Subrouter(prefix string) *Mux {
	// snapshot the stack so parent and subrouter appends stay independent
	stack := make([]middleware.Adapter, len(m.everyReqStack))
	copy(stack, m.everyReqStack)

	return &Mux{
		Env:           m.Env,
		everyReqStack: stack,
		logReq:        m.logReq,
		notFound:      m.notFound,
		prefix:        m.prefix + "/" + prefix,
		root:          m.root,
	}
}

// find descends from the root by the cursor's segments and returns the
// matched, handler-bearing node.
func (m *Mux) find(c *urlpath.Cursor) (*tree.Node, error) {
	node := m.root
	for c.HasNext() {
		seg, _ := c.Next()
		child, ok := node.Child(seg)
		if !ok {
			return nil, &router.RouteError{Path: c.String(), Err: router.ErrRouteNotFound}
		}

		node = child
	}

	if node.Handler() == nil {
		return nil, &router.RouteError{Path: c.String(), Err: router.ErrInvalidRoute}
	}

	return node, nil
}

// grow descends from the root by the cursor's segments,
// creating any missing nodes, and returns the final node.
func (m *Mux) grow(c *urlpath.Cursor) (*tree.Node, error) {
	node := m.root
	for c.HasNext() {
		seg, _ := c.Next()
		child, ok := node.Child(seg)
		if !ok {
			var err error
			child, err = tree.NewNode(seg, tree.WithParent(node))
			if err != nil {
				return nil, err
			}
		}

		node = child
	}

	return node, nil
}

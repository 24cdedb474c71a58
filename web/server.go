// Package web serves the dialog registry to a browser. Panels are drawn by
// an embedded page and gestures come back over a websocket.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andareed/winman/logging"
	"github.com/andareed/winman/registry"
)

//go:embed static/index.html
var static embed.FS

// Server exposes one registry over HTTP and websockets. All registry
// access happens under mu, so the server behaves like a single event loop.
type Server struct {
	mu  sync.Mutex
	reg *registry.Registry[string]

	hub      *hub
	metrics  *metrics
	promReg  *prometheus.Registry
	upgrader websocket.Upgrader
	router   chi.Router
}

// New builds a server over reg. Metric names are prefixed with namespace.
func New(reg *registry.Registry[string], namespace string) *Server {
	promReg := prometheus.NewRegistry()
	m := newMetrics(promReg, namespace)

	s := &Server{
		reg:     reg,
		hub:     newHub(m),
		metrics: m,
		promReg: promReg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	m.setDialogs(reg.Len(), len(reg.Visible()))
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/", s.handleIndex)
	r.Handle("/metrics", promhttp.HandlerFor(s.promReg, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(s.withRegistry)
		r.Get("/ws", s.handleWebSocket)
		r.Route("/api/dialogs", func(r chi.Router) {
			r.Get("/", s.handleList)
			r.Post("/", s.handleAdd)
			r.Post("/{id}/close", s.handleClose)
			r.Put("/{id}/position", s.handleMove)
			r.Put("/{id}/size", s.handleResize)
		})
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Infof("web: listening on http://%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: serve %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.hub.close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web: shutdown: %w", err)
	}
	return nil
}

// withRegistry puts the served registry into the request context.
func (s *Server) withRegistry(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(registry.NewContext(r.Context(), s.reg)))
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logging.Debugf("web: %s %s %d %s [%s]", r.Method, r.URL.Path, ww.Status(), time.Since(start), middleware.GetReqID(r.Context()))
	})
}

// snapshot is the full state sent to clients.
type snapshot struct {
	Type    string                    `json:"type"`
	Dialogs []registry.Record[string] `json:"dialogs"`
	Layout  layoutView                `json:"layout"`
}

// layoutView carries the values the page needs to clamp and snap gestures.
type layoutView struct {
	MinSize      registry.Size `json:"minSize"`
	MaxSize      registry.Size `json:"maxSize"`
	GridSize     int           `json:"gridSize"`
	HandleSize   int           `json:"handleSize"`
	HeaderHeight int           `json:"headerHeight"`
}

// gestureMessage is a gesture as sent by the page.
type gestureMessage struct {
	Type   string `json:"type"`
	ID     int    `json:"id"`
	Title  string `json:"title,omitempty"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (m gestureMessage) gesture() (registry.Gesture, error) {
	kind, err := registry.ParseGestureKind(m.Type)
	if err != nil {
		return registry.Gesture{}, err
	}
	return registry.Gesture{
		Kind:     kind,
		ID:       m.ID,
		Title:    m.Title,
		Position: registry.Position{X: m.X, Y: m.Y},
		Size:     registry.Size{Width: m.Width, Height: m.Height},
	}, nil
}

// apply runs g against the request's registry. When g changed something
// the new snapshot is queued for every client before mu is released, so
// clients see snapshots in the order gestures were applied.
func (s *Server) apply(ctx context.Context, g registry.Gesture) (registry.Record[string], bool) {
	reg := registry.MustFromContext[string](ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	applied := reg.Apply(g)
	s.metrics.recordGesture(g.Kind.String(), applied)
	if !applied {
		logging.Debugf("web: %s for unknown dialog %d ignored", g.Kind, g.ID)
		return registry.Record[string]{}, false
	}

	var rec registry.Record[string]
	if g.Kind == registry.AddClick {
		recs := reg.Dialogs()
		rec = recs[len(recs)-1]
	} else {
		rec, _ = reg.Get(g.ID)
	}
	s.metrics.setDialogs(reg.Len(), len(reg.Visible()))
	logging.Debugf("web: %s dialog %d", g.Kind, rec.ID)

	if data := s.encodeSnapshotLocked(reg); data != nil {
		s.hub.broadcast(data)
	}
	return rec, true
}

func (s *Server) encodeSnapshotLocked(reg *registry.Registry[string]) []byte {
	l := reg.Layout()
	data, err := json.Marshal(snapshot{
		Type:    "snapshot",
		Dialogs: reg.Dialogs(),
		Layout: layoutView{
			MinSize:      l.MinSize,
			MaxSize:      l.MaxSize,
			GridSize:     l.GridSize,
			HandleSize:   l.HandleSize,
			HeaderHeight: l.HeaderHeight,
		},
	})
	if err != nil {
		logging.Errorf("web: encode snapshot: %v", err)
		return nil
	}
	return data
}

func (s *Server) currentSnapshot(ctx context.Context) []byte {
	reg := registry.MustFromContext[string](ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.encodeSnapshotLocked(reg)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "page missing", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	data := s.currentSnapshot(r.Context())
	if data == nil {
		http.Error(w, "encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title string `json:"title"`
	}
	if err := decodeBody(r, &body, true); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rec, _ := s.apply(r.Context(), registry.Gesture{Kind: registry.AddClick, Title: body.Title})
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleClose(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s.apply(r.Context(), registry.Gesture{Kind: registry.CloseClick, ID: id})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var pos registry.Position
	if err := decodeBody(r, &pos, false); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.apply(r.Context(), registry.Gesture{Kind: registry.DragStop, ID: id, Position: pos})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var size registry.Size
	if err := decodeBody(r, &size, false); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	size = registry.MustFromContext[string](r.Context()).Layout().Clamp(size)
	s.apply(r.Context(), registry.Gesture{Kind: registry.ResizeMove, ID: id, Size: size})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warnf("web: websocket upgrade: %v", err)
		return
	}
	conn.SetReadLimit(maxMessageSize)

	// The request context ends when the handler returns, so gestures run
	// against a context that only carries the registry.
	ctx := registry.NewContext(context.Background(), registry.MustFromContext[string](r.Context()))

	// Registering and queueing the first snapshot under mu keeps it ahead
	// of any broadcast.
	s.mu.Lock()
	c := s.hub.register(conn)
	if data := s.encodeSnapshotLocked(registry.MustFromContext[string](ctx)); data != nil {
		c.enqueue(data)
	}
	s.mu.Unlock()
	defer s.hub.unregister(c)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg gestureMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logging.Warnf("web: client %s sent malformed message: %v", c.id, err)
			continue
		}
		g, err := msg.gesture()
		if err != nil {
			logging.Warnf("web: client %s: %v", c.id, err)
			continue
		}
		s.apply(ctx, g)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid dialog id %q", raw), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// decodeBody reads a JSON body into v. An empty body is accepted only
// when allowEmpty is set.
func decodeBody(r *http.Request, v any, allowEmpty bool) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) && allowEmpty {
		return nil
	}
	if err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warnf("web: encode response: %v", err)
	}
}

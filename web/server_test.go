package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/winman/registry"
)

func newTestServer(t *testing.T) (*Server, *registry.Registry[string], *httptest.Server) {
	t.Helper()
	reg := registry.New[string](registry.WithContent[string](func(int) string { return "New Dialog Content" }))
	s := New(reg, "winman_test")
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, reg, ts
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestIndex(t *testing.T) {
	_, _, ts := newTestServer(t)

	resp := do(t, http.MethodGet, ts.URL+"/", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestAddAndList(t *testing.T) {
	_, reg, ts := newTestServer(t)

	resp := do(t, http.MethodPost, ts.URL+"/api/dialogs", `{"title":"Settings"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var rec registry.Record[string]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, 1, rec.ID)
	assert.Equal(t, "Settings", rec.Title)
	assert.Equal(t, "New Dialog Content", rec.Content)

	resp = do(t, http.MethodPost, ts.URL+"/api/dialogs", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, 2, reg.Len())

	resp = do(t, http.MethodGet, ts.URL+"/api/dialogs", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var snap snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	require.Len(t, snap.Dialogs, 2)
	assert.Equal(t, "Dialog 2", snap.Dialogs[1].Title)
	assert.Equal(t, registry.Position{X: 0, Y: 220}, snap.Dialogs[1].Position)
	assert.Equal(t, registry.ResizeGridSize, snap.Layout.GridSize)
}

func TestMoveResizeClose(t *testing.T) {
	_, reg, ts := newTestServer(t)
	rec := reg.Add("", "")

	resp := do(t, http.MethodPut, ts.URL+"/api/dialogs/1/position", `{"x":120,"y":80}`)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodPut, ts.URL+"/api/dialogs/1/size", `{"width":5000,"height":150}`)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	got, ok := reg.Get(rec.ID)
	require.True(t, ok)
	assert.Equal(t, registry.Position{X: 120, Y: 80}, got.Position)
	assert.Equal(t, registry.Size{Width: registry.MaxDialogWidth, Height: 150}, got.Size)

	resp = do(t, http.MethodPost, ts.URL+"/api/dialogs/1/close", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	got, _ = reg.Get(rec.ID)
	assert.False(t, got.Visible)
}

func TestUnknownIDIsIgnored(t *testing.T) {
	_, reg, ts := newTestServer(t)
	reg.Add("", "")
	before := reg.Dialogs()

	for _, c := range []struct{ method, path, body string }{
		{http.MethodPost, "/api/dialogs/99/close", ""},
		{http.MethodPut, "/api/dialogs/99/position", `{"x":1,"y":2}`},
		{http.MethodPut, "/api/dialogs/99/size", `{"width":300,"height":300}`},
	} {
		resp := do(t, c.method, ts.URL+c.path, c.body)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode, c.path)
	}
	assert.Equal(t, before, reg.Dialogs())
}

func TestBadRequests(t *testing.T) {
	_, reg, ts := newTestServer(t)
	reg.Add("", "")

	tests := []struct {
		name, method, path, body string
	}{
		{"malformed add", http.MethodPost, "/api/dialogs", `{"title":`},
		{"non numeric id", http.MethodPost, "/api/dialogs/abc/close", ""},
		{"empty move body", http.MethodPut, "/api/dialogs/1/position", ""},
		{"malformed size", http.MethodPut, "/api/dialogs/1/size", `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, tt.method, ts.URL+tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
	assert.Equal(t, 1, reg.Len())
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) snapshot {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var snap snapshot
	require.NoError(t, conn.ReadJSON(&snap))
	require.Equal(t, "snapshot", snap.Type)
	return snap
}

func TestWebSocket_GestureRoundTrip(t *testing.T) {
	_, _, ts := newTestServer(t)
	conn := dial(t, ts)

	snap := readSnapshot(t, conn)
	assert.Empty(t, snap.Dialogs)

	require.NoError(t, conn.WriteJSON(gestureMessage{Type: "add"}))
	snap = readSnapshot(t, conn)
	require.Len(t, snap.Dialogs, 1)
	assert.Equal(t, "Dialog 1", snap.Dialogs[0].Title)

	// Unknown ids and unknown kinds produce no broadcast, so the next
	// snapshot is the one for the move.
	require.NoError(t, conn.WriteJSON(gestureMessage{Type: "close", ID: 42}))
	require.NoError(t, conn.WriteJSON(gestureMessage{Type: "explode", ID: 1}))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	require.NoError(t, conn.WriteJSON(gestureMessage{Type: "dragStop", ID: 1, X: 50, Y: 60}))

	snap = readSnapshot(t, conn)
	assert.Equal(t, registry.Position{X: 50, Y: 60}, snap.Dialogs[0].Position)

	require.NoError(t, conn.WriteJSON(gestureMessage{Type: "resize", ID: 1, Width: 300, Height: 225}))
	snap = readSnapshot(t, conn)
	assert.Equal(t, registry.Size{Width: 300, Height: 225}, snap.Dialogs[0].Size)

	require.NoError(t, conn.WriteJSON(gestureMessage{Type: "close", ID: 1}))
	snap = readSnapshot(t, conn)
	assert.False(t, snap.Dialogs[0].Visible)
}

func TestWebSocket_BroadcastsHTTPChanges(t *testing.T) {
	s, _, ts := newTestServer(t)
	a := dial(t, ts)
	b := dial(t, ts)
	readSnapshot(t, a)
	readSnapshot(t, b)
	require.Eventually(t, func() bool { return s.hub.count() == 2 }, time.Second, 10*time.Millisecond)

	resp := do(t, http.MethodPost, ts.URL+"/api/dialogs", `{"title":"Shared"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	for _, conn := range []*websocket.Conn{a, b} {
		snap := readSnapshot(t, conn)
		require.Len(t, snap.Dialogs, 1)
		assert.Equal(t, "Shared", snap.Dialogs[0].Title)
	}
}

func TestWebSocket_StalledClientDoesNotBlockRequests(t *testing.T) {
	s, reg, ts := newTestServer(t)
	dial(t, ts) // never reads
	require.Eventually(t, func() bool { return s.hub.count() == 1 }, time.Second, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 300 {
			resp, err := http.Post(ts.URL+"/api/dialogs", "application/json", strings.NewReader(`{"title":"Filler"}`))
			if err != nil {
				return
			}
			resp.Body.Close()
		}
	}()

	select {
	case <-done:
	case <-time.After(20 * time.Second):
		t.Fatal("requests blocked behind a client that stopped reading")
	}
	assert.Equal(t, 300, reg.Len())
}

func TestWebSocket_ConcurrentGesturesArriveInOrder(t *testing.T) {
	_, reg, ts := newTestServer(t)
	conn := dial(t, ts)
	require.Empty(t, readSnapshot(t, conn).Dialogs)

	const workers, perWorker = 10, 5
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				resp, err := http.Post(ts.URL+"/api/dialogs", "application/json", nil)
				if err == nil {
					resp.Body.Close()
				}
			}
		}()
	}

	for want := 1; want <= workers*perWorker; want++ {
		snap := readSnapshot(t, conn)
		require.Len(t, snap.Dialogs, want, "snapshot %d out of order", want)
	}
	wg.Wait()
	assert.Equal(t, workers*perWorker, reg.Len())
}

func TestWebSocket_OversizedFrameClosesConnection(t *testing.T) {
	s, reg, ts := newTestServer(t)
	conn := dial(t, ts)
	readSnapshot(t, conn)

	big := `{"type":"add","title":"` + strings.Repeat("x", 2*maxMessageSize) + `"}`
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(big)))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
	assert.Equal(t, 0, reg.Len())
	require.Eventually(t, func() bool { return s.hub.count() == 0 }, time.Second, 10*time.Millisecond)
}

func TestMetrics(t *testing.T) {
	s, _, ts := newTestServer(t)

	do(t, http.MethodPost, ts.URL+"/api/dialogs", "")
	do(t, http.MethodPost, ts.URL+"/api/dialogs", "")
	do(t, http.MethodPost, ts.URL+"/api/dialogs/1/close", "")
	do(t, http.MethodPost, ts.URL+"/api/dialogs/7/close", "")

	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.gesturesTotal.WithLabelValues("add", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.gesturesTotal.WithLabelValues("close", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.gesturesTotal.WithLabelValues("close", "ignored")))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.dialogsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.dialogsOpen))

	resp := do(t, http.MethodGet, ts.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandlersRequireRegistryInContext(t *testing.T) {
	s, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dialogs", nil)
	rec := httptest.NewRecorder()

	assert.Panics(t, func() { s.handleList(rec, req) })
}

package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEcho(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Seen-Path", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newGateway(t *testing.T, authURL, coreURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	for _, u := range []struct{ prefix, target string }{
		{"/auth", authURL},
		{"/api", coreURL},
	} {
		proxy, err := NewProxy(u.target, u.prefix)
		require.NoError(t, err)
		r.Any(u.prefix+"/*path", proxy)
	}
	return r
}

// closeNotifyRecorder adds the http.CloseNotifier method that
// httputil.ReverseProxy requires on Go <1.22; httptest.ResponseRecorder
// alone panics there.
type closeNotifyRecorder struct{ *httptest.ResponseRecorder }

func (c *closeNotifyRecorder) CloseNotify() <-chan bool { return make(chan bool) }

func TestProxyStripsPrefix(t *testing.T) {
	auth := newEcho(t)
	core := newEcho(t)
	r := newGateway(t, auth.URL, core.URL)

	w := &closeNotifyRecorder{httptest.NewRecorder()}
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/login", w.Header().Get("X-Seen-Path"))

	w = &closeNotifyRecorder{httptest.NewRecorder()}
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/restaurants/7", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/restaurants/7", w.Header().Get("X-Seen-Path"))
}

func TestUnknownPrefixIs404(t *testing.T) {
	auth := newEcho(t)
	core := newEcho(t)
	r := newGateway(t, auth.URL, core.URL)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope/anything", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

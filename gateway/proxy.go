package gateway

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// NewProxy returns a handler that strips prefix from the request path and
// forwards to target. WebSocket upgrades pass through untouched, which
// covers the chat service's /ws endpoint.
func NewProxy(target, prefix string) (gin.HandlerFunc, error) {
	upstream, err := url.Parse(target)
	if err != nil {
		return nil, err
	}
	proxy := httputil.NewSingleHostReverseProxy(upstream)

	return func(c *gin.Context) {
		path := strings.TrimPrefix(c.Request.URL.Path, prefix)
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		c.Request.URL.Path = path
		proxy.ServeHTTP(c.Writer, c.Request)
	}, nil
}

// BodyLimit caps request bodies; oversized reads fail inside the upstream
// handler with a 413 from MaxBytesReader.
func BodyLimit(max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
		c.Next()
	}
}

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-spa-host/internal/config"
	"github.com/MKhiriev/go-spa-host/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// injectLogger puts zerolog.Logger into request context the same way
// withTraceID middleware does (via zerolog/log.Ctx).
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	ctx := l.WithContext(r.Context())
	return r.WithContext(ctx)
}

// makeRequest creates a test request with a buffer-backed logger in context.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return injectLogger(req, l)
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET index 200",
			method:          http.MethodGet,
			path:            "/",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:            "GET env script 200",
			method:          http.MethodGet,
			path:            "/env.js",
			handlerStatus:   http.StatusOK,
			handlerResponse: "window.env = {};",
			checkLogContains: []string{
				`"uri":"/env.js"`,
				`"status":200`,
			},
		},
		{
			name:            "GET missing asset 404",
			method:          http.MethodGet,
			path:            "/assets/gone.js",
			handlerStatus:   http.StatusNotFound,
			handlerResponse: "Not Found",
			checkLogContains: []string{
				`"status":404`,
				`"uri":"/assets/gone.js"`,
			},
		},
		{
			name:            "query parameters preserved in uri",
			method:          http.MethodGet,
			path:            "/search?q=test&limit=10",
			handlerStatus:   http.StatusOK,
			handlerResponse: "Results",
			checkLogContains: []string{
				`"uri":"/search?q=test&limit=10"`,
				`"status":200`,
			},
		},
		{
			name:          "HEAD request",
			method:        http.MethodHead,
			path:          "/",
			handlerStatus: http.StatusOK,
			checkLogContains: []string{
				`"method":"HEAD"`,
				`"status":200`,
				`"size":0`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler(t, &service.Services{}, config.Static{})

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					w.Write([]byte(tt.handlerResponse))
				}
			})

			req := makeRequest(tt.method, tt.path, &buf)
			rec := httptest.NewRecorder()

			h.withLogging(next).ServeHTTP(rec, req)

			logged := buf.String()
			for _, want := range tt.checkLogContains {
				assert.Contains(t, logged, want)
			}
		})
	}
}

func TestWithLogging_PassesResponseThrough(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(t, &service.Services{}, config.Static{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("payload"))
	})

	req := makeRequest(http.MethodGet, "/", &buf)
	rec := httptest.NewRecorder()

	h.withLogging(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "payload", rec.Body.String())
}

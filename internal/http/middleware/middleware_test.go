package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"billest/internal/http/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("RequestIDMiddleware", func() {
	var (
		seen    string
		handler http.Handler
		rec     *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		seen = ""
		rec = httptest.NewRecorder()
		handler = middleware.NewRequestIDMiddleware().RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.RequestIDFrom(r.Context())
		}))
	})

	It("should generate an id when the caller sends none", func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/history", nil))

		Expect(seen).NotTo(BeEmpty())
		Expect(rec.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
	})

	It("should keep the caller's id", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		handler.ServeHTTP(rec, req)

		Expect(seen).To(Equal("abc-123"))
		Expect(rec.Header().Get(middleware.RequestIDHeader)).To(Equal("abc-123"))
	})
})

var _ = Describe("LoggingMiddleware", func() {
	It("should log the status written by the handler", func() {
		core, logs := observer.New(zapcore.InfoLevel)
		handler := middleware.NewLoggingMiddleware(zap.New(core).Sugar()).Logging(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/predict", nil))

		Expect(logs.Len()).To(Equal(1))
		fields := logs.All()[0].ContextMap()
		Expect(fields).To(HaveKeyWithValue("status", int64(http.StatusTeapot)))
		Expect(fields).To(HaveKeyWithValue("path", "/api/predict"))
		Expect(fields).To(HaveKeyWithValue("method", http.MethodPost))
	})
})

var _ = Describe("CORSMiddleware", func() {
	var (
		called  bool
		handler http.Handler
		rec     *httptest.ResponseRecorder
		req     *http.Request
	)

	BeforeEach(func() {
		called = false
		rec = httptest.NewRecorder()
		handler = middleware.NewCORSMiddleware("http://localhost:3000").CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
	})

	When("the origin is allowed", func() {
		It("should answer a preflight itself", func() {
			req = httptest.NewRequest(http.MethodOptions, "/api/predict", nil)
			req.Header.Set("Origin", "http://localhost:3000")
			req.Header.Set("Access-Control-Request-Method", "POST")
			req.Header.Set("Access-Control-Request-Headers", "content-type")
			handler.ServeHTTP(rec, req)

			Expect(called).To(BeFalse())
			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("http://localhost:3000"))
			Expect(rec.Header().Get("Access-Control-Allow-Credentials")).To(Equal("true"))
			Expect(rec.Header().Get("Access-Control-Allow-Methods")).To(ContainSubstring("DELETE"))
			Expect(rec.Header().Get("Access-Control-Allow-Headers")).To(Equal("content-type"))
		})

		It("should decorate simple requests", func() {
			req = httptest.NewRequest(http.MethodGet, "/api/history", nil)
			req.Header.Set("Origin", "http://localhost:3000")
			handler.ServeHTTP(rec, req)

			Expect(called).To(BeTrue())
			Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("http://localhost:3000"))
		})
	})

	When("the origin is not allowed", func() {
		It("should not add cors headers", func() {
			req = httptest.NewRequest(http.MethodGet, "/api/history", nil)
			req.Header.Set("Origin", "http://evil.example")
			handler.ServeHTTP(rec, req)

			Expect(called).To(BeTrue())
			Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
		})
	})
})

package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"todoer/internal/http/handler/middleware"
	"todoer/internal/http/handler/middleware/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("SessionMiddleware", func() {
	var (
		fakeSessions *fake.SessionResolver
		sessionMW    *middleware.SessionMiddleware

		recorder *httptest.ResponseRecorder
		request  *http.Request

		nextCalled  bool
		seenUserID  uint
		seenToken   string
		wrappedNext http.Handler
	)

	BeforeEach(func() {
		fakeSessions = new(fake.SessionResolver)
		sessionMW = middleware.NewSessionMiddleware(zap.NewNop().Sugar(), fakeSessions)

		recorder = httptest.NewRecorder()
		request = httptest.NewRequest(http.MethodGet, "/todos/", nil)

		nextCalled = false
		wrappedNext = sessionMW.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			seenUserID, _ = r.Context().Value(middleware.UserIDKey).(uint)
			seenToken, _ = r.Context().Value(middleware.SessionTokenKey).(string)
		}))
	})

	JustBeforeEach(func() {
		wrappedNext.ServeHTTP(recorder, request)
	})

	When("the request carries a live session cookie", func() {
		BeforeEach(func() {
			request.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "signed.token"})
			fakeSessions.ResolveReturns(3, true)
		})

		It("passes through with the identity on the context", func() {
			Expect(nextCalled).To(BeTrue())
			Expect(seenUserID).To(Equal(uint(3)))
			Expect(seenToken).To(Equal("signed.token"))

			Expect(fakeSessions.ResolveCallCount()).To(Equal(1))
			Expect(fakeSessions.ResolveArgsForCall(0)).To(Equal("signed.token"))
		})
	})

	When("the request has no session cookie", func() {
		It("rejects with 401 and an error envelope", func() {
			Expect(nextCalled).To(BeFalse())
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(recorder.Body.String()).To(MatchJSON(`{"status":"error","message":"authentication required","code":401}`))
			Expect(fakeSessions.ResolveCallCount()).To(Equal(0))
		})
	})

	When("the session does not resolve", func() {
		BeforeEach(func() {
			request.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "stale.token"})
			fakeSessions.ResolveReturns(0, false)
		})

		It("rejects with 401", func() {
			Expect(nextCalled).To(BeFalse())
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})

var _ = Describe("RequestIDMiddleware", func() {
	It("tags the request and the response with the same id", func() {
		var ctxID string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxID, _ = r.Context().Value(middleware.RequestIDKey).(string)
		})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)

		middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(recorder, request)

		Expect(ctxID).NotTo(BeEmpty())
		Expect(recorder.Header().Get("X-Request-Id")).To(Equal(ctxID))
	})
})

var _ = Describe("CORSMiddleware", func() {
	var (
		corsMW   *middleware.CORSMiddleware
		recorder *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		corsMW = middleware.NewCORSMiddleware("http://localhost:5173")
		recorder = httptest.NewRecorder()
	})

	It("sets the allow headers for the configured origin", func() {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		request := httptest.NewRequest(http.MethodGet, "/todos/", nil)

		corsMW.CORS(next).ServeHTTP(recorder, request)

		Expect(recorder.Code).To(Equal(http.StatusOK))
		Expect(recorder.Header().Get("Access-Control-Allow-Origin")).To(Equal("http://localhost:5173"))
		Expect(recorder.Header().Get("Access-Control-Allow-Credentials")).To(Equal("true"))
	})

	It("short-circuits preflight requests", func() {
		nextCalled := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
		})
		request := httptest.NewRequest(http.MethodOptions, "/todos/", nil)

		corsMW.CORS(next).ServeHTTP(recorder, request)

		Expect(nextCalled).To(BeFalse())
		Expect(recorder.Code).To(Equal(http.StatusNoContent))
		Expect(recorder.Header().Get("Access-Control-Max-Age")).To(Equal("86400"))
	})
})

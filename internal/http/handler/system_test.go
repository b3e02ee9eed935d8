package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"todoer/internal/http/handler"
	"todoer/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("SystemHandler", func() {
	var (
		fakeDB     *fake.Pinger
		fakeLogger *zap.SugaredLogger

		systemHlr *handler.SystemHandler

		recorder *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		fakeDB = new(fake.Pinger)
		fakeLogger = zap.NewNop().Sugar()

		systemHlr = handler.NewSystemHandler(fakeLogger, fakeDB)
		recorder = httptest.NewRecorder()
	})

	Describe("HandleLiveness", func() {
		It("responds 200", func() {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			systemHlr.HandleLiveness(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring("server up"))
		})
	})

	Describe("HandleHealth", func() {
		When("the database answers", func() {
			BeforeEach(func() {
				fakeDB.PingReturns(nil)
			})

			It("responds 200", func() {
				request := httptest.NewRequest(http.MethodGet, "/health", nil)
				systemHlr.HandleHealth(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))
				Expect(recorder.Body.String()).To(ContainSubstring("database connection is healthy"))
			})
		})

		When("the database is unreachable", func() {
			BeforeEach(func() {
				fakeDB.PingReturns(errors.New("connection refused"))
			})

			It("responds 500", func() {
				request := httptest.NewRequest(http.MethodGet, "/health", nil)
				systemHlr.HandleHealth(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
				Expect(recorder.Body.String()).To(ContainSubstring("database connection failed"))
			})
		})
	})
})

package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"todoer/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	Describe("DecodeAndValidateJSONPayload", func() {
		When("the content type is not JSON", func() {
			It("rejects the request", func() {
				req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
				req.Header.Set("Content-Type", "text/plain")

				var target payload.LoginRequest
				err := dv.DecodeAndValidateJSONPayload(req, &target)
				Expect(err).To(MatchError(payload.ErrContentTypeNotJSON))
			})
		})

		When("the content type carries a charset", func() {
			It("accepts the request", func() {
				req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"alice","password":"testpass"}`))
				req.Header.Set("Content-Type", "application/json; charset=utf-8")

				var target payload.LoginRequest
				err := dv.DecodeAndValidateJSONPayload(req, &target)
				Expect(err).NotTo(HaveOccurred())
				Expect(target.Username).To(Equal("alice"))
			})
		})

		When("the body has unknown fields", func() {
			It("rejects the request", func() {
				var target payload.LoginRequest
				err := dv.DecodeAndValidateJSONPayload(
					jsonRequest(`{"username":"alice","password":"testpass","admin":true}`), &target)
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})

		When("the body is not valid JSON", func() {
			It("rejects the request", func() {
				var target payload.LoginRequest
				err := dv.DecodeAndValidateJSONPayload(jsonRequest(`{"username":`), &target)
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})
	})

	Describe("RegisterRequest", func() {
		It("accepts a well formed payload", func() {
			var target payload.RegisterRequest
			err := dv.DecodeAndValidateJSONPayload(
				jsonRequest(`{"username":"alice","password":"testpass1"}`), &target)
			Expect(err).NotTo(HaveOccurred())

			creds := target.ToCredentials()
			Expect(creds.Username).To(Equal("alice"))
			Expect(creds.Password).To(Equal("testpass1"))
		})

		It("rejects a too short username", func() {
			var target payload.RegisterRequest
			err := dv.DecodeAndValidateJSONPayload(
				jsonRequest(`{"username":"al","password":"testpass1"}`), &target)
			Expect(err).To(MatchError(ContainSubstring("validating payload")))
		})

		It("rejects a too short password", func() {
			var target payload.RegisterRequest
			err := dv.DecodeAndValidateJSONPayload(
				jsonRequest(`{"username":"alice","password":"short"}`), &target)
			Expect(err).To(MatchError(ContainSubstring("validating payload")))
		})

		It("rejects missing fields", func() {
			var target payload.RegisterRequest
			err := dv.DecodeAndValidateJSONPayload(jsonRequest(`{}`), &target)
			Expect(err).To(MatchError(ContainSubstring("validating payload")))
		})
	})

	Describe("CreateTodoRequest", func() {
		It("accepts a known priority", func() {
			var target payload.CreateTodoRequest
			err := dv.DecodeAndValidateJSONPayload(
				jsonRequest(`{"description":"buy milk","priority":"NORMAL"}`), &target)
			Expect(err).NotTo(HaveOccurred())

			draft := target.ToDraft()
			Expect(draft.Description).To(Equal("buy milk"))
			Expect(string(draft.Priority)).To(Equal("NORMAL"))
		})

		It("rejects an unknown priority", func() {
			var target payload.CreateTodoRequest
			err := dv.DecodeAndValidateJSONPayload(
				jsonRequest(`{"description":"buy milk","priority":"whenever"}`), &target)
			Expect(err).To(MatchError(ContainSubstring("validating payload")))
		})

		It("rejects an empty description", func() {
			var target payload.CreateTodoRequest
			err := dv.DecodeAndValidateJSONPayload(
				jsonRequest(`{"description":"","priority":"NORMAL"}`), &target)
			Expect(err).To(MatchError(ContainSubstring("validating payload")))
		})
	})

	Describe("UpdateTodoRequest", func() {
		It("requires the id and creation date", func() {
			var target payload.UpdateTodoRequest
			err := dv.DecodeAndValidateJSONPayload(
				jsonRequest(`{"description":"buy milk","priority":"NORMAL"}`), &target)
			Expect(err).To(MatchError(ContainSubstring("validating payload")))
		})

		It("accepts a full replacement payload", func() {
			var target payload.UpdateTodoRequest
			err := dv.DecodeAndValidateJSONPayload(
				jsonRequest(`{"id":11,"description":"buy milk","date_created":"2025-06-01T12:00:00Z","priority":"URGENT","completed":true}`), &target)
			Expect(err).NotTo(HaveOccurred())

			change := target.ToChange()
			Expect(change.ID).To(Equal(uint(11)))
			Expect(string(change.Priority)).To(Equal("URGENT"))
			Expect(change.Completed).To(BeTrue())
		})
	})
})

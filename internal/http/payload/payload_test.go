package payload_test

import (
	"net/http/httptest"
	"net/url"
	"strings"

	"billest/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	decode := func(body string, object any) error {
		r := httptest.NewRequest("POST", "/api/test", strings.NewReader(body))
		return dv.DecodeAndValidateJSONPayload(r, object)
	}

	Describe("RegisterRequest", func() {
		It("should accept a complete request without a full name", func() {
			var req payload.RegisterRequest
			err := decode(`{"username":"alice","email":"alice@example.com","password":"pw"}`, &req)
			Expect(err).NotTo(HaveOccurred())
			Expect(req.FullName).To(BeNil())

			msg := req.ToMessage()
			Expect(msg.Username).To(Equal("alice"))
			Expect(msg.Email).To(Equal("alice@example.com"))
		})

		It("should accept any non-empty email", func() {
			var req payload.RegisterRequest
			err := decode(`{"username":"alice","email":"not-an-email","password":"pw"}`, &req)
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Email).To(Equal("not-an-email"))
		})

		It("should reject an empty email", func() {
			var req payload.RegisterRequest
			err := decode(`{"username":"alice","email":"","password":"pw"}`, &req)
			Expect(err).To(MatchError(ContainSubstring("validating payload")))
			Expect(err).To(MatchError(ContainSubstring("email")))
		})

		It("should reject a missing password", func() {
			var req payload.RegisterRequest
			err := decode(`{"username":"alice","email":"alice@example.com"}`, &req)
			Expect(err).To(MatchError(ContainSubstring("password")))
		})
	})

	Describe("LoginRequest", func() {
		It("should require both fields", func() {
			var req payload.LoginRequest
			err := decode(`{"username":"alice"}`, &req)
			Expect(err).To(MatchError(ContainSubstring("password")))
		})
	})

	Describe("PredictRequest", func() {
		It("should accept zero units", func() {
			var req payload.PredictRequest
			Expect(decode(`{"units":0}`, &req)).To(Succeed())

			msg := req.ToMessage()
			Expect(msg.Units).To(BeZero())
			Expect(msg.UserID).To(BeNil())
		})

		It("should carry the owner", func() {
			var req payload.PredictRequest
			Expect(decode(`{"units":-50.5,"user_id":3}`, &req)).To(Succeed())

			msg := req.ToMessage()
			Expect(msg.Units).To(Equal(-50.5))
			Expect(*msg.UserID).To(Equal(int64(3)))
		})

		It("should reject missing units", func() {
			var req payload.PredictRequest
			Expect(decode(`{"user_id":3}`, &req)).To(MatchError(ContainSubstring("units")))
		})

		It("should reject units that are not a number", func() {
			var req payload.PredictRequest
			Expect(decode(`{"units":"300"}`, &req)).To(MatchError(ContainSubstring("decoding json payload")))
		})
	})

	It("should reject unknown fields", func() {
		var req payload.LoginRequest
		err := decode(`{"username":"a","password":"b","token":"c"}`, &req)
		Expect(err).To(MatchError(ContainSubstring("unknown field")))
	})

	It("should reject a second value after the object", func() {
		var req payload.LoginRequest
		err := decode(`{"username":"a","password":"b"} {"username":"c"}`, &req)
		Expect(err).To(MatchError(ContainSubstring("unexpected data")))
	})

	It("should reject malformed json", func() {
		var req payload.LoginRequest
		Expect(decode(`{"username":`, &req)).To(MatchError(ContainSubstring("decoding json payload")))
	})
})

var _ = Describe("OptionalID", func() {
	It("should return nil when the parameter is absent", func() {
		id, err := payload.OptionalID(url.Values{}, "user_id")
		Expect(err).NotTo(HaveOccurred())
		Expect(id).To(BeNil())
	})

	It("should parse an integer", func() {
		id, err := payload.OptionalID(url.Values{"user_id": {"12"}}, "user_id")
		Expect(err).NotTo(HaveOccurred())
		Expect(*id).To(Equal(int64(12)))
	})

	It("should reject anything else", func() {
		_, err := payload.OptionalID(url.Values{"user_id": {"abc"}}, "user_id")
		Expect(err).To(MatchError(ContainSubstring("query parameter user_id")))
	})
})

package companieshouse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ClientSuite struct {
	suite.Suite
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) TestSearch() {
	s.Run("decodes candidates in page order", func() {
		var gotAuth, gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.Equal("/search/companies", r.URL.Path)
			gotQuery = r.URL.Query().Get("q")
			user, pass, ok := r.BasicAuth()
			s.True(ok)
			s.Empty(pass)
			gotAuth = user
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"items": [
					{
						"title": "ACME MOTORS LIMITED",
						"company_number": "12345678",
						"company_status": "active",
						"date_of_creation": "2022-05-01",
						"address_snippet": "1 High Street, Anytown, AB1 2CD",
						"address": {"postal_code": "AB1 2CD"}
					},
					{
						"title": "ACME CARS LTD",
						"company_number": "87654321",
						"company_status": "dissolved",
						"date_of_creation": "2001-01-01",
						"address_snippet": "2 Low Street"
					}
				]
			}`))
		}))
		defer srv.Close()

		client := New(Config{BaseURL: srv.URL, APIKey: "test-key"})
		candidates, err := client.Search(context.Background(), "ACME MOTORS")
		s.Require().NoError(err)

		s.Equal("test-key", gotAuth)
		s.Equal("ACME MOTORS", gotQuery)
		s.Require().Len(candidates, 2)
		s.Equal("ACME MOTORS LIMITED", candidates[0].Title)
		s.Equal("12345678", candidates[0].CompanyNumber)
		s.Equal("active", candidates[0].Status)
		s.Equal("2022-05-01", candidates[0].CreationDate)
		s.Equal("AB1 2CD", candidates[0].Postcode)
		s.Equal("1 High Street, Anytown, AB1 2CD", candidates[0].AddressSnippet)
		s.Empty(candidates[1].Postcode)
	})

	s.Run("empty result set is not an error", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"items": []}`))
		}))
		defer srv.Close()

		client := New(Config{BaseURL: srv.URL, APIKey: "test-key"})
		candidates, err := client.Search(context.Background(), "NOBODY")
		s.Require().NoError(err)
		s.Empty(candidates)
	})

	s.Run("non-200 status is an error", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := New(Config{BaseURL: srv.URL, APIKey: "test-key"})
		_, err := client.Search(context.Background(), "ACME")
		s.Require().Error(err)
		s.Contains(err.Error(), "unexpected status 429")
	})

	s.Run("malformed payload is an error", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"items": [`))
		}))
		defer srv.Close()

		client := New(Config{BaseURL: srv.URL, APIKey: "test-key"})
		_, err := client.Search(context.Background(), "ACME")
		s.Error(err)
	})
}

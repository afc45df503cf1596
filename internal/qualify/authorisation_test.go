package qualify_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/SeanJibowu555/dealer-qualifier/internal/qualify"
	"github.com/SeanJibowu555/dealer-qualifier/internal/qualify/mocks"
)

// AuthorisationSuite tests the register check: query ladder, phrase rules,
// semantic fallback, and failure degradation.
type AuthorisationSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	fetcher    *mocks.MockRegisterFetcher
	classifier *mocks.MockSemanticClassifier
	logger     *slog.Logger
}

func TestAuthorisationSuite(t *testing.T) {
	suite.Run(t, new(AuthorisationSuite))
}

func (s *AuthorisationSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fetcher = mocks.NewMockRegisterFetcher(s.ctrl)
	s.classifier = mocks.NewMockSemanticClassifier(s.ctrl)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *AuthorisationSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthorisationSuite) TestPhraseMatching() {
	s.Run("authorised phrase yields yes without semantic classification", func() {
		checker := qualify.NewAuthorisationChecker(s.fetcher, s.classifier, s.logger)
		s.fetcher.EXPECT().
			Fetch(gomock.Any(), "Acme Motors AB12CD").
			Return(qualify.RegisterPage{
				Text: "<h1>Acme Motors</h1><p>STATUS: Authorised</p>",
				URL:  "https://register.example/s/search?q=acme",
			}, nil)
		// No classifier expectation: a phrase hit must short-circuit.

		result := checker.Check(context.Background(), "Acme Motors Ltd", "AB12CD")
		s.Equal(qualify.AuthorisationYes, result.Status)
		s.Equal("https://register.example/s/search?q=acme", result.SourceURL)
	})

	s.Run("firm reference number marker counts", func() {
		checker := qualify.NewAuthorisationChecker(s.fetcher, nil, s.logger)
		s.fetcher.EXPECT().
			Fetch(gomock.Any(), gomock.Any()).
			Return(qualify.RegisterPage{Text: "Firm Reference Number: 123456", URL: "u"}, nil)

		result := checker.Check(context.Background(), "Acme Motors", "")
		s.Equal(qualify.AuthorisationYes, result.Status)
	})
}

func (s *AuthorisationSuite) TestQueryLadder() {
	s.Run("postcode query first, then name alone", func() {
		checker := qualify.NewAuthorisationChecker(s.fetcher, nil, s.logger)
		gomock.InOrder(
			s.fetcher.EXPECT().
				Fetch(gomock.Any(), "Acme Motors AB12CD").
				Return(qualify.RegisterPage{}, errors.New("timeout")),
			s.fetcher.EXPECT().
				Fetch(gomock.Any(), "Acme Motors").
				Return(qualify.RegisterPage{Text: "Authorised and regulated", URL: "u2"}, nil),
		)

		result := checker.Check(context.Background(), "Acme Motors Ltd", "AB12CD")
		s.Equal(qualify.AuthorisationYes, result.Status)
		s.Equal("u2", result.SourceURL)
	})

	s.Run("legal and trade tokens stripped from queries", func() {
		checker := qualify.NewAuthorisationChecker(s.fetcher, nil, s.logger)
		s.fetcher.EXPECT().
			Fetch(gomock.Any(), "Acme Motors").
			Return(qualify.RegisterPage{Text: "no results", URL: "u"}, nil)

		result := checker.Check(context.Background(), "Acme Motors (UK) Limited", "")
		s.Equal(qualify.AuthorisationNo, result.Status)
	})
}

func (s *AuthorisationSuite) TestSemanticFallback() {
	s.Run("classifier yes turns an inconclusive page into yes", func() {
		checker := qualify.NewAuthorisationChecker(s.fetcher, s.classifier, s.logger)
		s.fetcher.EXPECT().
			Fetch(gomock.Any(), gomock.Any()).
			Return(qualify.RegisterPage{Text: "1 result for acme motors", URL: "u"}, nil)
		s.classifier.EXPECT().
			Classify(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)

		result := checker.Check(context.Background(), "Acme Motors", "")
		s.Equal(qualify.AuthorisationYes, result.Status)
		s.Equal("u", result.SourceURL)
	})

	s.Run("classifier failure degrades to the phrase verdict", func() {
		checker := qualify.NewAuthorisationChecker(s.fetcher, s.classifier, s.logger)
		s.fetcher.EXPECT().
			Fetch(gomock.Any(), gomock.Any()).
			Return(qualify.RegisterPage{Text: "1 result for acme motors", URL: "u"}, nil)
		s.classifier.EXPECT().
			Classify(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, errors.New("model unavailable"))

		result := checker.Check(context.Background(), "Acme Motors", "")
		s.Equal(qualify.AuthorisationNo, result.Status)
	})

	s.Run("excerpt handed to the classifier is capped on a rune boundary", func() {
		checker := qualify.NewAuthorisationChecker(s.fetcher, s.classifier, s.logger)
		// 1500 three-byte runes: the byte cap falls mid-rune unless trimmed.
		page := strings.Repeat("€", 1500)
		s.fetcher.EXPECT().
			Fetch(gomock.Any(), gomock.Any()).
			Return(qualify.RegisterPage{Text: page, URL: "u"}, nil)
		s.classifier.EXPECT().
			Classify(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, excerpt string) (bool, error) {
				s.LessOrEqual(len(excerpt), 4000)
				s.True(utf8.ValidString(excerpt))
				return true, nil
			})

		result := checker.Check(context.Background(), "Acme Motors", "")
		s.Equal(qualify.AuthorisationYes, result.Status)
	})

	s.Run("absent classifier runs phrase-only", func() {
		checker := qualify.NewAuthorisationChecker(s.fetcher, nil, s.logger)
		s.fetcher.EXPECT().
			Fetch(gomock.Any(), gomock.Any()).
			Return(qualify.RegisterPage{Text: "nothing relevant", URL: "u"}, nil)

		result := checker.Check(context.Background(), "Acme Motors", "")
		s.Equal(qualify.AuthorisationNo, result.Status)
	})
}

func (s *AuthorisationSuite) TestFailureDegradation() {
	s.Run("all fetches failing yields unknown, never no", func() {
		checker := qualify.NewAuthorisationChecker(s.fetcher, nil, s.logger)
		s.fetcher.EXPECT().
			Fetch(gomock.Any(), gomock.Any()).
			Return(qualify.RegisterPage{}, errors.New("connection refused")).
			Times(2)

		result := checker.Check(context.Background(), "Acme Motors", "AB12CD")
		s.Equal(qualify.AuthorisationUnknown, result.Status)
		s.Empty(result.SourceURL)
	})

	s.Run("negative verdict retains no URL", func() {
		checker := qualify.NewAuthorisationChecker(s.fetcher, nil, s.logger)
		s.fetcher.EXPECT().
			Fetch(gomock.Any(), gomock.Any()).
			Return(qualify.RegisterPage{Text: "no matches", URL: "u"}, nil).
			Times(2)

		result := checker.Check(context.Background(), "Acme Motors", "AB12CD")
		s.Equal(qualify.AuthorisationNo, result.Status)
		s.Empty(result.SourceURL)
	})
}

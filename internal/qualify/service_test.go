package qualify_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/SeanJibowu555/dealer-qualifier/internal/qualify"
	"github.com/SeanJibowu555/dealer-qualifier/internal/qualify/mocks"
	dErrors "github.com/SeanJibowu555/dealer-qualifier/pkg/domain-errors"
	"github.com/SeanJibowu555/dealer-qualifier/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	registry  *mocks.MockRegistrySearcher
	fetcher   *mocks.MockRegisterFetcher
	ratings   *mocks.MockRatingSource
	inventory *mocks.MockInventoryEstimator
	logger    *slog.Logger
	now       time.Time
	ctx       context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.registry = mocks.NewMockRegistrySearcher(s.ctrl)
	s.fetcher = mocks.NewMockRegisterFetcher(s.ctrl)
	s.ratings = mocks.NewMockRatingSource(s.ctrl)
	s.inventory = mocks.NewMockInventoryEstimator(s.ctrl)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) newService(opts ...qualify.Option) *qualify.Service {
	checker := qualify.NewAuthorisationChecker(s.fetcher, nil, s.logger)
	opts = append(opts, qualify.WithLogger(s.logger))
	svc, err := qualify.New(s.registry, checker, opts...)
	s.Require().NoError(err)
	return svc
}

func (s *ServiceSuite) TestConstruction() {
	checker := qualify.NewAuthorisationChecker(s.fetcher, nil, s.logger)

	s.Run("registry searcher is required", func() {
		_, err := qualify.New(nil, checker)
		s.Error(err)
	})

	s.Run("authorisation checker is required", func() {
		_, err := qualify.New(s.registry, nil)
		s.Error(err)
	})
}

func (s *ServiceSuite) TestQualifyEstablishedDealer() {
	candidate := qualify.RegistryCandidate{
		Title:         "Acme Motors Limited",
		Status:        "active",
		CompanyNumber: "12345678",
		Postcode:      "AB1 2CD",
		CreationDate:  "2022-05-01",
	}
	// One registry search per name variant, in variant order.
	gomock.InOrder(
		s.registry.EXPECT().Search(gomock.Any(), "ACME MOTORS LTD").Return([]qualify.RegistryCandidate{candidate}, nil),
		s.registry.EXPECT().Search(gomock.Any(), "ACME LTD").Return(nil, nil),
		s.registry.EXPECT().Search(gomock.Any(), "ACME MOTORS").Return(nil, nil),
	)
	s.fetcher.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		Return(qualify.RegisterPage{Text: "no results for acme", URL: "u"}, nil).
		Times(2)
	s.ratings.EXPECT().
		Rating(gomock.Any(), "Acme Motors Ltd", "AB1 2CD").
		Return(floatPtr(4.5), nil)
	s.inventory.EXPECT().
		Estimate(gomock.Any(), "https://acmemotors.example", "Acme Motors Ltd").
		Return(intPtr(25), nil)

	svc := s.newService(
		qualify.WithRatingSource(s.ratings),
		qualify.WithInventoryEstimator(s.inventory),
	)
	result, err := svc.Qualify(s.ctx, qualify.DealerQuery{
		Name:       "Acme Motors Ltd",
		Postcode:   "AB1 2CD",
		WebsiteURL: "https://acmemotors.example",
	})
	s.Require().NoError(err)

	s.Run("match scores exact name, exact postcode and active status", func() {
		s.Require().True(result.Match.Matched())
		s.Equal("12345678", result.Match.Candidate.CompanyNumber)
		s.GreaterOrEqual(result.Match.Score, 190)
		s.Equal(3, result.Match.CompanyAgeYears)
		s.Equal("AB12CD", result.Match.Postcode)
	})

	s.Run("established dealer passes despite a negative register check", func() {
		s.Equal(qualify.AuthorisationNo, result.Authorisation.Status)
		s.Equal(qualify.OutcomePass, result.Decision.Outcome)
		s.Equal([]string{
			qualify.ReasonQualified,
			qualify.ReasonTradingUnregistered,
			qualify.ReasonInventorySufficient,
		}, result.Decision.Reasons)
	})

	s.Run("peripheral signals are carried through", func() {
		s.Require().NotNil(result.Signals.Rating)
		s.InDelta(4.5, *result.Signals.Rating, 0.001)
		s.Require().NotNil(result.Signals.InventoryEstimate)
		s.Equal(25, *result.Signals.InventoryEstimate)
		s.Equal("active", result.Signals.CompanyStatus)
	})
}

func (s *ServiceSuite) TestQualifyAllCollaboratorsDown() {
	s.registry.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("registry unavailable")).
		Times(2)
	s.fetcher.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		Return(qualify.RegisterPage{}, errors.New("register unavailable")).
		Times(2)
	s.ratings.EXPECT().
		Rating(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("rating unavailable"))

	svc := s.newService(qualify.WithRatingSource(s.ratings))
	result, err := svc.Qualify(s.ctx, qualify.DealerQuery{
		Name:     "Acme Motors",
		Postcode: "AB1 2CD",
	})
	s.Require().NoError(err)

	s.False(result.Match.Matched())
	s.Equal(qualify.StatusNotFound, result.Signals.CompanyStatus)
	s.Zero(result.Signals.CompanyAgeYears)
	s.Equal(qualify.AuthorisationUnknown, result.Authorisation.Status)
	s.Nil(result.Signals.Rating)
	s.Nil(result.Signals.InventoryEstimate)

	// Total signal failure still reaches a decision, never an error.
	s.Equal(qualify.OutcomePass, result.Decision.Outcome)
	s.Equal([]string{qualify.ReasonQualified, qualify.ReasonFCAUnknown}, result.Decision.Reasons)
}

func (s *ServiceSuite) TestQualifyDefunctCompany() {
	candidate := qualify.RegistryCandidate{
		Title:        "Acme Motors",
		Status:       "dissolved",
		Postcode:     "AB1 2CD",
		CreationDate: "2010-01-01",
	}
	s.registry.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return([]qualify.RegistryCandidate{candidate}, nil).
		Times(2)
	s.fetcher.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		Return(qualify.RegisterPage{Text: "status: authorised", URL: "u"}, nil)

	svc := s.newService()
	result, err := svc.Qualify(s.ctx, qualify.DealerQuery{Name: "Acme Motors", Postcode: "AB1 2CD"})
	s.Require().NoError(err)

	// A dissolved company rejects regardless of register status.
	s.Equal(qualify.AuthorisationYes, result.Authorisation.Status)
	s.Equal(qualify.OutcomeReject, result.Decision.Outcome)
	s.Equal([]string{qualify.ReasonCompanyDefunct}, result.Decision.Reasons)
}

func (s *ServiceSuite) TestQualifyValidation() {
	svc := s.newService()

	_, err := svc.Qualify(s.ctx, qualify.DealerQuery{Name: "   "})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

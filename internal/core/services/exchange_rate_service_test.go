package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wallbit/exchange-rates-api/internal/apperrors"
	"github.com/wallbit/exchange-rates-api/internal/core/domain"
	portssvc "github.com/wallbit/exchange-rates-api/internal/core/ports/services"
	"github.com/wallbit/exchange-rates-api/internal/core/services"
	"github.com/wallbit/exchange-rates-api/internal/dto"
)

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRepo *MockExchangeRateRepository
	service  portssvc.ExchangeRateSvcFacade
	health   portssvc.HealthSvc
}

func (s *ExchangeRateServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockExchangeRateRepository)
	svc := services.NewExchangeRateService(s.mockRepo)
	s.service = svc
	s.health = svc
}

func decimalPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func (s *ExchangeRateServiceTestSuite) TestCreateExchangeRate_TypeOnly() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{Type: "blue"}

	stored := &domain.ExchangeRate{ID: 7, Type: "blue", CreatedAt: time.Now()}

	s.mockRepo.On("SaveExchangeRate", ctx, mock.MatchedBy(func(p domain.NewExchangeRate) bool {
		return p.Type == "blue" && !p.Buy.Valid && !p.Sell.Valid && !p.Rate.Valid && !p.Diff.Valid
	})).Return(int64(7), nil).Once()
	s.mockRepo.On("FindExchangeRateByID", ctx, int64(7)).Return(stored, nil).Once()

	created, err := s.service.CreateExchangeRate(ctx, req)

	s.Require().NoError(err)
	s.Require().NotNil(created)
	s.Equal(int64(7), created.ID)
	s.Equal("blue", created.Type)
	s.False(created.Rate.Valid)
	s.False(created.Diff.Valid)

	s.mockRepo.AssertExpectations(s.T())
}

func (s *ExchangeRateServiceTestSuite) TestCreateExchangeRate_ValuesStoredVerbatim() {
	ctx := context.Background()
	// Caller-supplied rate/diff intentionally disagree with the buy/sell
	// midpoint; the manual path must not re-derive them.
	req := dto.CreateExchangeRateRequest{
		Type: "tarjeta",
		Buy:  decimalPtr("1400"),
		Sell: decimalPtr("1500"),
		Rate: decimalPtr("9999"),
		Diff: decimalPtr("1"),
	}

	stored := &domain.ExchangeRate{ID: 8, Type: "tarjeta"}

	s.mockRepo.On("SaveExchangeRate", ctx, mock.MatchedBy(func(p domain.NewExchangeRate) bool {
		return p.Rate.Valid && p.Rate.Decimal.Equal(decimal.RequireFromString("9999")) &&
			p.Diff.Valid && p.Diff.Decimal.Equal(decimal.RequireFromString("1"))
	})).Return(int64(8), nil).Once()
	s.mockRepo.On("FindExchangeRateByID", ctx, int64(8)).Return(stored, nil).Once()

	created, err := s.service.CreateExchangeRate(ctx, req)

	s.Require().NoError(err)
	s.Equal(int64(8), created.ID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ExchangeRateServiceTestSuite) TestListExchangeRates_Success() {
	ctx := context.Background()
	stored := []domain.ExchangeRate{
		{ID: 2, Type: "oficial"},
		{ID: 1, Type: "blue"},
	}

	s.mockRepo.On("ListExchangeRates", ctx, 100).Return(stored, nil).Once()

	rates, err := s.service.ListExchangeRates(ctx, 100)

	s.Require().NoError(err)
	s.Require().Len(rates, 2)
	// Repository ordering (newest id first) passes through untouched.
	s.Equal(int64(2), rates[0].ID)
	s.Equal(int64(1), rates[1].ID)
}

func (s *ExchangeRateServiceTestSuite) TestListExchangeRates_NilBecomesEmptySlice() {
	ctx := context.Background()

	s.mockRepo.On("ListExchangeRates", ctx, 100).Return(nil, nil).Once()

	rates, err := s.service.ListExchangeRates(ctx, 100)

	s.Require().NoError(err)
	s.NotNil(rates)
	s.Empty(rates)
}

func (s *ExchangeRateServiceTestSuite) TestGetExchangeRateByID_NotFound() {
	ctx := context.Background()

	s.mockRepo.On("FindExchangeRateByID", ctx, int64(42)).Return(nil, apperrors.ErrNotFound).Once()

	rate, err := s.service.GetExchangeRateByID(ctx, 42)

	s.Require().Error(err)
	s.Nil(rate)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ExchangeRateServiceTestSuite) TestReady_DelegatesToPing() {
	ctx := context.Background()

	s.mockRepo.On("Ping", ctx).Return(nil).Once()

	s.NoError(s.health.Ready(ctx))
	s.mockRepo.AssertExpectations(s.T())
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}

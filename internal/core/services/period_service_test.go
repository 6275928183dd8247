package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/caissebox/caissebox/internal/apperrors"
	"github.com/caissebox/caissebox/internal/core/domain"
	portssvc "github.com/caissebox/caissebox/internal/core/ports/services"
	"github.com/caissebox/caissebox/internal/core/services"
	"github.com/caissebox/caissebox/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PeriodServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockPeriodRepository
	mockReporting *MockReportingRepository
	mockAudit     *MockAuditSvc
	store         *fakeSessionStore
	service       portssvc.PeriodSvc
}

func (suite *PeriodServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPeriodRepository)
	suite.mockReporting = new(MockReportingRepository)
	suite.mockAudit = new(MockAuditSvc)
	suite.store = &fakeSessionStore{}
	suite.service = services.NewPeriodService(suite.mockRepo, suite.mockReporting, suite.store, suite.mockAudit)
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_StartsOpen() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreatePeriodRequest{
		StartDate:     "2025-01-01",
		InitialAmount: decimal.NewFromInt(1000),
	}

	suite.mockRepo.On("Create", ctx, mock.MatchedBy(func(p domain.Period) bool {
		return p.Status == domain.PeriodOpen && p.EndDate == nil && p.EndingBalance == nil &&
			p.InitialAmount.Equal(req.InitialAmount)
	})).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, domain.ActionCreate, "period", mock.AnythingOfType("string"), req.StartDate, userID).Return(nil).Once()

	period, err := suite.service.CreatePeriod(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(period)
	suite.True(period.IsOpen())
	suite.Nil(period.EndDate)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_BadDate() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{StartDate: "01/01/2025", InitialAmount: decimal.NewFromInt(100)}

	period, err := suite.service.CreatePeriod(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(period)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PeriodServiceTestSuite) TestClosePeriod_ComputesEndingBalance() {
	ctx := context.Background()
	userID := uuid.NewString()
	periodID := uuid.NewString()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	open := &domain.Period{
		PeriodID:      periodID,
		StartDate:     start,
		InitialAmount: decimal.NewFromInt(1000),
		Status:        domain.PeriodOpen,
	}

	suite.mockRepo.On("FindByID", ctx, periodID).Return(open, nil).Once()
	suite.mockReporting.On("Total", ctx, domain.KindIncome, mock.AnythingOfType("*domain.Period")).
		Return(decimal.NewFromInt(300), nil).Once()
	suite.mockReporting.On("Total", ctx, domain.KindExpense, mock.AnythingOfType("*domain.Period")).
		Return(decimal.NewFromInt(50), nil).Once()
	suite.mockRepo.On("Update", ctx, mock.MatchedBy(func(p domain.Period) bool {
		return p.Status == domain.PeriodClosed &&
			p.EndDate != nil && p.EndDate.Equal(end) &&
			p.EndingBalance != nil && p.EndingBalance.Equal(decimal.NewFromInt(1250))
	})).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, domain.ActionUpdate, "period", periodID, mock.AnythingOfType("string"), userID).Return(nil).Once()

	period, err := suite.service.ClosePeriod(ctx, periodID, &end, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(period)
	suite.Equal(domain.PeriodClosed, period.Status)
	suite.Require().NotNil(period.EndingBalance)
	suite.True(period.EndingBalance.Equal(decimal.NewFromInt(1250)))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockReporting.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestClosePeriod_AlreadyClosed() {
	ctx := context.Background()
	periodID := uuid.NewString()
	closed := &domain.Period{
		PeriodID:  periodID,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:    domain.PeriodClosed,
	}

	suite.mockRepo.On("FindByID", ctx, periodID).Return(closed, nil).Once()

	period, err := suite.service.ClosePeriod(ctx, periodID, nil, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(period)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestClosePeriod_EndBeforeStart() {
	ctx := context.Background()
	periodID := uuid.NewString()
	open := &domain.Period{
		PeriodID:  periodID,
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:    domain.PeriodOpen,
	}
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("FindByID", ctx, periodID).Return(open, nil).Once()

	period, err := suite.service.ClosePeriod(ctx, periodID, &end, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(period)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PeriodServiceTestSuite) TestCurrentPeriod_NoneSelected() {
	period, err := suite.service.CurrentPeriod(context.Background())

	suite.Require().NoError(err)
	suite.Nil(period)
}

func (suite *PeriodServiceTestSuite) TestCurrentPeriod_StalePointer() {
	ctx := context.Background()
	suite.store.periodID = "gone"

	suite.mockRepo.On("FindByID", ctx, "gone").Return(nil, apperrors.ErrNotFound).Once()

	period, err := suite.service.CurrentPeriod(ctx)

	suite.Require().NoError(err)
	suite.Nil(period)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestSelectPeriod_WritesPointer() {
	ctx := context.Background()
	periodID := uuid.NewString()
	expected := &domain.Period{PeriodID: periodID, Status: domain.PeriodOpen}

	suite.mockRepo.On("FindByID", ctx, periodID).Return(expected, nil).Once()

	period, err := suite.service.SelectPeriod(ctx, periodID)

	suite.Require().NoError(err)
	suite.Equal(expected, period)
	suite.Equal(periodID, suite.store.periodID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestSelectPeriod_Unknown() {
	ctx := context.Background()
	periodID := uuid.NewString()

	suite.mockRepo.On("FindByID", ctx, periodID).Return(nil, apperrors.ErrNotFound).Once()

	period, err := suite.service.SelectPeriod(ctx, periodID)

	suite.Require().Error(err)
	suite.Nil(period)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Empty(suite.store.periodID)
}

func (suite *PeriodServiceTestSuite) TestDeletePeriod_ClearsSelection() {
	ctx := context.Background()
	userID := uuid.NewString()
	periodID := uuid.NewString()
	suite.store.periodID = periodID

	suite.mockRepo.On("Delete", ctx, periodID).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, domain.ActionDelete, "period", periodID, "", userID).Return(nil).Once()

	err := suite.service.DeletePeriod(ctx, periodID, userID)

	suite.Require().NoError(err)
	suite.Empty(suite.store.periodID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func TestPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}

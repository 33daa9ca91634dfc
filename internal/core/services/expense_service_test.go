package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	portsrepo "github.com/spendtrack/spendtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/spendtrack/spendtrack_backend/internal/core/ports/services"
	"github.com/spendtrack/spendtrack_backend/internal/core/services"
	"github.com/spendtrack/spendtrack_backend/internal/dto"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindExpensesByOwner(ctx context.Context, ownerUserID string, filter portsrepo.ListExpensesFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, ownerUserID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) MarkExpenseDeleted(ctx context.Context, expenseID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, expenseID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Mock CurrencySvcFacade ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockExpenseRepository
	mockCurrency *MockCurrencyService
	service      portssvc.ExpenseSvcFacade
	userID       string
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExpenseRepository)
	suite.mockCurrency = new(MockCurrencyService)
	suite.service = services.NewExpenseService(suite.mockRepo, suite.mockCurrency)
	suite.userID = uuid.NewString()
}

func (suite *ExpenseServiceTestSuite) knownCurrency(code string) {
	suite.mockCurrency.On("GetCurrencyByCode", mock.Anything, code).Return(&domain.Currency{CurrencyCode: code}, nil)
}

// --- Test Cases ---

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	amount := decimal.NewFromFloat(450.50)
	req := dto.CreateExpenseRequest{
		Description: "Groceries",
		Amount:      &amount,
		Currency:    "inr",
		Date:        "2024-01-05",
	}
	suite.knownCurrency("INR")
	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.OwnerUserID == suite.userID &&
			e.Description == req.Description &&
			e.Amount.Equal(amount) &&
			e.CurrencyCode == "INR" &&
			e.Date.Format("2006-01-02") == req.Date &&
			e.CreatedBy == suite.userID
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.NotEmpty(expense.ExpenseID)
	suite.Equal("INR", expense.CurrencyCode)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCurrency.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ZeroAmount() {
	ctx := context.Background()
	amount := decimal.Zero
	req := dto.CreateExpenseRequest{
		Description: "Comped meal",
		Amount:      &amount,
		Currency:    "INR",
		Date:        "2024-01-05",
	}
	suite.knownCurrency("INR")
	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Amount.IsZero()
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(expense.Amount.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_UnknownCurrency() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)
	req := dto.CreateExpenseRequest{
		Description: "Groceries",
		Amount:      &amount,
		Currency:    "XYZ",
		Date:        "2024-01-05",
	}
	suite.mockCurrency.On("GetCurrencyByCode", mock.Anything, "XYZ").Return(nil, apperrors.ErrNotFound).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(expense)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestGetExpenseByID_NotOwner() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	foreign := &domain.Expense{
		ExpenseID:   expenseID,
		OwnerUserID: uuid.NewString(),
	}
	suite.mockRepo.On("FindExpenseByID", ctx, expenseID).Return(foreign, nil).Once()

	expense, err := suite.service.GetExpenseByID(ctx, suite.userID, expenseID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(expense)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_PassesFilter() {
	ctx := context.Background()
	params := dto.ListExpensesParams{Search: "grocer", Limit: 10, Offset: 20}
	expected := []domain.Expense{{ExpenseID: uuid.NewString(), OwnerUserID: suite.userID}}
	suite.mockRepo.On("FindExpensesByOwner", ctx, suite.userID, portsrepo.ListExpensesFilter{
		Search: "grocer", Limit: 10, Offset: 20,
	}).Return(expected, nil).Once()

	expenses, err := suite.service.ListExpenses(ctx, suite.userID, params)

	suite.Require().NoError(err)
	suite.Len(expenses, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_PartialUpdate() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	existing := &domain.Expense{
		ExpenseID:    expenseID,
		OwnerUserID:  suite.userID,
		Description:  "Old description",
		Amount:       decimal.NewFromInt(100),
		CurrencyCode: "INR",
		Date:         time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	newDescription := "New description"
	req := dto.UpdateExpenseRequest{Description: &newDescription}

	suite.mockRepo.On("FindExpenseByID", ctx, expenseID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Description == newDescription &&
			e.Amount.Equal(decimal.NewFromInt(100)) &&
			e.CurrencyCode == "INR" &&
			e.LastUpdatedBy == suite.userID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateExpense(ctx, suite.userID, expenseID, req)

	suite.Require().NoError(err)
	suite.Equal(newDescription, updated.Description)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_ChangesCurrency() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	existing := &domain.Expense{
		ExpenseID:    expenseID,
		OwnerUserID:  suite.userID,
		CurrencyCode: "INR",
	}
	newCurrency := "usd"
	req := dto.UpdateExpenseRequest{Currency: &newCurrency}

	suite.knownCurrency("USD")
	suite.mockRepo.On("FindExpenseByID", ctx, expenseID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.CurrencyCode == "USD"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateExpense(ctx, suite.userID, expenseID, req)

	suite.Require().NoError(err)
	suite.Equal("USD", updated.CurrencyCode)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_Success() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	existing := &domain.Expense{ExpenseID: expenseID, OwnerUserID: suite.userID}

	suite.mockRepo.On("FindExpenseByID", ctx, expenseID).Return(existing, nil).Once()
	suite.mockRepo.On("MarkExpenseDeleted", ctx, expenseID, mock.AnythingOfType("time.Time"), suite.userID).Return(nil).Once()

	err := suite.service.DeleteExpense(ctx, suite.userID, expenseID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_NotFound() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	suite.mockRepo.On("FindExpenseByID", ctx, expenseID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteExpense(ctx, suite.userID, expenseID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkExpenseDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}

package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	portssvc "github.com/spendtrack/spendtrack_backend/internal/core/ports/services"
	"github.com/spendtrack/spendtrack_backend/internal/dto"
	"github.com/spendtrack/spendtrack_backend/internal/handlers"
	"github.com/spendtrack/spendtrack_backend/internal/middleware"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Summary(ctx context.Context, userID string) (*domain.ReportSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportSummary), args.Error(1)
}

func (m *MockReportingService) Monthly(ctx context.Context, userID string) (domain.MonthlyBreakdown, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.MonthlyBreakdown), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---
type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockReportingService
	jwtSecret   string
	userID      string
}

// generateTestToken creates a JWT accepted by the auth middleware.
func (suite *ReportHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "spendtrack-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockReportingService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterReportRoutes(v1, suite.mockService, "INR")
}

func (suite *ReportHandlerTestSuite) doRequest(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

// --- Test Cases ---

func (suite *ReportHandlerTestSuite) TestGetSummary_Success() {
	summary := &domain.ReportSummary{
		BaseCurrency:   "INR",
		TotalSpent:     decimal.RequireFromString("102"),
		AverageExpense: decimal.RequireFromString("34"),
		MaxExpense:     decimal.RequireFromString("100"),
	}
	suite.mockService.On("Summary", mock.Anything, suite.userID).Return(summary, nil).Once()

	rec := suite.doRequest("/api/v1/reports/summary", suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusOK, rec.Code)
	var resp dto.ReportSummaryResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal("INR", resp.BaseCurrency)
	suite.True(resp.TotalSpent.Equal(decimal.NewFromInt(102)))
	suite.True(resp.AverageExpense.Equal(decimal.NewFromInt(34)))
	suite.True(resp.MaxExpense.Equal(decimal.NewFromInt(100)))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportHandlerTestSuite) TestGetSummary_Unauthorized() {
	rec := suite.doRequest("/api/v1/reports/summary", "")

	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Summary", mock.Anything, mock.Anything)
}

func (suite *ReportHandlerTestSuite) TestGetSummary_RatesUnavailable() {
	suite.mockService.On("Summary", mock.Anything, suite.userID).Return(nil, apperrors.ErrRateFetch).Once()

	rec := suite.doRequest("/api/v1/reports/summary", suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusBadGateway, rec.Code)
}

func (suite *ReportHandlerTestSuite) TestGetMonthly_Success() {
	breakdown := domain.MonthlyBreakdown{
		"2024-01": decimal.RequireFromString("101"),
		"2024-02": decimal.RequireFromString("1"),
	}
	suite.mockService.On("Monthly", mock.Anything, suite.userID).Return(breakdown, nil).Once()

	rec := suite.doRequest("/api/v1/reports/monthly", suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusOK, rec.Code)
	var resp dto.MonthlyReportResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal("INR", resp.BaseCurrency)
	suite.Len(resp.Months, 2)
	suite.True(resp.Months["2024-01"].Equal(decimal.NewFromInt(101)))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportHandlerTestSuite) TestGetMonthly_UnknownCurrencyStrict() {
	suite.mockService.On("Monthly", mock.Anything, suite.userID).Return(nil, apperrors.ErrUnknownCurrency).Once()

	rec := suite.doRequest("/api/v1/reports/monthly", suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (suite *ReportHandlerTestSuite) TestExportPDF_Success() {
	summary := &domain.ReportSummary{
		BaseCurrency:   "INR",
		TotalSpent:     decimal.NewFromInt(102),
		AverageExpense: decimal.NewFromInt(34),
		MaxExpense:     decimal.NewFromInt(100),
	}
	breakdown := domain.MonthlyBreakdown{"2024-01": decimal.NewFromInt(102)}
	suite.mockService.On("Summary", mock.Anything, suite.userID).Return(summary, nil).Once()
	suite.mockService.On("Monthly", mock.Anything, suite.userID).Return(breakdown, nil).Once()

	rec := suite.doRequest("/api/v1/reports/pdf", suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("application/pdf", rec.Header().Get("Content-Type"))
	suite.Contains(rec.Header().Get("Content-Disposition"), "expense_report.pdf")
	suite.True(len(rec.Body.Bytes()) > 4)
	suite.Equal("%PDF", rec.Body.String()[:4])
	suite.mockService.AssertExpectations(suite.T())
}

func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

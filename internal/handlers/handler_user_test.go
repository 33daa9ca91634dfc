package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	portssvc "github.com/spendtrack/spendtrack_backend/internal/core/ports/services"
	"github.com/spendtrack/spendtrack_backend/internal/dto"
	"github.com/spendtrack/spendtrack_backend/internal/handlers"
	"github.com/spendtrack/spendtrack_backend/internal/middleware"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) FindOrCreateOAuthUser(ctx context.Context, authProvider, providerUserID, email, name string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	args := m.Called(ctx, userID, requestingUserID)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type UserHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockUserService
	jwtSecret   string
	userID      string
}

func (suite *UserHandlerTestSuite) generateTestToken(userID string) string {
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

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockUserService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterUserRoutes(v1, suite.mockService)
}

func (suite *UserHandlerTestSuite) doJSONRequest(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

// --- Test Cases ---

func (suite *UserHandlerTestSuite) TestUpdateMe_Success() {
	updated := &domain.User{
		UserID:   suite.userID,
		Username: "alex",
		Name:     "Alex Doe",
	}
	suite.mockService.On("UpdateUser", mock.Anything, suite.userID, mock.Anything, suite.userID).Return(updated, nil).Once()

	rec := suite.doJSONRequest(http.MethodPut, "/api/v1/users/me", `{"name":"Alex Doe"}`)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "Alex Doe")
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestUpdateMe_ValidationError() {
	err := fmt.Errorf("%w: name too long", apperrors.ErrValidation)
	suite.mockService.On("UpdateUser", mock.Anything, suite.userID, mock.Anything, suite.userID).Return(nil, err).Once()

	rec := suite.doJSONRequest(http.MethodPut, "/api/v1/users/me", `{"name":"Alex Doe"}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *UserHandlerTestSuite) TestUpdateMe_NotFound() {
	err := fmt.Errorf("failed to find user for update: %w", apperrors.ErrNotFound)
	suite.mockService.On("UpdateUser", mock.Anything, suite.userID, mock.Anything, suite.userID).Return(nil, err).Once()

	rec := suite.doJSONRequest(http.MethodPut, "/api/v1/users/me", `{"name":"Alex Doe"}`)

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *UserHandlerTestSuite) TestDeleteMe_NotFound() {
	err := fmt.Errorf("failed to delete user in service: %w", apperrors.ErrNotFound)
	suite.mockService.On("DeleteUser", mock.Anything, suite.userID, suite.userID).Return(err).Once()

	rec := suite.doJSONRequest(http.MethodDelete, "/api/v1/users/me", "")

	suite.Equal(http.StatusNotFound, rec.Code)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

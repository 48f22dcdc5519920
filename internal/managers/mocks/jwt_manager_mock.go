package mocks

import (
	"expense-tracker/internal/schemas"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

// MockJwtManager is a mock of the JWTManager.
// It is used to simulate JWT operations in tests.
type MockJwtManager struct {
	mock.Mock
}

// GenerateJWT returns a mock JWT string and an optional error, simulating the behavior of JWT generation in tests.
func (m *MockJwtManager) GenerateJWT(claims jwt.Claims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

// ValidateJWT returns mock JWT claims and an optional error, simulating the behavior of JWT validation in tests.
func (m *MockJwtManager) ValidateJWT(tokenString string) (jwt.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(jwt.Claims)
	return claims, args.Error(1)
}

// GenerateClaims returns mock JWT claims for the given account.
func (m *MockJwtManager) GenerateClaims(account *schemas.Account) jwt.Claims {
	args := m.Called(account)
	return args.Get(0).(jwt.Claims)
}

// JWTMiddleware lets every request through.
func (m *MockJwtManager) JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

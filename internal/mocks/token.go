package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/pageza/alchemorsel-v2/scaler/internal/types"
)

// MockTokenService is a mock implementation of the token validator
type MockTokenService struct {
	mock.Mock
}

// ValidateToken mocks the ValidateToken method
func (m *MockTokenService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kickmyb/internal/auth"
	apperrors "kickmyb/internal/errors"
	"kickmyb/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, username string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, username, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func TestAccountService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful signup",
			username: " alice ",
			password: "secret",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:          "username too short",
			username:      "a",
			password:      "secret",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrUsernameTooShort,
		},
		{
			name:          "password too short",
			username:      "alice",
			password:      "abc",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrPasswordTooShort,
		},
		{
			name:     "username taken",
			username: "alice",
			password: "secret",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(&model.User{ID: 1, Username: "alice"}, nil)
			},
			expectedError: apperrors.ErrUsernameTaken,
		},
		{
			name:     "username taken concurrently",
			username: "alice",
			password: "secret",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAccountService(mockRepo, auth.NewJWTService("test-secret"), new(MockTokenStore))
			user, err := service.Signup(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "alice", user.Username)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAccountService_Login(t *testing.T) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	alice := &model.User{ID: 3, Username: "alice", PasswordHash: string(hashedPassword)}

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "alice",
			password: "secret",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUsername", mock.Anything, "alice").Return(alice, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(3), "alice", auth.RefreshTokenExpiry).Return(nil)
			},
		},
		{
			name:     "unknown user",
			username: "nobody",
			password: "secret",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUsername", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrBadCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUsername", mock.Anything, "alice").Return(alice, nil)
			},
			expectedError: apperrors.ErrBadCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			service := NewAccountService(mockRepo, auth.NewJWTService("test-secret"), mockTokenStore)
			accessToken, refreshToken, user, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.Equal(t, alice.ID, user.ID)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAccountService_RefreshAndLogout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(3, "alice")
	require.NoError(t, err)
	accessToken, err := jwtService.GenerateAccessToken(3, "alice")
	require.NoError(t, err)

	t.Run("stored token refreshes", func(t *testing.T) {
		store := new(MockTokenStore)
		store.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(3), "alice", nil)

		service := NewAccountService(new(MockUserRepository), jwtService, store)
		newAccess, err := service.RefreshToken(context.Background(), refreshToken)
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(newAccess)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
		store.AssertExpectations(t)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		store := new(MockTokenStore)
		store.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), "", auth.ErrTokenNotFound)

		service := NewAccountService(new(MockUserRepository), jwtService, store)
		_, err := service.RefreshToken(context.Background(), refreshToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("access token cannot refresh", func(t *testing.T) {
		service := NewAccountService(new(MockUserRepository), jwtService, new(MockTokenStore))
		_, err := service.RefreshToken(context.Background(), accessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("logout deletes stored token", func(t *testing.T) {
		store := new(MockTokenStore)
		store.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

		service := NewAccountService(new(MockUserRepository), jwtService, store)
		assert.NoError(t, service.Logout(context.Background(), refreshToken))
		store.AssertExpectations(t)
	})

	t.Run("logout with garbage", func(t *testing.T) {
		service := NewAccountService(new(MockUserRepository), jwtService, new(MockTokenStore))
		assert.ErrorIs(t, service.Logout(context.Background(), "garbage"), apperrors.ErrInvalidRefreshToken)
	})
}

package services_test

import (
	"fmt"
	"testing"

	"pasartani/internal/models"
	"pasartani/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	user := &models.User{
		Name:     "Farmer One",
		Email:    "one@farm.test",
		Password: "password123",
		Role:     models.RoleFarmer,
	}

	mockRepo.On("GetByEmail", user.Email).Return(nil, fmt.Errorf("user with email %s not found", user.Email)).Once()
	mockRepo.On("Create", user).Return(nil).Once()

	err := service.RegisterUser(user)
	assert.NoError(t, err)

	// The stored password is a bcrypt hash of the original.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	existing := &models.User{ID: "u1", Email: "one@farm.test"}
	mockRepo.On("GetByEmail", "one@farm.test").Return(existing, nil).Once()

	err := service.RegisterUser(&models.User{
		Name:     "Farmer One",
		Email:    "one@farm.test",
		Password: "password123",
		Role:     models.RoleFarmer,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginAndValidate(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	stored := &models.User{
		ID:       "u1",
		Name:     "Acme Foods",
		Email:    "acme@business.test",
		Password: string(hashed),
		Role:     models.RoleBusiness,
	}
	mockRepo.On("GetByEmail", stored.Email).Return(stored, nil).Once()

	token, user, err := service.LoginUser(stored.Email, "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, stored, user)

	// The token round-trips and carries the principal's id and role.
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, models.RoleBusiness, claims["role"])
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	stored := &models.User{ID: "u1", Email: "acme@business.test", Password: string(hashed)}
	mockRepo.On("GetByEmail", stored.Email).Return(stored, nil).Once()

	token, user, err := service.LoginUser(stored.Email, "wrong")
	assert.Error(t, err)
	assert.Empty(t, token)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	mockRepo.On("GetByEmail", "nobody@business.test").Return(nil, fmt.Errorf("user with email nobody@business.test not found")).Once()

	_, _, err := service.LoginUser("nobody@business.test", "password123")
	assert.Error(t, err)
	// The error does not reveal whether the account exists.
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")
	other := services.NewAuthService(mockRepo, "other_secret")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	stored := &models.User{ID: "u1", Email: "acme@business.test", Password: string(hashed), Role: models.RoleBusiness}
	mockRepo.On("GetByEmail", stored.Email).Return(stored, nil).Once()

	token, _, err := service.LoginUser(stored.Email, "password123")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

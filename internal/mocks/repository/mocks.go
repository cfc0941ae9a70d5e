// Package repository provides testify mocks for the domain repository
// interfaces.
package repository

import (
	"context"
	"testing"

	"mediq/internal/domain/entity"
	"mediq/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock bound to the test's lifecycle.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) AccountRepo() repository.AccountRepository {
	args := m.Called()

	return args.Get(0).(repository.AccountRepository)
}

func (m *MockRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	args := m.Called()

	return args.Get(0).(repository.ProfileRepository)
}

// MockAccountRepository mocks repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func NewMockAccountRepository(t *testing.T) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) FindByVerificationTokenDigest(ctx context.Context, digest string) (*entity.Account, error) {
	args := m.Called(ctx, digest)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

// MockProfileRepository mocks repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func NewMockProfileRepository(t *testing.T) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProfileRepository) CreateDoctorProfile(ctx context.Context, profile *entity.DoctorProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *MockProfileRepository) FindDoctorProfileByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.DoctorProfile, error) {
	args := m.Called(ctx, accountID)
	if profile, ok := args.Get(0).(*entity.DoctorProfile); ok {
		return profile, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileRepository) UpdateDoctorProfile(ctx context.Context, profile *entity.DoctorProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *MockProfileRepository) CreatePatientProfile(ctx context.Context, profile *entity.PatientProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *MockProfileRepository) FindPatientProfileByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.PatientProfile, error) {
	args := m.Called(ctx, accountID)
	if profile, ok := args.Get(0).(*entity.PatientProfile); ok {
		return profile, args.Error(1)
	}

	return nil, args.Error(1)
}

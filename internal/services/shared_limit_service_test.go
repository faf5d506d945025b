package services

import (
	"log/slog"
	"testing"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// SharedLimitServiceSuite defines the test suite for SharedLimitServiceInterface
type SharedLimitServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	limitRepo   *repository_mocks.MockSharedLimitRepositoryInterface
	accountRepo *repository_mocks.MockAccountRepositoryInterface
	service     SharedLimitServiceInterface
	testUserID  uuid.UUID
	testLimitID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *SharedLimitServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.limitRepo = repository_mocks.NewMockSharedLimitRepositoryInterface(s.ctrl)
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.service = NewSharedLimitService(s.limitRepo, s.accountRepo, slog.Default())

	s.testUserID = uuid.New()
	s.testLimitID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *SharedLimitServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestSharedLimitServiceSuite runs the test suite
func TestSharedLimitServiceSuite(t *testing.T) {
	suite.Run(t, new(SharedLimitServiceSuite))
}

func (s *SharedLimitServiceSuite) TestCreateSharedLimit_Success() {
	s.limitRepo.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(limit *models.SharedCreditLimit) error {
			limit.ID = s.testLimitID
			return nil
		})

	limit, err := s.service.CreateSharedLimit(s.testUserID, &dto.CreateSharedLimitRequest{
		Name:       "Family Cards",
		TotalLimit: decimal.NewFromInt(10000),
	})

	s.NoError(err)
	s.Equal("Family Cards", limit.Name)
}

func (s *SharedLimitServiceSuite) TestCreateSharedLimit_NegativeLimit() {
	_, err := s.service.CreateSharedLimit(s.testUserID, &dto.CreateSharedLimitRequest{
		Name:       "Family Cards",
		TotalLimit: decimal.NewFromInt(-1),
	})

	s.ErrorIs(err, models.ErrNegativeSharedLimit)
}

func (s *SharedLimitServiceSuite) TestCreateSharedLimit_WithInitialMembers() {
	cardID := uuid.New()
	card := &models.Account{
		ID:          cardID,
		UserID:      s.testUserID,
		Name:        "Card A",
		AccountType: models.AccountTypeCredit,
	}

	s.limitRepo.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(limit *models.SharedCreditLimit) error {
			limit.ID = s.testLimitID
			return nil
		})
	s.limitRepo.EXPECT().GetByIDForUser(s.testLimitID, s.testUserID).
		Return(&models.SharedCreditLimit{ID: s.testLimitID, UserID: s.testUserID}, nil)
	s.accountRepo.EXPECT().GetByIDForUser(cardID, s.testUserID).Return(card, nil)
	s.accountRepo.EXPECT().Update(gomock.Any()).DoAndReturn(
		func(account *models.Account) error {
			s.Equal(&s.testLimitID, account.SharedCreditLimitID)
			return nil
		})

	_, err := s.service.CreateSharedLimit(s.testUserID, &dto.CreateSharedLimitRequest{
		Name:       "Family Cards",
		TotalLimit: decimal.NewFromInt(10000),
		AccountIDs: []string{cardID.String()},
	})

	s.NoError(err)
}

func (s *SharedLimitServiceSuite) TestAttachAccount_NonCreditRejected() {
	accountID := uuid.New()
	s.limitRepo.EXPECT().GetByIDForUser(s.testLimitID, s.testUserID).
		Return(&models.SharedCreditLimit{ID: s.testLimitID, UserID: s.testUserID}, nil)
	s.accountRepo.EXPECT().GetByIDForUser(accountID, s.testUserID).
		Return(&models.Account{ID: accountID, UserID: s.testUserID, Name: "Savings", AccountType: models.AccountTypeSavings}, nil)

	err := s.service.AttachAccount(s.testLimitID, accountID, s.testUserID)
	s.ErrorIs(err, ErrSharedLimitMemberInvalid)
}

func (s *SharedLimitServiceSuite) TestDetachAccount_ClearsReference() {
	accountID := uuid.New()
	card := &models.Account{
		ID:                  accountID,
		UserID:              s.testUserID,
		Name:                "Card A",
		AccountType:         models.AccountTypeCredit,
		SharedCreditLimitID: &s.testLimitID,
	}
	s.accountRepo.EXPECT().GetByIDForUser(accountID, s.testUserID).Return(card, nil)
	s.accountRepo.EXPECT().Update(gomock.Any()).DoAndReturn(
		func(account *models.Account) error {
			s.Nil(account.SharedCreditLimitID)
			return nil
		})

	s.NoError(s.service.DetachAccount(s.testLimitID, accountID, s.testUserID))
}

func (s *SharedLimitServiceSuite) TestDetachAccount_NotAMember() {
	accountID := uuid.New()
	s.accountRepo.EXPECT().GetByIDForUser(accountID, s.testUserID).
		Return(&models.Account{ID: accountID, UserID: s.testUserID, Name: "Card", AccountType: models.AccountTypeCredit}, nil)

	err := s.service.DetachAccount(s.testLimitID, accountID, s.testUserID)
	s.ErrorIs(err, ErrSharedLimitNotFound)
}

func (s *SharedLimitServiceSuite) TestGetSharedLimit_PoolsOutstanding() {
	limit := &models.SharedCreditLimit{
		ID:         s.testLimitID,
		UserID:     s.testUserID,
		Name:       "Family Cards",
		TotalLimit: decimal.NewFromInt(10000),
		Accounts: []models.Account{
			{ID: uuid.New(), Name: "Card A", AccountType: models.AccountTypeCredit, Balance: decimal.NewFromInt(-3000)},
			{ID: uuid.New(), Name: "Card B", AccountType: models.AccountTypeCredit, Balance: decimal.NewFromInt(-1500)},
		},
	}
	s.limitRepo.EXPECT().GetByIDWithAccounts(s.testLimitID, s.testUserID).Return(limit, nil)

	overview, err := s.service.GetSharedLimit(s.testLimitID, s.testUserID)
	s.NoError(err)
	s.True(overview.TotalOutstanding.Equal(decimal.NewFromInt(4500)))
	s.True(overview.AvailableCredit.Equal(decimal.NewFromInt(5500)))
	s.Equal(45, overview.Utilization)
	s.Len(overview.LinkedAccounts, 2)
}

func (s *SharedLimitServiceSuite) TestGetSharedLimit_NotFound() {
	s.limitRepo.EXPECT().GetByIDWithAccounts(s.testLimitID, s.testUserID).
		Return(nil, repositories.ErrSharedLimitNotFound)

	_, err := s.service.GetSharedLimit(s.testLimitID, s.testUserID)
	s.ErrorIs(err, ErrSharedLimitNotFound)
}

func (s *SharedLimitServiceSuite) TestUpdateSharedLimit_PartialUpdate() {
	existing := &models.SharedCreditLimit{
		ID:         s.testLimitID,
		UserID:     s.testUserID,
		Name:       "Family Cards",
		TotalLimit: decimal.NewFromInt(10000),
	}
	s.limitRepo.EXPECT().GetByIDForUser(s.testLimitID, s.testUserID).Return(existing, nil)
	s.limitRepo.EXPECT().Update(gomock.Any()).Return(nil)

	newLimit := decimal.NewFromInt(12000)
	updated, err := s.service.UpdateSharedLimit(s.testLimitID, s.testUserID, &dto.UpdateSharedLimitRequest{
		TotalLimit: &newLimit,
	})

	s.NoError(err)
	s.True(updated.TotalLimit.Equal(newLimit))
	s.Equal("Family Cards", updated.Name)
}

func (s *SharedLimitServiceSuite) TestDeleteSharedLimit() {
	s.limitRepo.EXPECT().Delete(s.testLimitID, s.testUserID).Return(nil)
	s.NoError(s.service.DeleteSharedLimit(s.testLimitID, s.testUserID))
}

// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package service_mocks is a generated GoMock package.
package service_mocks

import (
	dto "fintrack/internal/dto"
	models "fintrack/internal/models"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
)

// MockAccountServiceInterface is a mock of AccountServiceInterface interface.
type MockAccountServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAccountServiceInterfaceMockRecorder
}

// MockAccountServiceInterfaceMockRecorder is the mock recorder for MockAccountServiceInterface.
type MockAccountServiceInterfaceMockRecorder struct {
	mock *MockAccountServiceInterface
}

// NewMockAccountServiceInterface creates a new mock instance.
func NewMockAccountServiceInterface(ctrl *gomock.Controller) *MockAccountServiceInterface {
	mock := &MockAccountServiceInterface{ctrl: ctrl}
	mock.recorder = &MockAccountServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccountServiceInterface) EXPECT() *MockAccountServiceInterfaceMockRecorder {
	return m.recorder
}

// ArchiveAccount mocks base method.
func (m *MockAccountServiceInterface) ArchiveAccount(accountID, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ArchiveAccount", accountID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// ArchiveAccount indicates an expected call of ArchiveAccount.
func (mr *MockAccountServiceInterfaceMockRecorder) ArchiveAccount(accountID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ArchiveAccount", reflect.TypeOf((*MockAccountServiceInterface)(nil).ArchiveAccount), accountID, userID)
}

// CreateAccount mocks base method.
func (m *MockAccountServiceInterface) CreateAccount(userID uuid.UUID, req *dto.CreateAccountRequest) (*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateAccount", userID, req)
	ret0, _ := ret[0].(*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateAccount indicates an expected call of CreateAccount.
func (mr *MockAccountServiceInterfaceMockRecorder) CreateAccount(userID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateAccount", reflect.TypeOf((*MockAccountServiceInterface)(nil).CreateAccount), userID, req)
}

// DeleteAccount mocks base method.
func (m *MockAccountServiceInterface) DeleteAccount(accountID, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteAccount", accountID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteAccount indicates an expected call of DeleteAccount.
func (mr *MockAccountServiceInterfaceMockRecorder) DeleteAccount(accountID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteAccount", reflect.TypeOf((*MockAccountServiceInterface)(nil).DeleteAccount), accountID, userID)
}

// GetAccount mocks base method.
func (m *MockAccountServiceInterface) GetAccount(accountID, userID uuid.UUID) (*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAccount", accountID, userID)
	ret0, _ := ret[0].(*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAccount indicates an expected call of GetAccount.
func (mr *MockAccountServiceInterfaceMockRecorder) GetAccount(accountID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAccount", reflect.TypeOf((*MockAccountServiceInterface)(nil).GetAccount), accountID, userID)
}

// GetUserAccounts mocks base method.
func (m *MockAccountServiceInterface) GetUserAccounts(userID uuid.UUID, includeArchived bool) ([]models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserAccounts", userID, includeArchived)
	ret0, _ := ret[0].([]models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserAccounts indicates an expected call of GetUserAccounts.
func (mr *MockAccountServiceInterfaceMockRecorder) GetUserAccounts(userID, includeArchived interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserAccounts", reflect.TypeOf((*MockAccountServiceInterface)(nil).GetUserAccounts), userID, includeArchived)
}

// UnarchiveAccount mocks base method.
func (m *MockAccountServiceInterface) UnarchiveAccount(accountID, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UnarchiveAccount", accountID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// UnarchiveAccount indicates an expected call of UnarchiveAccount.
func (mr *MockAccountServiceInterfaceMockRecorder) UnarchiveAccount(accountID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UnarchiveAccount", reflect.TypeOf((*MockAccountServiceInterface)(nil).UnarchiveAccount), accountID, userID)
}

// UpdateAccount mocks base method.
func (m *MockAccountServiceInterface) UpdateAccount(accountID, userID uuid.UUID, req *dto.UpdateAccountRequest) (*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateAccount", accountID, userID, req)
	ret0, _ := ret[0].(*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateAccount indicates an expected call of UpdateAccount.
func (mr *MockAccountServiceInterfaceMockRecorder) UpdateAccount(accountID, userID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateAccount", reflect.TypeOf((*MockAccountServiceInterface)(nil).UpdateAccount), accountID, userID, req)
}

// MockTransactionServiceInterface is a mock of TransactionServiceInterface interface.
type MockTransactionServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionServiceInterfaceMockRecorder
}

// MockTransactionServiceInterfaceMockRecorder is the mock recorder for MockTransactionServiceInterface.
type MockTransactionServiceInterfaceMockRecorder struct {
	mock *MockTransactionServiceInterface
}

// NewMockTransactionServiceInterface creates a new mock instance.
func NewMockTransactionServiceInterface(ctrl *gomock.Controller) *MockTransactionServiceInterface {
	mock := &MockTransactionServiceInterface{ctrl: ctrl}
	mock.recorder = &MockTransactionServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransactionServiceInterface) EXPECT() *MockTransactionServiceInterfaceMockRecorder {
	return m.recorder
}

// CreateTransaction mocks base method.
func (m *MockTransactionServiceInterface) CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTransaction", userID, req)
	ret0, _ := ret[0].(*models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateTransaction indicates an expected call of CreateTransaction.
func (mr *MockTransactionServiceInterfaceMockRecorder) CreateTransaction(userID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTransaction", reflect.TypeOf((*MockTransactionServiceInterface)(nil).CreateTransaction), userID, req)
}

// DeleteTransaction mocks base method.
func (m *MockTransactionServiceInterface) DeleteTransaction(transactionID, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTransaction", transactionID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTransaction indicates an expected call of DeleteTransaction.
func (mr *MockTransactionServiceInterfaceMockRecorder) DeleteTransaction(transactionID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTransaction", reflect.TypeOf((*MockTransactionServiceInterface)(nil).DeleteTransaction), transactionID, userID)
}

// GetTransaction mocks base method.
func (m *MockTransactionServiceInterface) GetTransaction(transactionID, userID uuid.UUID) (*models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTransaction", transactionID, userID)
	ret0, _ := ret[0].(*models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTransaction indicates an expected call of GetTransaction.
func (mr *MockTransactionServiceInterfaceMockRecorder) GetTransaction(transactionID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTransaction", reflect.TypeOf((*MockTransactionServiceInterface)(nil).GetTransaction), transactionID, userID)
}

// ListTransactions mocks base method.
func (m *MockTransactionServiceInterface) ListTransactions(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTransactions", userID, filters)
	ret0, _ := ret[0].([]models.Transaction)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListTransactions indicates an expected call of ListTransactions.
func (mr *MockTransactionServiceInterfaceMockRecorder) ListTransactions(userID, filters interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTransactions", reflect.TypeOf((*MockTransactionServiceInterface)(nil).ListTransactions), userID, filters)
}

// UpdateTransaction mocks base method.
func (m *MockTransactionServiceInterface) UpdateTransaction(transactionID, userID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateTransaction", transactionID, userID, req)
	ret0, _ := ret[0].(*models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateTransaction indicates an expected call of UpdateTransaction.
func (mr *MockTransactionServiceInterfaceMockRecorder) UpdateTransaction(transactionID, userID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateTransaction", reflect.TypeOf((*MockTransactionServiceInterface)(nil).UpdateTransaction), transactionID, userID, req)
}

// MockCategoryServiceInterface is a mock of CategoryServiceInterface interface.
type MockCategoryServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockCategoryServiceInterfaceMockRecorder
}

// MockCategoryServiceInterfaceMockRecorder is the mock recorder for MockCategoryServiceInterface.
type MockCategoryServiceInterfaceMockRecorder struct {
	mock *MockCategoryServiceInterface
}

// NewMockCategoryServiceInterface creates a new mock instance.
func NewMockCategoryServiceInterface(ctrl *gomock.Controller) *MockCategoryServiceInterface {
	mock := &MockCategoryServiceInterface{ctrl: ctrl}
	mock.recorder = &MockCategoryServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCategoryServiceInterface) EXPECT() *MockCategoryServiceInterfaceMockRecorder {
	return m.recorder
}

// CreateCategory mocks base method.
func (m *MockCategoryServiceInterface) CreateCategory(userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCategory", userID, req)
	ret0, _ := ret[0].(*models.Category)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateCategory indicates an expected call of CreateCategory.
func (mr *MockCategoryServiceInterfaceMockRecorder) CreateCategory(userID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCategory", reflect.TypeOf((*MockCategoryServiceInterface)(nil).CreateCategory), userID, req)
}

// DeleteCategory mocks base method.
func (m *MockCategoryServiceInterface) DeleteCategory(categoryID, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteCategory", categoryID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteCategory indicates an expected call of DeleteCategory.
func (mr *MockCategoryServiceInterfaceMockRecorder) DeleteCategory(categoryID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteCategory", reflect.TypeOf((*MockCategoryServiceInterface)(nil).DeleteCategory), categoryID, userID)
}

// EnsureDefaultCategories mocks base method.
func (m *MockCategoryServiceInterface) EnsureDefaultCategories(userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnsureDefaultCategories", userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// EnsureDefaultCategories indicates an expected call of EnsureDefaultCategories.
func (mr *MockCategoryServiceInterfaceMockRecorder) EnsureDefaultCategories(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnsureDefaultCategories", reflect.TypeOf((*MockCategoryServiceInterface)(nil).EnsureDefaultCategories), userID)
}

// GetUserCategories mocks base method.
func (m *MockCategoryServiceInterface) GetUserCategories(userID uuid.UUID, categoryType string) ([]models.Category, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserCategories", userID, categoryType)
	ret0, _ := ret[0].([]models.Category)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserCategories indicates an expected call of GetUserCategories.
func (mr *MockCategoryServiceInterfaceMockRecorder) GetUserCategories(userID, categoryType interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserCategories", reflect.TypeOf((*MockCategoryServiceInterface)(nil).GetUserCategories), userID, categoryType)
}

// UpdateCategory mocks base method.
func (m *MockCategoryServiceInterface) UpdateCategory(categoryID, userID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateCategory", categoryID, userID, req)
	ret0, _ := ret[0].(*models.Category)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateCategory indicates an expected call of UpdateCategory.
func (mr *MockCategoryServiceInterfaceMockRecorder) UpdateCategory(categoryID, userID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateCategory", reflect.TypeOf((*MockCategoryServiceInterface)(nil).UpdateCategory), categoryID, userID, req)
}

// MockSharedLimitServiceInterface is a mock of SharedLimitServiceInterface interface.
type MockSharedLimitServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSharedLimitServiceInterfaceMockRecorder
}

// MockSharedLimitServiceInterfaceMockRecorder is the mock recorder for MockSharedLimitServiceInterface.
type MockSharedLimitServiceInterfaceMockRecorder struct {
	mock *MockSharedLimitServiceInterface
}

// NewMockSharedLimitServiceInterface creates a new mock instance.
func NewMockSharedLimitServiceInterface(ctrl *gomock.Controller) *MockSharedLimitServiceInterface {
	mock := &MockSharedLimitServiceInterface{ctrl: ctrl}
	mock.recorder = &MockSharedLimitServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSharedLimitServiceInterface) EXPECT() *MockSharedLimitServiceInterfaceMockRecorder {
	return m.recorder
}

// AttachAccount mocks base method.
func (m *MockSharedLimitServiceInterface) AttachAccount(limitID, accountID, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AttachAccount", limitID, accountID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// AttachAccount indicates an expected call of AttachAccount.
func (mr *MockSharedLimitServiceInterfaceMockRecorder) AttachAccount(limitID, accountID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AttachAccount", reflect.TypeOf((*MockSharedLimitServiceInterface)(nil).AttachAccount), limitID, accountID, userID)
}

// CreateSharedLimit mocks base method.
func (m *MockSharedLimitServiceInterface) CreateSharedLimit(userID uuid.UUID, req *dto.CreateSharedLimitRequest) (*models.SharedCreditLimit, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateSharedLimit", userID, req)
	ret0, _ := ret[0].(*models.SharedCreditLimit)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateSharedLimit indicates an expected call of CreateSharedLimit.
func (mr *MockSharedLimitServiceInterfaceMockRecorder) CreateSharedLimit(userID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateSharedLimit", reflect.TypeOf((*MockSharedLimitServiceInterface)(nil).CreateSharedLimit), userID, req)
}

// DeleteSharedLimit mocks base method.
func (m *MockSharedLimitServiceInterface) DeleteSharedLimit(limitID, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteSharedLimit", limitID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteSharedLimit indicates an expected call of DeleteSharedLimit.
func (mr *MockSharedLimitServiceInterfaceMockRecorder) DeleteSharedLimit(limitID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteSharedLimit", reflect.TypeOf((*MockSharedLimitServiceInterface)(nil).DeleteSharedLimit), limitID, userID)
}

// DetachAccount mocks base method.
func (m *MockSharedLimitServiceInterface) DetachAccount(limitID, accountID, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DetachAccount", limitID, accountID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DetachAccount indicates an expected call of DetachAccount.
func (mr *MockSharedLimitServiceInterfaceMockRecorder) DetachAccount(limitID, accountID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DetachAccount", reflect.TypeOf((*MockSharedLimitServiceInterface)(nil).DetachAccount), limitID, accountID, userID)
}

// GetSharedLimit mocks base method.
func (m *MockSharedLimitServiceInterface) GetSharedLimit(limitID, userID uuid.UUID) (*models.SharedLimitOverview, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSharedLimit", limitID, userID)
	ret0, _ := ret[0].(*models.SharedLimitOverview)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSharedLimit indicates an expected call of GetSharedLimit.
func (mr *MockSharedLimitServiceInterfaceMockRecorder) GetSharedLimit(limitID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSharedLimit", reflect.TypeOf((*MockSharedLimitServiceInterface)(nil).GetSharedLimit), limitID, userID)
}

// GetUserSharedLimits mocks base method.
func (m *MockSharedLimitServiceInterface) GetUserSharedLimits(userID uuid.UUID) ([]models.SharedLimitOverview, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserSharedLimits", userID)
	ret0, _ := ret[0].([]models.SharedLimitOverview)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserSharedLimits indicates an expected call of GetUserSharedLimits.
func (mr *MockSharedLimitServiceInterfaceMockRecorder) GetUserSharedLimits(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserSharedLimits", reflect.TypeOf((*MockSharedLimitServiceInterface)(nil).GetUserSharedLimits), userID)
}

// UpdateSharedLimit mocks base method.
func (m *MockSharedLimitServiceInterface) UpdateSharedLimit(limitID, userID uuid.UUID, req *dto.UpdateSharedLimitRequest) (*models.SharedCreditLimit, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateSharedLimit", limitID, userID, req)
	ret0, _ := ret[0].(*models.SharedCreditLimit)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateSharedLimit indicates an expected call of UpdateSharedLimit.
func (mr *MockSharedLimitServiceInterfaceMockRecorder) UpdateSharedLimit(limitID, userID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateSharedLimit", reflect.TypeOf((*MockSharedLimitServiceInterface)(nil).UpdateSharedLimit), limitID, userID, req)
}

// MockDashboardServiceInterface is a mock of DashboardServiceInterface interface.
type MockDashboardServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockDashboardServiceInterfaceMockRecorder
}

// MockDashboardServiceInterfaceMockRecorder is the mock recorder for MockDashboardServiceInterface.
type MockDashboardServiceInterfaceMockRecorder struct {
	mock *MockDashboardServiceInterface
}

// NewMockDashboardServiceInterface creates a new mock instance.
func NewMockDashboardServiceInterface(ctrl *gomock.Controller) *MockDashboardServiceInterface {
	mock := &MockDashboardServiceInterface{ctrl: ctrl}
	mock.recorder = &MockDashboardServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDashboardServiceInterface) EXPECT() *MockDashboardServiceInterfaceMockRecorder {
	return m.recorder
}

// GetDashboard mocks base method.
func (m *MockDashboardServiceInterface) GetDashboard(userID uuid.UUID, now time.Time) (*models.DashboardSummary, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDashboard", userID, now)
	ret0, _ := ret[0].(*models.DashboardSummary)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDashboard indicates an expected call of GetDashboard.
func (mr *MockDashboardServiceInterfaceMockRecorder) GetDashboard(userID, now interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDashboard", reflect.TypeOf((*MockDashboardServiceInterface)(nil).GetDashboard), userID, now)
}

// MockCreditInsightServiceInterface is a mock of CreditInsightServiceInterface interface.
type MockCreditInsightServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockCreditInsightServiceInterfaceMockRecorder
}

// MockCreditInsightServiceInterfaceMockRecorder is the mock recorder for MockCreditInsightServiceInterface.
type MockCreditInsightServiceInterfaceMockRecorder struct {
	mock *MockCreditInsightServiceInterface
}

// NewMockCreditInsightServiceInterface creates a new mock instance.
func NewMockCreditInsightServiceInterface(ctrl *gomock.Controller) *MockCreditInsightServiceInterface {
	mock := &MockCreditInsightServiceInterface{ctrl: ctrl}
	mock.recorder = &MockCreditInsightServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCreditInsightServiceInterface) EXPECT() *MockCreditInsightServiceInterfaceMockRecorder {
	return m.recorder
}

// GetCreditAlerts mocks base method.
func (m *MockCreditInsightServiceInterface) GetCreditAlerts(userID uuid.UUID, now time.Time) (*models.CreditAlertsOverview, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCreditAlerts", userID, now)
	ret0, _ := ret[0].(*models.CreditAlertsOverview)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCreditAlerts indicates an expected call of GetCreditAlerts.
func (mr *MockCreditInsightServiceInterfaceMockRecorder) GetCreditAlerts(userID, now interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCreditAlerts", reflect.TypeOf((*MockCreditInsightServiceInterface)(nil).GetCreditAlerts), userID, now)
}

// GetCreditSummary mocks base method.
func (m *MockCreditInsightServiceInterface) GetCreditSummary(userID uuid.UUID, now time.Time) (*models.CreditSummary, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCreditSummary", userID, now)
	ret0, _ := ret[0].(*models.CreditSummary)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCreditSummary indicates an expected call of GetCreditSummary.
func (mr *MockCreditInsightServiceInterfaceMockRecorder) GetCreditSummary(userID, now interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCreditSummary", reflect.TypeOf((*MockCreditInsightServiceInterface)(nil).GetCreditSummary), userID, now)
}

// MockTokenServiceInterface is a mock of TokenServiceInterface interface.
type MockTokenServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTokenServiceInterfaceMockRecorder
}

// MockTokenServiceInterfaceMockRecorder is the mock recorder for MockTokenServiceInterface.
type MockTokenServiceInterfaceMockRecorder struct {
	mock *MockTokenServiceInterface
}

// NewMockTokenServiceInterface creates a new mock instance.
func NewMockTokenServiceInterface(ctrl *gomock.Controller) *MockTokenServiceInterface {
	mock := &MockTokenServiceInterface{ctrl: ctrl}
	mock.recorder = &MockTokenServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTokenServiceInterface) EXPECT() *MockTokenServiceInterfaceMockRecorder {
	return m.recorder
}

// ExtractTokenFromHeader mocks base method.
func (m *MockTokenServiceInterface) ExtractTokenFromHeader(authHeader string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExtractTokenFromHeader", authHeader)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExtractTokenFromHeader indicates an expected call of ExtractTokenFromHeader.
func (mr *MockTokenServiceInterfaceMockRecorder) ExtractTokenFromHeader(authHeader interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExtractTokenFromHeader", reflect.TypeOf((*MockTokenServiceInterface)(nil).ExtractTokenFromHeader), authHeader)
}

// GenerateAccessToken mocks base method.
func (m *MockTokenServiceInterface) GenerateAccessToken(userID uuid.UUID, email string) (string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateAccessToken", userID, email)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(time.Time)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GenerateAccessToken indicates an expected call of GenerateAccessToken.
func (mr *MockTokenServiceInterfaceMockRecorder) GenerateAccessToken(userID, email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateAccessToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).GenerateAccessToken), userID, email)
}

// ValidateAccessToken mocks base method.
func (m *MockTokenServiceInterface) ValidateAccessToken(tokenString string) (*models.CustomClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateAccessToken", tokenString)
	ret0, _ := ret[0].(*models.CustomClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ValidateAccessToken indicates an expected call of ValidateAccessToken.
func (mr *MockTokenServiceInterfaceMockRecorder) ValidateAccessToken(tokenString interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateAccessToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).ValidateAccessToken), tokenString)
}

// MockMetricsRecorderInterface is a mock of MetricsRecorderInterface interface.
type MockMetricsRecorderInterface struct {
	ctrl     *gomock.Controller
	recorder *MockMetricsRecorderInterfaceMockRecorder
}

// MockMetricsRecorderInterfaceMockRecorder is the mock recorder for MockMetricsRecorderInterface.
type MockMetricsRecorderInterfaceMockRecorder struct {
	mock *MockMetricsRecorderInterface
}

// NewMockMetricsRecorderInterface creates a new mock instance.
func NewMockMetricsRecorderInterface(ctrl *gomock.Controller) *MockMetricsRecorderInterface {
	mock := &MockMetricsRecorderInterface{ctrl: ctrl}
	mock.recorder = &MockMetricsRecorderInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMetricsRecorderInterface) EXPECT() *MockMetricsRecorderInterfaceMockRecorder {
	return m.recorder
}

// IncrementCounter mocks base method.
func (m *MockMetricsRecorderInterface) IncrementCounter(name string, tags map[string]string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "IncrementCounter", name, tags)
}

// IncrementCounter indicates an expected call of IncrementCounter.
func (mr *MockMetricsRecorderInterfaceMockRecorder) IncrementCounter(name, tags interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementCounter", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).IncrementCounter), name, tags)
}

// RecordGauge mocks base method.
func (m *MockMetricsRecorderInterface) RecordGauge(name string, value float64, tags map[string]string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordGauge", name, value, tags)
}

// RecordGauge indicates an expected call of RecordGauge.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordGauge(name, value, tags interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordGauge", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordGauge), name, value, tags)
}

// RecordProcessingTime mocks base method.
func (m *MockMetricsRecorderInterface) RecordProcessingTime(name string, duration time.Duration) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordProcessingTime", name, duration)
}

// RecordProcessingTime indicates an expected call of RecordProcessingTime.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordProcessingTime(name, duration interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordProcessingTime", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordProcessingTime), name, duration)
}

// MockDemoSeederInterface is a mock of DemoSeederInterface interface.
type MockDemoSeederInterface struct {
	ctrl     *gomock.Controller
	recorder *MockDemoSeederInterfaceMockRecorder
}

// MockDemoSeederInterfaceMockRecorder is the mock recorder for MockDemoSeederInterface.
type MockDemoSeederInterfaceMockRecorder struct {
	mock *MockDemoSeederInterface
}

// NewMockDemoSeederInterface creates a new mock instance.
func NewMockDemoSeederInterface(ctrl *gomock.Controller) *MockDemoSeederInterface {
	mock := &MockDemoSeederInterface{ctrl: ctrl}
	mock.recorder = &MockDemoSeederInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDemoSeederInterface) EXPECT() *MockDemoSeederInterfaceMockRecorder {
	return m.recorder
}

// Seed mocks base method.
func (m *MockDemoSeederInterface) Seed(userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Seed", userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Seed indicates an expected call of Seed.
func (mr *MockDemoSeederInterfaceMockRecorder) Seed(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Seed", reflect.TypeOf((*MockDemoSeederInterface)(nil).Seed), userID)
}

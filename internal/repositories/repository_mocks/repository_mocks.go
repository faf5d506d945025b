// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package repository_mocks is a generated GoMock package.
package repository_mocks

import (
	models "fintrack/internal/models"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
	decimal "github.com/shopspring/decimal"
)

// MockAccountRepositoryInterface is a mock of AccountRepositoryInterface interface.
type MockAccountRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAccountRepositoryInterfaceMockRecorder
}

// MockAccountRepositoryInterfaceMockRecorder is the mock recorder for MockAccountRepositoryInterface.
type MockAccountRepositoryInterfaceMockRecorder struct {
	mock *MockAccountRepositoryInterface
}

// NewMockAccountRepositoryInterface creates a new mock instance.
func NewMockAccountRepositoryInterface(ctrl *gomock.Controller) *MockAccountRepositoryInterface {
	mock := &MockAccountRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockAccountRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccountRepositoryInterface) EXPECT() *MockAccountRepositoryInterfaceMockRecorder {
	return m.recorder
}

// AdjustBalance mocks base method.
func (m *MockAccountRepositoryInterface) AdjustBalance(accountID uuid.UUID, delta decimal.Decimal) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdjustBalance", accountID, delta)
	ret0, _ := ret[0].(error)
	return ret0
}

// AdjustBalance indicates an expected call of AdjustBalance.
func (mr *MockAccountRepositoryInterfaceMockRecorder) AdjustBalance(accountID, delta interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdjustBalance", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).AdjustBalance), accountID, delta)
}

// Archive mocks base method.
func (m *MockAccountRepositoryInterface) Archive(id, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Archive", id, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Archive indicates an expected call of Archive.
func (mr *MockAccountRepositoryInterfaceMockRecorder) Archive(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Archive", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).Archive), id, userID)
}

// ClearSharedLimitRef mocks base method.
func (m *MockAccountRepositoryInterface) ClearSharedLimitRef(sharedLimitID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearSharedLimitRef", sharedLimitID)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClearSharedLimitRef indicates an expected call of ClearSharedLimitRef.
func (mr *MockAccountRepositoryInterfaceMockRecorder) ClearSharedLimitRef(sharedLimitID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearSharedLimitRef", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).ClearSharedLimitRef), sharedLimitID)
}

// Create mocks base method.
func (m *MockAccountRepositoryInterface) Create(account *models.Account) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", account)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockAccountRepositoryInterfaceMockRecorder) Create(account interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).Create), account)
}

// Delete mocks base method.
func (m *MockAccountRepositoryInterface) Delete(id, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockAccountRepositoryInterfaceMockRecorder) Delete(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).Delete), id, userID)
}

// GetByID mocks base method.
func (m *MockAccountRepositoryInterface) GetByID(id uuid.UUID) (*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockAccountRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).GetByID), id)
}

// GetByIDForUser mocks base method.
func (m *MockAccountRepositoryInterface) GetByIDForUser(id, userID uuid.UUID) (*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIDForUser", id, userID)
	ret0, _ := ret[0].(*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByIDForUser indicates an expected call of GetByIDForUser.
func (mr *MockAccountRepositoryInterfaceMockRecorder) GetByIDForUser(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIDForUser", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).GetByIDForUser), id, userID)
}

// GetBySharedLimitID mocks base method.
func (m *MockAccountRepositoryInterface) GetBySharedLimitID(sharedLimitID uuid.UUID) ([]models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBySharedLimitID", sharedLimitID)
	ret0, _ := ret[0].([]models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBySharedLimitID indicates an expected call of GetBySharedLimitID.
func (mr *MockAccountRepositoryInterfaceMockRecorder) GetBySharedLimitID(sharedLimitID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBySharedLimitID", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).GetBySharedLimitID), sharedLimitID)
}

// GetByUserID mocks base method.
func (m *MockAccountRepositoryInterface) GetByUserID(userID uuid.UUID, includeArchived bool) ([]models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", userID, includeArchived)
	ret0, _ := ret[0].([]models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockAccountRepositoryInterfaceMockRecorder) GetByUserID(userID, includeArchived interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).GetByUserID), userID, includeArchived)
}

// GetCreditAccountsByUserID mocks base method.
func (m *MockAccountRepositoryInterface) GetCreditAccountsByUserID(userID uuid.UUID) ([]models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCreditAccountsByUserID", userID)
	ret0, _ := ret[0].([]models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCreditAccountsByUserID indicates an expected call of GetCreditAccountsByUserID.
func (mr *MockAccountRepositoryInterfaceMockRecorder) GetCreditAccountsByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCreditAccountsByUserID", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).GetCreditAccountsByUserID), userID)
}

// Unarchive mocks base method.
func (m *MockAccountRepositoryInterface) Unarchive(id, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Unarchive", id, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Unarchive indicates an expected call of Unarchive.
func (mr *MockAccountRepositoryInterfaceMockRecorder) Unarchive(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unarchive", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).Unarchive), id, userID)
}

// Update mocks base method.
func (m *MockAccountRepositoryInterface) Update(account *models.Account) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", account)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockAccountRepositoryInterfaceMockRecorder) Update(account interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).Update), account)
}

// MockTransactionRepositoryInterface is a mock of TransactionRepositoryInterface interface.
type MockTransactionRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionRepositoryInterfaceMockRecorder
}

// MockTransactionRepositoryInterfaceMockRecorder is the mock recorder for MockTransactionRepositoryInterface.
type MockTransactionRepositoryInterfaceMockRecorder struct {
	mock *MockTransactionRepositoryInterface
}

// NewMockTransactionRepositoryInterface creates a new mock instance.
func NewMockTransactionRepositoryInterface(ctrl *gomock.Controller) *MockTransactionRepositoryInterface {
	mock := &MockTransactionRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockTransactionRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransactionRepositoryInterface) EXPECT() *MockTransactionRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockTransactionRepositoryInterface) Create(transaction *models.Transaction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", transaction)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) Create(transaction interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).Create), transaction)
}

// Delete mocks base method.
func (m *MockTransactionRepositoryInterface) Delete(id, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) Delete(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).Delete), id, userID)
}

// GetAllTimeTotals mocks base method.
func (m *MockTransactionRepositoryInterface) GetAllTimeTotals(userID uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAllTimeTotals", userID)
	ret0, _ := ret[0].(decimal.Decimal)
	ret1, _ := ret[1].(decimal.Decimal)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetAllTimeTotals indicates an expected call of GetAllTimeTotals.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) GetAllTimeTotals(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAllTimeTotals", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).GetAllTimeTotals), userID)
}

// GetByDateRange mocks base method.
func (m *MockTransactionRepositoryInterface) GetByDateRange(userID uuid.UUID, from, to time.Time) ([]models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByDateRange", userID, from, to)
	ret0, _ := ret[0].([]models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByDateRange indicates an expected call of GetByDateRange.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) GetByDateRange(userID, from, to interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByDateRange", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).GetByDateRange), userID, from, to)
}

// GetByID mocks base method.
func (m *MockTransactionRepositoryInterface) GetByID(id uuid.UUID) (*models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).GetByID), id)
}

// GetByIDForUser mocks base method.
func (m *MockTransactionRepositoryInterface) GetByIDForUser(id, userID uuid.UUID) (*models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIDForUser", id, userID)
	ret0, _ := ret[0].(*models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByIDForUser indicates an expected call of GetByIDForUser.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) GetByIDForUser(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIDForUser", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).GetByIDForUser), id, userID)
}

// GetByUserID mocks base method.
func (m *MockTransactionRepositoryInterface) GetByUserID(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", userID, filters)
	ret0, _ := ret[0].([]models.Transaction)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) GetByUserID(userID, filters interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).GetByUserID), userID, filters)
}

// GetRecentByUserID mocks base method.
func (m *MockTransactionRepositoryInterface) GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecentByUserID", userID, limit)
	ret0, _ := ret[0].([]models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecentByUserID indicates an expected call of GetRecentByUserID.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) GetRecentByUserID(userID, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecentByUserID", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).GetRecentByUserID), userID, limit)
}

// Update mocks base method.
func (m *MockTransactionRepositoryInterface) Update(transaction *models.Transaction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", transaction)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) Update(transaction interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).Update), transaction)
}

// MockCategoryRepositoryInterface is a mock of CategoryRepositoryInterface interface.
type MockCategoryRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockCategoryRepositoryInterfaceMockRecorder
}

// MockCategoryRepositoryInterfaceMockRecorder is the mock recorder for MockCategoryRepositoryInterface.
type MockCategoryRepositoryInterfaceMockRecorder struct {
	mock *MockCategoryRepositoryInterface
}

// NewMockCategoryRepositoryInterface creates a new mock instance.
func NewMockCategoryRepositoryInterface(ctrl *gomock.Controller) *MockCategoryRepositoryInterface {
	mock := &MockCategoryRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockCategoryRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCategoryRepositoryInterface) EXPECT() *MockCategoryRepositoryInterfaceMockRecorder {
	return m.recorder
}

// CountByUserID mocks base method.
func (m *MockCategoryRepositoryInterface) CountByUserID(userID uuid.UUID) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountByUserID", userID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountByUserID indicates an expected call of CountByUserID.
func (mr *MockCategoryRepositoryInterfaceMockRecorder) CountByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountByUserID", reflect.TypeOf((*MockCategoryRepositoryInterface)(nil).CountByUserID), userID)
}

// Create mocks base method.
func (m *MockCategoryRepositoryInterface) Create(category *models.Category) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", category)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockCategoryRepositoryInterfaceMockRecorder) Create(category interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockCategoryRepositoryInterface)(nil).Create), category)
}

// CreateBatch mocks base method.
func (m *MockCategoryRepositoryInterface) CreateBatch(categories []models.Category) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBatch", categories)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateBatch indicates an expected call of CreateBatch.
func (mr *MockCategoryRepositoryInterfaceMockRecorder) CreateBatch(categories interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBatch", reflect.TypeOf((*MockCategoryRepositoryInterface)(nil).CreateBatch), categories)
}

// Delete mocks base method.
func (m *MockCategoryRepositoryInterface) Delete(id, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockCategoryRepositoryInterfaceMockRecorder) Delete(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockCategoryRepositoryInterface)(nil).Delete), id, userID)
}

// GetByID mocks base method.
func (m *MockCategoryRepositoryInterface) GetByID(id uuid.UUID) (*models.Category, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.Category)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockCategoryRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockCategoryRepositoryInterface)(nil).GetByID), id)
}

// GetByIDForUser mocks base method.
func (m *MockCategoryRepositoryInterface) GetByIDForUser(id, userID uuid.UUID) (*models.Category, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIDForUser", id, userID)
	ret0, _ := ret[0].(*models.Category)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByIDForUser indicates an expected call of GetByIDForUser.
func (mr *MockCategoryRepositoryInterfaceMockRecorder) GetByIDForUser(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIDForUser", reflect.TypeOf((*MockCategoryRepositoryInterface)(nil).GetByIDForUser), id, userID)
}

// GetByUserID mocks base method.
func (m *MockCategoryRepositoryInterface) GetByUserID(userID uuid.UUID) ([]models.Category, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", userID)
	ret0, _ := ret[0].([]models.Category)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockCategoryRepositoryInterfaceMockRecorder) GetByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockCategoryRepositoryInterface)(nil).GetByUserID), userID)
}

// GetByUserIDAndType mocks base method.
func (m *MockCategoryRepositoryInterface) GetByUserIDAndType(userID uuid.UUID, categoryType string) ([]models.Category, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserIDAndType", userID, categoryType)
	ret0, _ := ret[0].([]models.Category)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserIDAndType indicates an expected call of GetByUserIDAndType.
func (mr *MockCategoryRepositoryInterfaceMockRecorder) GetByUserIDAndType(userID, categoryType interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserIDAndType", reflect.TypeOf((*MockCategoryRepositoryInterface)(nil).GetByUserIDAndType), userID, categoryType)
}

// Update mocks base method.
func (m *MockCategoryRepositoryInterface) Update(category *models.Category) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", category)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockCategoryRepositoryInterfaceMockRecorder) Update(category interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockCategoryRepositoryInterface)(nil).Update), category)
}

// MockSharedLimitRepositoryInterface is a mock of SharedLimitRepositoryInterface interface.
type MockSharedLimitRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSharedLimitRepositoryInterfaceMockRecorder
}

// MockSharedLimitRepositoryInterfaceMockRecorder is the mock recorder for MockSharedLimitRepositoryInterface.
type MockSharedLimitRepositoryInterfaceMockRecorder struct {
	mock *MockSharedLimitRepositoryInterface
}

// NewMockSharedLimitRepositoryInterface creates a new mock instance.
func NewMockSharedLimitRepositoryInterface(ctrl *gomock.Controller) *MockSharedLimitRepositoryInterface {
	mock := &MockSharedLimitRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockSharedLimitRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSharedLimitRepositoryInterface) EXPECT() *MockSharedLimitRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockSharedLimitRepositoryInterface) Create(limit *models.SharedCreditLimit) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", limit)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockSharedLimitRepositoryInterfaceMockRecorder) Create(limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockSharedLimitRepositoryInterface)(nil).Create), limit)
}

// Delete mocks base method.
func (m *MockSharedLimitRepositoryInterface) Delete(id, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockSharedLimitRepositoryInterfaceMockRecorder) Delete(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockSharedLimitRepositoryInterface)(nil).Delete), id, userID)
}

// GetByID mocks base method.
func (m *MockSharedLimitRepositoryInterface) GetByID(id uuid.UUID) (*models.SharedCreditLimit, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.SharedCreditLimit)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockSharedLimitRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockSharedLimitRepositoryInterface)(nil).GetByID), id)
}

// GetByIDForUser mocks base method.
func (m *MockSharedLimitRepositoryInterface) GetByIDForUser(id, userID uuid.UUID) (*models.SharedCreditLimit, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIDForUser", id, userID)
	ret0, _ := ret[0].(*models.SharedCreditLimit)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByIDForUser indicates an expected call of GetByIDForUser.
func (mr *MockSharedLimitRepositoryInterfaceMockRecorder) GetByIDForUser(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIDForUser", reflect.TypeOf((*MockSharedLimitRepositoryInterface)(nil).GetByIDForUser), id, userID)
}

// GetByIDWithAccounts mocks base method.
func (m *MockSharedLimitRepositoryInterface) GetByIDWithAccounts(id, userID uuid.UUID) (*models.SharedCreditLimit, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIDWithAccounts", id, userID)
	ret0, _ := ret[0].(*models.SharedCreditLimit)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByIDWithAccounts indicates an expected call of GetByIDWithAccounts.
func (mr *MockSharedLimitRepositoryInterfaceMockRecorder) GetByIDWithAccounts(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIDWithAccounts", reflect.TypeOf((*MockSharedLimitRepositoryInterface)(nil).GetByIDWithAccounts), id, userID)
}

// GetByUserID mocks base method.
func (m *MockSharedLimitRepositoryInterface) GetByUserID(userID uuid.UUID) ([]models.SharedCreditLimit, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", userID)
	ret0, _ := ret[0].([]models.SharedCreditLimit)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockSharedLimitRepositoryInterfaceMockRecorder) GetByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockSharedLimitRepositoryInterface)(nil).GetByUserID), userID)
}

// GetByUserIDWithAccounts mocks base method.
func (m *MockSharedLimitRepositoryInterface) GetByUserIDWithAccounts(userID uuid.UUID) ([]models.SharedCreditLimit, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserIDWithAccounts", userID)
	ret0, _ := ret[0].([]models.SharedCreditLimit)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserIDWithAccounts indicates an expected call of GetByUserIDWithAccounts.
func (mr *MockSharedLimitRepositoryInterfaceMockRecorder) GetByUserIDWithAccounts(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserIDWithAccounts", reflect.TypeOf((*MockSharedLimitRepositoryInterface)(nil).GetByUserIDWithAccounts), userID)
}

// Update mocks base method.
func (m *MockSharedLimitRepositoryInterface) Update(limit *models.SharedCreditLimit) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", limit)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockSharedLimitRepositoryInterfaceMockRecorder) Update(limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockSharedLimitRepositoryInterface)(nil).Update), limit)
}

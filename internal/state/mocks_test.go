// ABOUTME: gomock doubles for the service interfaces the state containers consume.
// ABOUTME: Maintained by hand in mockgen's layout; `go generate ./internal/state` replaces this file.
package state_test

import (
	context "context"
	reflect "reflect"

	models "github.com/harperreed/lift/internal/models"
	gomock "go.uber.org/mock/gomock"
)

// MockWorkouts is a mock of Workouts interface.
type MockWorkouts struct {
	ctrl     *gomock.Controller
	recorder *MockWorkoutsMockRecorder
	isgomock struct{}
}

// MockWorkoutsMockRecorder is the mock recorder for MockWorkouts.
type MockWorkoutsMockRecorder struct {
	mock *MockWorkouts
}

// NewMockWorkouts creates a new mock instance.
func NewMockWorkouts(ctrl *gomock.Controller) *MockWorkouts {
	mock := &MockWorkouts{ctrl: ctrl}
	mock.recorder = &MockWorkoutsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWorkouts) EXPECT() *MockWorkoutsMockRecorder {
	return m.recorder
}

// GetAll mocks base method.
func (m *MockWorkouts) GetAll(ctx context.Context) ([]models.Workout, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx)
	ret0, _ := ret[0].([]models.Workout)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockWorkoutsMockRecorder) GetAll(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockWorkouts)(nil).GetAll), ctx)
}

// Save mocks base method.
func (m *MockWorkouts) Save(ctx context.Context, w models.Workout) (*models.Workout, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, w)
	ret0, _ := ret[0].(*models.Workout)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Save indicates an expected call of Save.
func (mr *MockWorkoutsMockRecorder) Save(ctx any, w any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockWorkouts)(nil).Save), ctx, w)
}

// Delete mocks base method.
func (m *MockWorkouts) Delete(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockWorkoutsMockRecorder) Delete(ctx any, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockWorkouts)(nil).Delete), ctx, id)
}

// MockRoutines is a mock of Routines interface.
type MockRoutines struct {
	ctrl     *gomock.Controller
	recorder *MockRoutinesMockRecorder
	isgomock struct{}
}

// MockRoutinesMockRecorder is the mock recorder for MockRoutines.
type MockRoutinesMockRecorder struct {
	mock *MockRoutines
}

// NewMockRoutines creates a new mock instance.
func NewMockRoutines(ctrl *gomock.Controller) *MockRoutines {
	mock := &MockRoutines{ctrl: ctrl}
	mock.recorder = &MockRoutinesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRoutines) EXPECT() *MockRoutinesMockRecorder {
	return m.recorder
}

// GetAll mocks base method.
func (m *MockRoutines) GetAll(ctx context.Context) ([]models.Routine, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx)
	ret0, _ := ret[0].([]models.Routine)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockRoutinesMockRecorder) GetAll(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockRoutines)(nil).GetAll), ctx)
}

// Save mocks base method.
func (m *MockRoutines) Save(ctx context.Context, r models.Routine) (*models.Routine, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, r)
	ret0, _ := ret[0].(*models.Routine)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Save indicates an expected call of Save.
func (mr *MockRoutinesMockRecorder) Save(ctx any, r any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockRoutines)(nil).Save), ctx, r)
}

// Update mocks base method.
func (m *MockRoutines) Update(ctx context.Context, id string, r models.Routine) (*models.Routine, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, id, r)
	ret0, _ := ret[0].(*models.Routine)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Update indicates an expected call of Update.
func (mr *MockRoutinesMockRecorder) Update(ctx any, id any, r any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRoutines)(nil).Update), ctx, id, r)
}

// Delete mocks base method.
func (m *MockRoutines) Delete(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockRoutinesMockRecorder) Delete(ctx any, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockRoutines)(nil).Delete), ctx, id)
}

// MockProgress is a mock of Progress interface.
type MockProgress struct {
	ctrl     *gomock.Controller
	recorder *MockProgressMockRecorder
	isgomock struct{}
}

// MockProgressMockRecorder is the mock recorder for MockProgress.
type MockProgressMockRecorder struct {
	mock *MockProgress
}

// NewMockProgress creates a new mock instance.
func NewMockProgress(ctrl *gomock.Controller) *MockProgress {
	mock := &MockProgress{ctrl: ctrl}
	mock.recorder = &MockProgressMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProgress) EXPECT() *MockProgressMockRecorder {
	return m.recorder
}

// GetEntries mocks base method.
func (m *MockProgress) GetEntries(ctx context.Context) ([]models.ProgressEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetEntries", ctx)
	ret0, _ := ret[0].([]models.ProgressEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetEntries indicates an expected call of GetEntries.
func (mr *MockProgressMockRecorder) GetEntries(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetEntries", reflect.TypeOf((*MockProgress)(nil).GetEntries), ctx)
}

// AddEntry mocks base method.
func (m *MockProgress) AddEntry(ctx context.Context, e models.ProgressEntry) (*models.ProgressEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddEntry", ctx, e)
	ret0, _ := ret[0].(*models.ProgressEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddEntry indicates an expected call of AddEntry.
func (mr *MockProgressMockRecorder) AddEntry(ctx any, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddEntry", reflect.TypeOf((*MockProgress)(nil).AddEntry), ctx, e)
}

// RemoveEntry mocks base method.
func (m *MockProgress) RemoveEntry(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveEntry", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveEntry indicates an expected call of RemoveEntry.
func (mr *MockProgressMockRecorder) RemoveEntry(ctx any, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveEntry", reflect.TypeOf((*MockProgress)(nil).RemoveEntry), ctx, id)
}

// GetProfile mocks base method.
func (m *MockProgress) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProfile", ctx)
	ret0, _ := ret[0].(*models.UserProfile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProfile indicates an expected call of GetProfile.
func (mr *MockProgressMockRecorder) GetProfile(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProfile", reflect.TypeOf((*MockProgress)(nil).GetProfile), ctx)
}

// UpdateProfile mocks base method.
func (m *MockProgress) UpdateProfile(ctx context.Context, p models.UserProfile) (*models.UserProfile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateProfile", ctx, p)
	ret0, _ := ret[0].(*models.UserProfile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateProfile indicates an expected call of UpdateProfile.
func (mr *MockProgressMockRecorder) UpdateProfile(ctx any, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateProfile", reflect.TypeOf((*MockProgress)(nil).UpdateProfile), ctx, p)
}

// MockThemes is a mock of Themes interface.
type MockThemes struct {
	ctrl     *gomock.Controller
	recorder *MockThemesMockRecorder
	isgomock struct{}
}

// MockThemesMockRecorder is the mock recorder for MockThemes.
type MockThemesMockRecorder struct {
	mock *MockThemes
}

// NewMockThemes creates a new mock instance.
func NewMockThemes(ctrl *gomock.Controller) *MockThemes {
	mock := &MockThemes{ctrl: ctrl}
	mock.recorder = &MockThemesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockThemes) EXPECT() *MockThemesMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockThemes) Get(ctx context.Context) (models.ThemeKey, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx)
	ret0, _ := ret[0].(models.ThemeKey)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockThemesMockRecorder) Get(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockThemes)(nil).Get), ctx)
}

// Set mocks base method.
func (m *MockThemes) Set(ctx context.Context, key models.ThemeKey) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", ctx, key)
	ret0, _ := ret[0].(error)
	return ret0
}

// Set indicates an expected call of Set.
func (mr *MockThemesMockRecorder) Set(ctx any, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockThemes)(nil).Set), ctx, key)
}

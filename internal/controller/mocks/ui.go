// Package mocks provides testify mocks for the controller package.
package mocks

import (
	"github.com/stretchr/testify/mock"

	m "github.com/mouse-blink/reext/internal/model"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a MockUI and registers AssertExpectations on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	ui := &MockUI{}
	ui.Mock.Test(t)

	t.Cleanup(func() { ui.AssertExpectations(t) })

	return ui
}

// DisplayRename provides a mock function.
func (u *MockUI) DisplayRename(op m.RenameOp, dryRun bool) {
	u.Called(op, dryRun)
}

// DisplaySummary provides a mock function.
func (u *MockUI) DisplaySummary(summary m.Summary) {
	u.Called(summary)
}

// DisplayPlan provides a mock function.
func (u *MockUI) DisplayPlan(ops []m.RenameOp) error {
	ret := u.Called(ops)

	return ret.Error(0)
}

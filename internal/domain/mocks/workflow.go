// Package mocks provides testify mocks for the domain package.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	m "github.com/mouse-blink/reext/internal/model"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow and registers AssertExpectations on cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	wf := &MockWorkflow{}
	wf.Mock.Test(t)

	t.Cleanup(func() { wf.AssertExpectations(t) })

	return wf
}

// Run provides a mock function.
func (w *MockWorkflow) Run(ctx context.Context, plan m.Plan) (m.Summary, error) {
	ret := w.Called(ctx, plan)

	return ret.Get(0).(m.Summary), ret.Error(1)
}

// Plan provides a mock function.
func (w *MockWorkflow) Plan(ctx context.Context, plan m.Plan) ([]m.RenameOp, error) {
	ret := w.Called(ctx, plan)

	var ops []m.RenameOp
	if v := ret.Get(0); v != nil {
		ops = v.([]m.RenameOp)
	}

	return ops, ret.Error(1)
}

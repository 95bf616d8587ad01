package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cookbook/internal/domain/entity"
)

// MockRecipeRepository is a mock type for the RecipeRepository type
type MockRecipeRepository struct {
	mock.Mock
}

type MockRecipeRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRecipeRepository) EXPECT() *MockRecipeRepository_Expecter {
	return &MockRecipeRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, recipe
func (_m *MockRecipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	ret := _m.Called(ctx, recipe)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	return ret.Error(0)
}

// MockRecipeRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockRecipeRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
func (_e *MockRecipeRepository_Expecter) Create(ctx any, recipe any) *MockRecipeRepository_Create_Call {
	return &MockRecipeRepository_Create_Call{Call: _e.mock.On("Create", ctx, recipe)}
}

func (_c *MockRecipeRepository_Create_Call) Run(run func(ctx context.Context, recipe *entity.Recipe)) *MockRecipeRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Recipe))
	})

	return _c
}

func (_c *MockRecipeRepository_Create_Call) Return(_a0 error) *MockRecipeRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

// ListByUserID provides a mock function with given fields: ctx, userID
func (_m *MockRecipeRepository) ListByUserID(ctx context.Context, userID int64) ([]*entity.Recipe, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for ListByUserID")
	}

	var r0 []*entity.Recipe
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Recipe)
	}

	return r0, ret.Error(1)
}

// MockRecipeRepository_ListByUserID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListByUserID'
type MockRecipeRepository_ListByUserID_Call struct {
	*mock.Call
}

// ListByUserID is a helper method to define mock.On call
func (_e *MockRecipeRepository_Expecter) ListByUserID(ctx any, userID any) *MockRecipeRepository_ListByUserID_Call {
	return &MockRecipeRepository_ListByUserID_Call{Call: _e.mock.On("ListByUserID", ctx, userID)}
}

func (_c *MockRecipeRepository_ListByUserID_Call) Return(_a0 []*entity.Recipe, _a1 error) *MockRecipeRepository_ListByUserID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// NewMockRecipeRepository creates a new instance of MockRecipeRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRecipeRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRecipeRepository {
	m := &MockRecipeRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

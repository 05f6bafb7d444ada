package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

var _ foodTypeRepo = &foodTypeRepoMock{}

type foodTypeRepoMock struct {
	ListFunc      func(ctx context.Context) ([]domain.FoodType, error)
	GetByIDFunc   func(ctx context.Context, id int64) (*domain.FoodType, error)
	GetByNameFunc func(ctx context.Context, name string) (*domain.FoodType, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		GetByName []struct {
			Ctx  context.Context
			Name string
		}
	}
	lockList      sync.RWMutex
	lockGetByID   sync.RWMutex
	lockGetByName sync.RWMutex
}

func (mock *foodTypeRepoMock) List(ctx context.Context) ([]domain.FoodType, error) {
	if mock.ListFunc == nil {
		panic("foodTypeRepoMock.ListFunc: method is nil but foodTypeRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *foodTypeRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *foodTypeRepoMock) GetByID(ctx context.Context, id int64) (*domain.FoodType, error) {
	if mock.GetByIDFunc == nil {
		panic("foodTypeRepoMock.GetByIDFunc: method is nil but foodTypeRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *foodTypeRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *foodTypeRepoMock) GetByName(ctx context.Context, name string) (*domain.FoodType, error) {
	if mock.GetByNameFunc == nil {
		panic("foodTypeRepoMock.GetByNameFunc: method is nil but foodTypeRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, name)
}

func (mock *foodTypeRepoMock) GetByNameCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

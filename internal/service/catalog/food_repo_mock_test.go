package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

var _ foodRepo = &foodRepoMock{}

type foodRepoMock struct {
	FindFunc    func(ctx context.Context, filter domain.FoodFilter) ([]domain.Food, error)
	CountFunc   func(ctx context.Context, filter domain.FoodFilter) (int, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Food, error)
	CreateFunc  func(ctx context.Context, fields domain.FoodFields) (*domain.Food, error)
	UpdateFunc  func(ctx context.Context, id int64, fields domain.FoodFields) (*domain.Food, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	calls struct {
		Find []struct {
			Ctx    context.Context
			Filter domain.FoodFilter
		}
		Count []struct {
			Ctx    context.Context
			Filter domain.FoodFilter
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		Create []struct {
			Ctx    context.Context
			Fields domain.FoodFields
		}
		Update []struct {
			Ctx    context.Context
			ID     int64
			Fields domain.FoodFields
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockFind    sync.RWMutex
	lockCount   sync.RWMutex
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *foodRepoMock) Find(ctx context.Context, filter domain.FoodFilter) ([]domain.Food, error) {
	if mock.FindFunc == nil {
		panic("foodRepoMock.FindFunc: method is nil but foodRepo.Find was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.FoodFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, filter)
}

func (mock *foodRepoMock) FindCalls() []struct {
	Ctx    context.Context
	Filter domain.FoodFilter
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *foodRepoMock) Count(ctx context.Context, filter domain.FoodFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("foodRepoMock.CountFunc: method is nil but foodRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.FoodFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, filter)
}

func (mock *foodRepoMock) CountCalls() []struct {
	Ctx    context.Context
	Filter domain.FoodFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *foodRepoMock) GetByID(ctx context.Context, id int64) (*domain.Food, error) {
	if mock.GetByIDFunc == nil {
		panic("foodRepoMock.GetByIDFunc: method is nil but foodRepo.GetByID was just called")
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

func (mock *foodRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *foodRepoMock) Create(ctx context.Context, fields domain.FoodFields) (*domain.Food, error) {
	if mock.CreateFunc == nil {
		panic("foodRepoMock.CreateFunc: method is nil but foodRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Fields domain.FoodFields
	}{
		Ctx:    ctx,
		Fields: fields,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, fields)
}

func (mock *foodRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	Fields domain.FoodFields
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *foodRepoMock) Update(ctx context.Context, id int64, fields domain.FoodFields) (*domain.Food, error) {
	if mock.UpdateFunc == nil {
		panic("foodRepoMock.UpdateFunc: method is nil but foodRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Fields domain.FoodFields
	}{
		Ctx:    ctx,
		ID:     id,
		Fields: fields,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, fields)
}

func (mock *foodRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     int64
	Fields domain.FoodFields
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *foodRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("foodRepoMock.DeleteFunc: method is nil but foodRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *foodRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

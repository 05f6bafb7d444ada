package catalog

import (
	"sync"
)

var _ MutationRecorder = &mutationRecorderMock{}

type mutationRecorderMock struct {
	FoodMutatedFunc func(op string)

	calls struct {
		FoodMutated []struct {
			Op string
		}
	}
	lockFoodMutated sync.RWMutex
}

func (mock *mutationRecorderMock) FoodMutated(op string) {
	if mock.FoodMutatedFunc == nil {
		panic("mutationRecorderMock.FoodMutatedFunc: method is nil but MutationRecorder.FoodMutated was just called")
	}
	callInfo := struct {
		Op string
	}{
		Op: op,
	}
	mock.lockFoodMutated.Lock()
	mock.calls.FoodMutated = append(mock.calls.FoodMutated, callInfo)
	mock.lockFoodMutated.Unlock()
	mock.FoodMutatedFunc(op)
}

func (mock *mutationRecorderMock) FoodMutatedCalls() []struct {
	Op string
} {
	mock.lockFoodMutated.RLock()
	calls := mock.calls.FoodMutated
	mock.lockFoodMutated.RUnlock()
	return calls
}

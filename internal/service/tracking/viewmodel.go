package tracking

import (
	"sync"

	"tracker/internal/entities"
)

// ViewModel - то, что потребляет слой представления: текущий снапшот
// трекинга, обновляемый push-ом на каждом принятом событии. После Close
// пересчеты до view model не доходят.
type ViewModel struct {
	src   Source
	subID int64

	mu       sync.RWMutex
	snap     entities.TrackingSnapshot
	disposed bool
}

func NewViewModel(src Source) *ViewModel {
	vm := &ViewModel{src: src}
	vm.subID = src.Subscribe(vm.accept)
	// повторное чтение закрывает гонку между первичным снапшотом и подпиской
	vm.accept(src.Snapshot())
	return vm
}

func (vm *ViewModel) Snapshot() entities.TrackingSnapshot {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	return vm.snap
}

func (vm *ViewModel) Close() {
	vm.mu.Lock()
	if vm.disposed {
		vm.mu.Unlock()
		return
	}
	vm.disposed = true
	vm.mu.Unlock()

	vm.src.Unsubscribe(vm.subID)
}

func (vm *ViewModel) accept(snap entities.TrackingSnapshot) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	// повторное чтение первичного снапшота в NewViewModel может проиграть
	// гонку конкурентному push-у, более старый снапшот не принимаем
	if vm.disposed || snap.UpdatedAt.Before(vm.snap.UpdatedAt) {
		return
	}
	vm.snap = snap
}

// Package alloc источник памяти для буферов строк.
package alloc

//go:generate mockgen -source alloc.go -destination ../extmocks/allocator_mock.go -package extmocks -mock_names Allocator=AllocatorMock

// Allocator выделение блоков памяти под буферы строк. Реализация
// имеет право отказать, вернув ошибку: операции над строками обязаны
// переживать отказ не трогая своего содержимого.
type Allocator interface {
	Alloc(n int) ([]byte, error)
}

// System системный аллокатор поверх make. Отказывать не умеет,
// неудача выделения памяти в Go фатальна сама по себе.
type System struct{}

// Alloc для реализации Allocator.
func (System) Alloc(n int) ([]byte, error) {
	return make([]byte, n), nil
}

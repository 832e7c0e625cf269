package strsafe

import (
	"strconv"

	"github.com/sirkon/errors"
)

const (
	// ErrorEmptyNeedle отдаётся поисковыми операциями и заменами при
	// пустой искомой подстроке: совпадение нулевой ширины не имеет
	// однозначной семантики и явно запрещено.
	ErrorEmptyNeedle errors.Const = "needle must not be empty"

	// ErrorEmptyDelimiter отдаётся разбиением при пустом разделителе.
	ErrorEmptyDelimiter errors.Const = "delimiter must not be empty"

	// ErrorPositionOutOfRange отдаётся при позиции за пределами
	// содержимого там, где операция не определяет ограничение сверху.
	ErrorPositionOutOfRange errors.Const = "position is out of content range"

	// ErrorNegativeLength отдаётся при отрицательной запрошенной длине.
	ErrorNegativeLength errors.Const = "length must not be negative"
)

// IsInvalidArgument такая ошибка означает нарушение предусловия
// вызова. Операция не выполнялась, строка не менялась.
func IsInvalidArgument(err error) bool {
	switch {
	case errors.Is(err, ErrorEmptyNeedle),
		errors.Is(err, ErrorEmptyDelimiter),
		errors.Is(err, ErrorPositionOutOfRange),
		errors.Is(err, ErrorNegativeLength):
		return true
	default:
		return false
	}
}

// IsAllocation такая ошибка означает отказ аллокатора при запросе
// памяти. Целевая строка осталась в прежнем корректном состоянии.
func IsAllocation(err error) bool {
	var e errorAllocation
	return errors.As(err, &e)
}

type errorAllocation struct {
	size int
	err  error
}

func (e errorAllocation) Error() string {
	return "allocate " + strconv.Itoa(e.size) + " bytes: " + e.err.Error()
}

func (e errorAllocation) Unwrap() error {
	return e.err
}

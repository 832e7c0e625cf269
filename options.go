package strsafe

import "github.com/sirkon/strsafe/internal/alloc"

// Option определение опции конструирования строки.
type Option func(s *String, _ optionRestriction)

type optionRestriction struct{}

// WithAllocator устанавливает аллокатор буферов строки. По умолчанию
// используется системный аллокатор, не умеющий отказывать. Строки,
// порождаемые операциями над данной (Clone, Substr, Split),
// наследуют её аллокатор.
func WithAllocator(mem alloc.Allocator) Option {
	return func(s *String, _ optionRestriction) {
		s.mem = mem
	}
}

package strsafe

import "github.com/sirkon/errors"

// EnsureCapacity гарантирует, что выделенный блок вмещает не менее
// minCap байтов, считая слот под завершающий нулевой байт. Рост
// происходит строго до требуемого размера: библиотека сознательно
// не использует амортизированное удвоение, каждый вызов запрашивает
// ровно столько, сколько нужно. При отказе аллокатора строка
// остаётся нетронутой.
func (s *String) EnsureCapacity(minCap int) error {
	if minCap < 0 {
		return errors.Wrap(ErrorNegativeLength, "check requested capacity").Int("requested", minCap)
	}

	if len(s.data) >= minCap {
		return nil
	}

	buf, err := s.allocator().Alloc(minCap)
	if err != nil {
		return errors.Wrap(
			errorAllocation{size: minCap, err: err},
			"grow the content buffer",
		).Int("requested", minCap).Int("current", len(s.data))
	}

	copy(buf, s.content())
	buf[s.length] = 0
	s.data = buf

	return nil
}

// Trim ужимает выделенный блок до length+1 байтов. Пустая строка
// освобождает блок полностью. Неудача при выделении меньшего блока
// ошибкой не считается, строка просто остаётся прежнего размера.
func (s *String) Trim() {
	if s.length == 0 {
		s.Release()
		return
	}

	if len(s.data) == s.length+1 {
		return
	}

	buf, err := s.allocator().Alloc(s.length + 1)
	if err != nil {
		return
	}

	copy(buf, s.content())
	buf[s.length] = 0
	s.data = buf
}

// Release освобождает буфер и возвращает строку в пустое состояние.
// Для строки без буфера ничего не делает.
func (s *String) Release() {
	s.data = nil
	s.length = 0
}

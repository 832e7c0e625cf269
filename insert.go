package strsafe

import "github.com/sirkon/errors"

// Insert вставляет ins в позицию pos. Позиция равная длине
// допустима и означает дописывание в конец. Хвост сдвигается вправо
// поверх собственного буфера, пересечение областей безопасно.
// При отказе аллокатора строка остаётся нетронутой.
func (s *String) Insert(pos int, ins *String) error {
	return s.insert(pos, ins.content())
}

// InsertString вариант Insert с литералом.
func (s *String) InsertString(pos int, ins string) error {
	return s.insert(pos, []byte(ins))
}

// Substr возвращает новую независимую строку с копией диапазона
// [pos, pos+n) содержимого. Позиция за пределами содержимого даёт
// пустую строку, это штатный результат, а не ошибка. Длина диапазона
// ограничивается имеющимся хвостом. Результат наследует аллокатор
// источника, сам источник не меняется.
func (s *String) Substr(pos, n int) (*String, error) {
	if pos < 0 {
		return nil, errors.Wrap(ErrorPositionOutOfRange, "check the range start").Int("pos", pos)
	}
	if n < 0 {
		return nil, errors.Wrap(ErrorNegativeLength, "check the range length").Int("requested-length", n)
	}

	res := &String{mem: s.mem}
	if pos >= s.length {
		return res, nil
	}

	actual := n
	if pos+actual > s.length {
		actual = s.length - pos
	}

	if err := res.SetBytes(s.data[pos : pos+actual]); err != nil {
		return nil, errors.Wrap(err, "copy the extracted range").
			Int("pos", pos).
			Int("actual-length", actual)
	}

	return res, nil
}

func (s *String) insert(pos int, ins []byte) error {
	if pos < 0 || pos > s.length {
		return errors.Wrap(ErrorPositionOutOfRange, "check the insert position").
			Int("pos", pos).
			Int("content-length", s.length)
	}

	newLen := s.length + len(ins)
	if err := s.EnsureCapacity(newLen + 1); err != nil {
		return errors.Wrap(err, "ensure capacity for the extended content")
	}

	copy(s.data[pos+len(ins):newLen], s.data[pos:s.length])
	copy(s.data[pos:], ins)
	s.length = newLen
	s.data[newLen] = 0

	return nil
}

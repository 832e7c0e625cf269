package strsafe

import (
	"bytes"

	"github.com/sirkon/errors"
)

// Find позиция первого вхождения needle в содержимое, либо -1 если
// вхождений нет. Пустая искомая подстрока запрещена.
func (s *String) Find(needle *String) (int, error) {
	return s.find(needle.content())
}

// FindString вариант Find с литералом в качестве искомой подстроки.
func (s *String) FindString(needle string) (int, error) {
	return s.find([]byte(needle))
}

// FindFrom позиция первого вхождения needle начиная с позиции pos,
// либо -1. Позиция равная длине допустима: это поиск по пустому
// хвосту, в котором непустая подстрока не встречается никогда.
// Позиция за длиной является нарушением предусловия.
func (s *String) FindFrom(needle *String, pos int) (int, error) {
	return s.findFrom(needle.content(), pos)
}

// FindFromString вариант FindFrom с литералом.
func (s *String) FindFromString(needle string, pos int) (int, error) {
	return s.findFrom([]byte(needle), pos)
}

// Count число непересекающихся вхождений needle. Сканирование идёт
// слева направо, после каждого совпадения курсор сдвигается на всю
// длину needle, поэтому совпадение не может начинаться внутри уже
// учтённого диапазона.
func (s *String) Count(needle *String) (int, error) {
	return s.count(needle.content())
}

// CountString вариант Count с литералом.
func (s *String) CountString(needle string) (int, error) {
	return s.count([]byte(needle))
}

func (s *String) find(needle []byte) (int, error) {
	if len(needle) == 0 {
		return -1, errors.Wrap(ErrorEmptyNeedle, "look for the first occurrence")
	}

	return bytes.Index(s.content(), needle), nil
}

func (s *String) findFrom(needle []byte, pos int) (int, error) {
	if len(needle) == 0 {
		return -1, errors.Wrap(ErrorEmptyNeedle, "look for the first occurrence")
	}

	if pos < 0 || pos > s.length {
		return -1, errors.Wrap(ErrorPositionOutOfRange, "start the lookup").
			Int("pos", pos).
			Int("content-length", s.length)
	}

	idx := bytes.Index(s.data[pos:s.length], needle)
	if idx < 0 {
		return -1, nil
	}

	return pos + idx, nil
}

func (s *String) count(needle []byte) (int, error) {
	if len(needle) == 0 {
		return 0, errors.Wrap(ErrorEmptyNeedle, "count occurrences")
	}

	var res int
	rest := s.content()
	for {
		idx := bytes.Index(rest, needle)
		if idx < 0 {
			return res, nil
		}

		res++
		rest = rest[idx+len(needle):]
	}
}

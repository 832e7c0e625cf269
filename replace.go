package strsafe

import (
	"bytes"

	"github.com/sirkon/errors"
)

// Replace заменяет первое вхождение oldsub на newsub. Отсутствие
// вхождения не является ошибкой, содержимое остаётся прежним.
// Новый буфер выделяется ровно под итоговую длину и подменяет
// старый только после полного построения: при отказе аллокатора
// строка остаётся нетронутой, промежуточные состояния снаружи
// не видны.
func (s *String) Replace(oldsub, newsub *String) error {
	return s.replace(oldsub.content(), newsub.content())
}

// ReplaceString вариант Replace с литералами.
func (s *String) ReplaceString(oldsub, newsub string) error {
	return s.replace([]byte(oldsub), []byte(newsub))
}

// ReplaceAll заменяет все непересекающиеся вхождения oldsub на
// newsub. Вхождения сначала пересчитываются, итоговая длина
// вычисляется точно, затем замена выполняется одним проходом по
// одному свежевыделенному буферу. Ноль вхождений — успешный no-op.
func (s *String) ReplaceAll(oldsub, newsub *String) error {
	return s.replaceAll(oldsub.content(), newsub.content())
}

// ReplaceAllString вариант ReplaceAll с литералами.
func (s *String) ReplaceAllString(oldsub, newsub string) error {
	return s.replaceAll([]byte(oldsub), []byte(newsub))
}

func (s *String) replace(oldsub, newsub []byte) error {
	pos, err := s.find(oldsub)
	if err != nil {
		return errors.Wrap(err, "locate the occurrence")
	}
	if pos < 0 {
		return nil
	}

	finalLen := s.length - len(oldsub) + len(newsub)
	buf, err := s.allocator().Alloc(finalLen + 1)
	if err != nil {
		return errors.Wrap(
			errorAllocation{size: finalLen + 1, err: err},
			"allocate the replacement buffer",
		).Int("final-length", finalLen)
	}

	n := copy(buf, s.data[:pos])
	n += copy(buf[n:], newsub)
	copy(buf[n:], s.data[pos+len(oldsub):s.length])
	buf[finalLen] = 0

	s.data = buf
	s.length = finalLen

	return nil
}

func (s *String) replaceAll(oldsub, newsub []byte) error {
	occurrences, err := s.count(oldsub)
	if err != nil {
		return errors.Wrap(err, "count occurrences to replace")
	}
	if occurrences == 0 {
		return nil
	}

	finalLen := s.length + occurrences*(len(newsub)-len(oldsub))
	buf, err := s.allocator().Alloc(finalLen + 1)
	if err != nil {
		return errors.Wrap(
			errorAllocation{size: finalLen + 1, err: err},
			"allocate the replacement buffer",
		).Int("final-length", finalLen).Int("occurrences", occurrences)
	}

	var out int
	rest := s.content()
	for {
		idx := bytes.Index(rest, oldsub)
		if idx < 0 {
			out += copy(buf[out:], rest)
			break
		}

		out += copy(buf[out:], rest[:idx])
		out += copy(buf[out:], newsub)
		rest = rest[idx+len(oldsub):]
	}
	buf[finalLen] = 0

	s.data = buf
	s.length = finalLen

	return nil
}

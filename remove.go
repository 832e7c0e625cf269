package strsafe

import "bytes"

// Remove убирает первое вхождение sub, сдвигая хвост содержимого
// влево на его место, затем ужимает вместимость по мере возможности.
// Пустая или отсутствующая подстрока — тихий no-op. Операция идёт
// по собственному буферу и отказать не может.
func (s *String) Remove(sub *String) {
	s.remove(sub.content())
}

// RemoveString вариант Remove с литералом.
func (s *String) RemoveString(sub string) {
	s.remove([]byte(sub))
}

// RemoveAll убирает все непересекающиеся вхождения sub за один
// проход уплотнения с двумя курсорами: читающий пропускает каждое
// вхождение, пишущий собирает оставшиеся байты. После уплотнения
// вместимость ужимается по мере возможности. Пустая подстрока —
// тихий no-op, иначе цикл пропуска никогда бы не продвигался.
func (s *String) RemoveAll(sub *String) {
	s.removeAll(sub.content())
}

// RemoveAllString вариант RemoveAll с литералом.
func (s *String) RemoveAllString(sub string) {
	s.removeAll([]byte(sub))
}

func (s *String) remove(sub []byte) {
	if len(sub) == 0 {
		return
	}

	pos := bytes.Index(s.content(), sub)
	if pos < 0 {
		return
	}

	copy(s.data[pos:], s.data[pos+len(sub):s.length])
	s.length -= len(sub)
	s.data[s.length] = 0
	s.Trim()
}

func (s *String) removeAll(sub []byte) {
	if len(sub) == 0 {
		return
	}

	var w int
	for r := 0; r < s.length; {
		if r+len(sub) <= s.length && bytes.Equal(s.data[r:r+len(sub)], sub) {
			r += len(sub)
			continue
		}

		s.data[w] = s.data[r]
		w++
		r++
	}

	if w == s.length {
		// Вхождений не нашлось, содержимое не менялось.
		return
	}

	s.length = w
	s.data[w] = 0
	s.Trim()
}

package strsafe

import (
	"bytes"

	"github.com/sirkon/errors"
)

// Split разбивает содержимое по непересекающимся вхождениям
// разделителя. Каждое вхождение завершает очередной сегмент, хвост
// после последнего вхождения всегда становится сегментом, поэтому
// результат содержит не меньше одного сегмента: строка без вхождений
// целиком превращается в единственный сегмент, соседние вхождения
// дают пустой сегмент между собой.
//
// Каждый сегмент — независимая копия ровно под свою длину, буфер
// источника не заимствуется. Сегменты наследуют аллокатор источника.
// Пустой разделитель запрещён: он означал бы разрез между каждой
// парой байтов. При отказе аллокатора посреди разбиения уже
// построенные сегменты освобождаются, источник не меняется.
func (s *String) Split(delim *String) (*Array, error) {
	return s.split(delim.content())
}

// SplitString вариант Split с литералом в качестве разделителя.
func (s *String) SplitString(delim string) (*Array, error) {
	return s.split([]byte(delim))
}

func (s *String) split(delim []byte) (*Array, error) {
	if len(delim) == 0 {
		return nil, errors.Wrap(ErrorEmptyDelimiter, "split the content")
	}

	res := &Array{}
	rest := s.content()
	for {
		idx := bytes.Index(rest, delim)

		seg := rest
		if idx >= 0 {
			seg = rest[:idx]
		}

		item := &String{mem: s.mem}
		if err := item.SetBytes(seg); err != nil {
			res.Release()
			return nil, errors.Wrap(err, "copy the segment").Int("segment-no", len(res.items))
		}
		res.items = append(res.items, item)

		if idx < 0 {
			return res, nil
		}
		rest = rest[idx+len(delim):]
	}
}

package main

import "github.com/sirkon/strsafe/internal/byteop"

// randomText случайная последовательность строчных латинских букв
// длиной n. Результат живёт в общем рабочем буфере до следующего
// вызова: если данные нужны дольше, их следует скопировать.
func (b *bench) randomText(n int) []byte {
	buf := byteop.Reuse(&b.scratch, n)
	for i := range buf {
		buf[i] = byte('a' + b.rnd.Intn(26))
	}

	return buf
}

// haystack случайная строка под поиск данной подстроки. В половине
// случаев подстрока вставляется в случайную позицию, так что
// совпадение гарантировано.
func (b *bench) haystack(needle []byte) []byte {
	base := b.randomText(b.rnd.Intn(b.cfg.maxLen - len(needle)))
	if b.rnd.Intn(2) == 0 {
		return byteop.Clone(base)
	}

	pos := b.rnd.Intn(len(base) + 1)
	res := make([]byte, 0, len(base)+len(needle))
	res = append(res, base[:pos]...)
	res = append(res, needle...)
	res = append(res, base[pos:]...)

	return res
}

// needle случайная подстрока поиска небольшой длины.
func (b *bench) needle() []byte {
	return byteop.Clone(b.randomText(1 + b.rnd.Intn(8)))
}

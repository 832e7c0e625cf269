// Package byteop вспомогательные операции над слайсами байтов.
package byteop

// Clone независимая копия данного слайса байтов.
func Clone(data []byte) []byte {
	res := make([]byte, len(data))
	copy(res, data)

	return res
}

// Reuse переиспользование существующего слайса под новые данные
// требуемой длины. Если вместимости источника не хватает, он
// заменяется новым слайсом.
func Reuse(src *[]byte, n int) []byte {
	if cap(*src) < n {
		s := make([]byte, n)
		*src = s

		return s
	}

	return (*src)[:n]
}

package strsafe

// Array последовательность строк, получаемая при разбиении.
// Порядок элементов совпадает с порядком сегментов слева направо.
// Массив владеет всеми своими элементами: Release освобождает
// сначала каждый элемент, затем сам массив, и после этого к
// элементам обращаться нельзя.
type Array struct {
	items []*String
}

// Len число сегментов.
func (a *Array) Len() int {
	return len(a.items)
}

// At сегмент с данным номером.
func (a *Array) At(i int) *String {
	return a.items[i]
}

// Strings содержимое всех сегментов в виде обычных строк Go.
func (a *Array) Strings() []string {
	res := make([]string, len(a.items))
	for i, item := range a.items {
		res[i] = item.String()
	}

	return res
}

// Release освобождает каждый элемент и сам массив.
func (a *Array) Release() {
	for _, item := range a.items {
		item.Release()
	}
	a.items = nil
}

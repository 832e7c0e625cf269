// Package strsafe реализует динамическую байтовую строку с явным
// отслеживанием длины и вместимости и сопутствующий тип массива
// строк, получаемого при разбиении.
//
// Строка владеет своим буфером единолично: копирование всегда
// глубокое, буферы двух живых строк никогда не пересекаются.
// Модель байтовая, никакой Unicode-семантики нет. Все операции
// рассчитаны на монопольный доступ, внутренних блокировок нет.
package strsafe

import (
	"github.com/sirkon/errors"
	"github.com/sirkon/strsafe/internal/alloc"
)

// String динамическая байтовая строка. Владеет выделенным блоком
// data, отслеживает логическую длину length и держит аллокатор,
// через который получает память. Вместимость блока считается вместе
// со слотом под завершающий нулевой байт: при выделенном блоке
// всегда data[length] == 0 и len(data) >= length+1.
//
// Нулевое значение готово к использованию: памятью не владеет,
// аллокатор по умолчанию системный.
type String struct {
	data   []byte
	length int
	mem    alloc.Allocator
}

// New конструктор пустой строки. Память не выделяется до первой
// мутации.
func New(opts ...Option) *String {
	s := &String{}
	for _, opt := range opts {
		opt(s, optionRestriction{})
	}

	return s
}

// NewString конструктор строки с данным начальным содержимым.
func NewString(text string, opts ...Option) (*String, error) {
	s := New(opts...)
	if err := s.Set(text); err != nil {
		return nil, errors.Wrap(err, "set initial content")
	}

	return s, nil
}

// NewBytes конструктор строки с копией данных байтов в качестве
// начального содержимого.
func NewBytes(data []byte, opts ...Option) (*String, error) {
	s := New(opts...)
	if err := s.SetBytes(data); err != nil {
		return nil, errors.Wrap(err, "set initial content")
	}

	return s, nil
}

// Len длина содержимого в байтах, завершающий нулевой байт не
// учитывается.
func (s *String) Len() int {
	return s.length
}

// Cap полный размер выделенного блока, включая слот под завершающий
// нулевой байт. Ноль означает, что строка памятью не владеет.
func (s *String) Cap() int {
	return len(s.data)
}

// IsEmpty признак пустого содержимого.
func (s *String) IsEmpty() bool {
	return s.length == 0
}

// String содержимое в виде обычной строки Go.
func (s *String) String() string {
	return string(s.data[:s.length])
}

// Bytes копия содержимого. Возвращается именно копия: собственный
// буфер строки не должен становиться доступным снаружи.
func (s *String) Bytes() []byte {
	res := make([]byte, s.length)
	copy(res, s.data)

	return res
}

// Clone глубокая копия строки. Копия получает тот же аллокатор,
// что и источник.
func (s *String) Clone() (*String, error) {
	res := &String{mem: s.mem}
	if err := res.Copy(s); err != nil {
		return nil, errors.Wrap(err, "copy source content")
	}

	return res, nil
}

// Equal сравнение содержимого двух строк.
func (s *String) Equal(other *String) bool {
	if s.length != other.length {
		return false
	}

	return string(s.content()) == string(other.content())
}

// EqualString сравнение содержимого с данным литералом.
func (s *String) EqualString(text string) bool {
	return s.length == len(text) && string(s.content()) == text
}

// content текущее содержимое без копирования. Только для внутреннего
// использования, наружу такой слайс отдавать нельзя.
func (s *String) content() []byte {
	return s.data[:s.length]
}

func (s *String) allocator() alloc.Allocator {
	if s.mem != nil {
		return s.mem
	}

	return alloc.System{}
}

package testlog

import "github.com/sirkon/errors"

// consumer собирает переменные контекста ошибки в порядке их
// появления для дальнейшего вывода.
type consumer struct {
	vars []contextVar
}

type contextVar struct {
	name  string
	value any
}

func (c *consumer) put(name string, value any) {
	c.vars = append(c.vars, contextVar{
		name:  name,
		value: value,
	})
}

// Bool to satisfy errors.ErrorContextConsumer
func (c *consumer) Bool(name string, value bool) { c.put(name, value) }

// Int to satisfy errors.ErrorContextConsumer
func (c *consumer) Int(name string, value int) { c.put(name, value) }

// Int8 to satisfy errors.ErrorContextConsumer
func (c *consumer) Int8(name string, value int8) { c.put(name, value) }

// Int16 to satisfy errors.ErrorContextConsumer
func (c *consumer) Int16(name string, value int16) { c.put(name, value) }

// Int32 to satisfy errors.ErrorContextConsumer
func (c *consumer) Int32(name string, value int32) { c.put(name, value) }

// Int64 to satisfy errors.ErrorContextConsumer
func (c *consumer) Int64(name string, value int64) { c.put(name, value) }

// Uint to satisfy errors.ErrorContextConsumer
func (c *consumer) Uint(name string, value uint) { c.put(name, value) }

// Uint8 to satisfy errors.ErrorContextConsumer
func (c *consumer) Uint8(name string, value uint8) { c.put(name, value) }

// Uint16 to satisfy errors.ErrorContextConsumer
func (c *consumer) Uint16(name string, value uint16) { c.put(name, value) }

// Uint32 to satisfy errors.ErrorContextConsumer
func (c *consumer) Uint32(name string, value uint32) { c.put(name, value) }

// Uint64 to satisfy errors.ErrorContextConsumer
func (c *consumer) Uint64(name string, value uint64) { c.put(name, value) }

// Float32 to satisfy errors.ErrorContextConsumer
func (c *consumer) Float32(name string, value float32) { c.put(name, value) }

// Float64 to satisfy errors.ErrorContextConsumer
func (c *consumer) Float64(name string, value float64) { c.put(name, value) }

// String to satisfy errors.ErrorContextConsumer
func (c *consumer) String(name string, value string) { c.put(name, value) }

// Any to satisfy errors.ErrorContextConsumer
func (c *consumer) Any(name string, value interface{}) { c.put(name, value) }

var _ errors.ErrorContextConsumer = &consumer{}

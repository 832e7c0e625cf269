package main

import (
	"bytes"

	"github.com/sirkon/errors"
	"github.com/sirkon/strsafe"
	"github.com/sirkon/strsafe/internal/byteop"
)

func (b *bench) opSet() error {
	s := strsafe.New()
	for i := 0; i < b.cfg.iterations; i++ {
		text := b.randomText(b.rnd.Intn(b.cfg.maxLen))
		if err := s.SetBytes(text); err != nil {
			return errors.Wrap(err, "set random content")
		}
		if s.Len() != len(text) {
			return errors.New("content length mismatch after set").
				Int("expected", len(text)).
				Int("actual", s.Len())
		}
	}

	return nil
}

func (b *bench) opCompare() error {
	s := strsafe.New()
	for i := 0; i < b.cfg.iterations; i++ {
		left := byteop.Clone(b.randomText(5))
		right := b.randomText(5)
		if i%2 == 0 {
			right = left
		}

		if err := s.SetBytes(left); err != nil {
			return errors.Wrap(err, "set the left side")
		}

		expected := bytes.Equal(left, right)
		if s.EqualString(string(right)) != expected {
			return errors.New("comparison mismatch").
				Str("left", string(left)).
				Str("right", string(right))
		}
	}

	return nil
}

func (b *bench) opFind() error {
	s := strsafe.New()
	for i := 0; i < b.cfg.iterations; i++ {
		needle := b.needle()
		if err := s.SetBytes(b.haystack(needle)); err != nil {
			return errors.Wrap(err, "set the haystack")
		}

		pos, err := s.FindString(string(needle))
		if err != nil {
			return errors.Wrap(err, "look for the needle")
		}
		if pos >= 0 && !bytes.HasPrefix(s.Bytes()[pos:], needle) {
			return errors.New("found position does not start the needle").Int("pos", pos)
		}
	}

	return nil
}

func (b *bench) opFindFrom() error {
	s := strsafe.New()
	for i := 0; i < b.cfg.iterations; i++ {
		needle := b.needle()
		if err := s.SetBytes(b.haystack(needle)); err != nil {
			return errors.Wrap(err, "set the haystack")
		}

		var start int
		if s.Len() > 0 {
			start = b.rnd.Intn(s.Len() + 1)
		}
		if _, err := s.FindFromString(string(needle), start); err != nil {
			return errors.Wrap(err, "look for the needle from a position").Int("pos", start)
		}
	}

	return nil
}

func (b *bench) opCount() error {
	s := strsafe.New()
	for i := 0; i < b.cfg.iterations; i++ {
		needle := b.needle()
		if err := s.SetBytes(b.haystack(needle)); err != nil {
			return errors.Wrap(err, "set the haystack")
		}

		if _, err := s.CountString(string(needle)); err != nil {
			return errors.Wrap(err, "count the occurrences")
		}
	}

	return nil
}

func (b *bench) opReplace() error {
	s := strsafe.New()
	for i := 0; i < b.cfg.iterations; i++ {
		needle := b.needle()
		if err := s.SetBytes(b.haystack(needle)); err != nil {
			return errors.Wrap(err, "set the haystack")
		}

		if err := s.ReplaceString(string(needle), "++"); err != nil {
			return errors.Wrap(err, "replace the first occurrence")
		}
	}

	return nil
}

func (b *bench) opReplaceAll() error {
	s := strsafe.New()
	for i := 0; i < b.cfg.iterations; i++ {
		needle := b.needle()
		if err := s.SetBytes(b.haystack(needle)); err != nil {
			return errors.Wrap(err, "set the haystack")
		}

		occurrences, err := s.CountString(string(needle))
		if err != nil {
			return errors.Wrap(err, "count the occurrences")
		}

		before := s.Len()
		if err := s.ReplaceAllString(string(needle), "++"); err != nil {
			return errors.Wrap(err, "replace all occurrences")
		}

		expected := before + occurrences*(2-len(needle))
		if s.Len() != expected {
			return errors.New("length law violation").
				Int("expected", expected).
				Int("actual", s.Len())
		}
	}

	return nil
}

func (b *bench) opRemove() error {
	s := strsafe.New()
	for i := 0; i < b.cfg.iterations; i++ {
		needle := b.needle()
		if err := s.SetBytes(b.haystack(needle)); err != nil {
			return errors.Wrap(err, "set the haystack")
		}

		s.RemoveString(string(needle))
	}

	return nil
}

func (b *bench) opRemoveAll() error {
	s := strsafe.New()
	for i := 0; i < b.cfg.iterations; i++ {
		needle := b.needle()
		if err := s.SetBytes(b.haystack(needle)); err != nil {
			return errors.Wrap(err, "set the haystack")
		}

		s.RemoveAllString(string(needle))
		first := byteop.Clone(s.Bytes())

		// Повторный проход обязан быть пустым no-op.
		s.RemoveAllString(string(needle))
		if !bytes.Equal(first, s.Bytes()) {
			return errors.New("remove-all is not idempotent").Str("needle", string(needle))
		}
	}

	return nil
}

func (b *bench) opAppend() error {
	for i := 0; i < b.cfg.iterations; i++ {
		s := strsafe.New()
		if err := s.SetBytes(b.randomText(b.rnd.Intn(b.cfg.maxLen / 2))); err != nil {
			return errors.Wrap(err, "set the base content")
		}

		if err := s.AppendString(string(b.randomText(b.rnd.Intn(b.cfg.maxLen / 2)))); err != nil {
			return errors.Wrap(err, "append the suffix")
		}
	}

	return nil
}

func (b *bench) opAppendMany() error {
	for i := 0; i < b.cfg.iterations; i++ {
		s := strsafe.New()
		first := byteop.Clone(b.randomText(b.rnd.Intn(b.cfg.maxLen / 4)))
		second := byteop.Clone(b.randomText(b.rnd.Intn(b.cfg.maxLen / 4)))
		third := b.randomText(b.rnd.Intn(b.cfg.maxLen / 4))

		err := s.AppendStrings(string(first), string(second), string(third))
		if err != nil {
			return errors.Wrap(err, "append the suffixes")
		}
		if s.Len() != len(first)+len(second)+len(third) {
			return errors.New("length mismatch after the batch append").Int("actual", s.Len())
		}
	}

	return nil
}

func (b *bench) opInsert() error {
	s := strsafe.New()
	for i := 0; i < b.cfg.iterations; i++ {
		if err := s.SetBytes(b.randomText(b.rnd.Intn(b.cfg.maxLen))); err != nil {
			return errors.Wrap(err, "set the base content")
		}

		pos := b.rnd.Intn(s.Len() + 1)
		if err := s.InsertString(pos, "insertion"); err != nil {
			return errors.Wrap(err, "insert at a random position").Int("pos", pos)
		}
	}

	return nil
}

func (b *bench) opSubstr() error {
	s := strsafe.New()
	for i := 0; i < b.cfg.iterations; i++ {
		if err := s.SetBytes(b.randomText(1 + b.rnd.Intn(b.cfg.maxLen))); err != nil {
			return errors.Wrap(err, "set the source content")
		}

		pos := b.rnd.Intn(s.Len())
		sub, err := s.Substr(pos, b.rnd.Intn(s.Len()))
		if err != nil {
			return errors.Wrap(err, "extract a random range").Int("pos", pos)
		}
		sub.Release()
	}

	return nil
}

func (b *bench) opSplit() error {
	s := strsafe.New()
	for i := 0; i < b.cfg.iterations; i++ {
		delim := b.needle()
		if err := s.SetBytes(b.haystack(delim)); err != nil {
			return errors.Wrap(err, "set the source content")
		}

		parts, err := s.SplitString(string(delim))
		if err != nil {
			return errors.Wrap(err, "split the source")
		}
		if parts.Len() < 1 {
			return errors.New("a split result must have at least one segment")
		}
		parts.Release()
	}

	return nil
}

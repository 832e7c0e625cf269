package strsafe

import "github.com/sirkon/errors"

// Append дописывает suffix в конец содержимого.
func (s *String) Append(suffix *String) error {
	if err := s.AppendAll(suffix); err != nil {
		return errors.Wrap(err, "append the suffix")
	}

	return nil
}

// AppendString вариант Append с литералом.
func (s *String) AppendString(suffix string) error {
	if err := s.AppendStrings(suffix); err != nil {
		return errors.Wrap(err, "append the suffix")
	}

	return nil
}

// AppendAll дописывает суффиксы в конец в порядке их следования.
// Общая длина считается заранее, вместимость растёт не более одного
// раза, затем суффиксы копируются подряд. При отказе аллокатора
// строка остаётся нетронутой.
func (s *String) AppendAll(suffixes ...*String) error {
	var total int
	for _, suffix := range suffixes {
		total += suffix.length
	}

	if err := s.EnsureCapacity(s.length + total + 1); err != nil {
		return errors.Wrap(err, "ensure capacity for the appended content").Int("appended-length", total)
	}

	for _, suffix := range suffixes {
		s.length += copy(s.data[s.length:], suffix.content())
	}
	s.data[s.length] = 0

	return nil
}

// AppendStrings вариант AppendAll с литералами.
func (s *String) AppendStrings(suffixes ...string) error {
	var total int
	for _, suffix := range suffixes {
		total += len(suffix)
	}

	if err := s.EnsureCapacity(s.length + total + 1); err != nil {
		return errors.Wrap(err, "ensure capacity for the appended content").Int("appended-length", total)
	}

	for _, suffix := range suffixes {
		s.length += copy(s.data[s.length:], suffix)
	}
	s.data[s.length] = 0

	return nil
}

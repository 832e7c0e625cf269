package strsafe

import "github.com/sirkon/errors"

// Set замена содержимого данным литералом.
func (s *String) Set(text string) error {
	if err := s.EnsureCapacity(len(text) + 1); err != nil {
		return errors.Wrap(err, "ensure capacity for the new content")
	}

	copy(s.data, text)
	s.length = len(text)
	s.data[s.length] = 0

	return nil
}

// SetBytes замена содержимого копией данных байтов.
func (s *String) SetBytes(data []byte) error {
	if err := s.EnsureCapacity(len(data) + 1); err != nil {
		return errors.Wrap(err, "ensure capacity for the new content")
	}

	copy(s.data, data)
	s.length = len(data)
	s.data[s.length] = 0

	return nil
}

// Copy замена содержимого копией содержимого другой строки. Буфер
// источника не заимствуется ни при каких условиях.
func (s *String) Copy(src *String) error {
	if err := s.SetBytes(src.content()); err != nil {
		return errors.Wrap(err, "copy source content")
	}

	return nil
}

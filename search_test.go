package strsafe_test

import (
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"
	"github.com/sirkon/strsafe"
	"github.com/sirkon/strsafe/internal/testlog"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		needle   string
		expected int
	}{
		{
			name:     "classic",
			content:  "Hello, World!",
			needle:   "World",
			expected: 7,
		},
		{
			name:     "at-the-start",
			content:  "abcabc",
			needle:   "abc",
			expected: 0,
		},
		{
			name:     "missing",
			content:  "abcabc",
			needle:   "abd",
			expected: -1,
		},
		{
			name:     "needle-longer-than-content",
			content:  "ab",
			needle:   "abc",
			expected: -1,
		},
		{
			name:     "empty-content",
			content:  "",
			needle:   "a",
			expected: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := strsafe.NewString(tt.content)
			if testlog.Check(t, err) {
				return
			}

			pos, err := s.FindString(tt.needle)
			if testlog.Check(t, err) {
				return
			}
			deepequal.SideBySide(t, "position", tt.expected, pos)

			needle, err := strsafe.NewString(tt.needle)
			if testlog.Check(t, err) {
				return
			}
			pos, err = s.Find(needle)
			if testlog.Check(t, err) {
				return
			}
			deepequal.SideBySide(t, "position via String needle", tt.expected, pos)
		})
	}

	t.Run("empty-needle-is-invalid", func(t *testing.T) {
		s, err := strsafe.NewString("abc")
		if testlog.Check(t, err) {
			return
		}

		if _, err := s.FindString(""); !strsafe.IsInvalidArgument(err) {
			t.Fatalf("an invalid argument error was expected, got %v", err)
		}
	})
}

func TestFindFrom(t *testing.T) {
	s, err := strsafe.NewString("abcabcabc")
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "construct the haystack"))
		return
	}

	t.Run("skip-the-first-occurrence", func(t *testing.T) {
		pos, err := s.FindFromString("abc", 1)
		if testlog.Check(t, err) {
			return
		}
		deepequal.SideBySide(t, "position", 3, pos)
	})

	t.Run("from-zero-is-a-plain-find", func(t *testing.T) {
		pos, err := s.FindFromString("abc", 0)
		if testlog.Check(t, err) {
			return
		}
		deepequal.SideBySide(t, "position", 0, pos)
	})

	t.Run("empty-tail-scan", func(t *testing.T) {
		// Позиция равная длине допустима, совпадений в пустом
		// хвосте не бывает.
		pos, err := s.FindFromString("abc", s.Len())
		if testlog.Check(t, err) {
			return
		}
		deepequal.SideBySide(t, "position", -1, pos)
	})

	t.Run("position-past-the-length", func(t *testing.T) {
		_, err := s.FindFromString("abc", s.Len()+1)
		if !strsafe.IsInvalidArgument(err) {
			t.Fatalf("an invalid argument error was expected, got %v", err)
		}
		testlog.Log(t, errors.Wrap(err, "expected error"))
	})

	t.Run("negative-position", func(t *testing.T) {
		_, err := s.FindFromString("abc", -1)
		if !strsafe.IsInvalidArgument(err) {
			t.Fatalf("an invalid argument error was expected, got %v", err)
		}
	})
}

func TestCount(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		needle   string
		expected int
	}{
		{
			name:     "plain",
			content:  "a,b,,c",
			needle:   ",",
			expected: 3,
		},
		{
			name:     "overlap-is-skipped",
			content:  "aXaXa",
			needle:   "aXa",
			expected: 1,
		},
		{
			name:     "aaa-vs-aa",
			content:  "aaa",
			needle:   "aa",
			expected: 1,
		},
		{
			name:     "no-occurrences",
			content:  "abc",
			needle:   "z",
			expected: 0,
		},
		{
			name:     "whole-content",
			content:  "abc",
			needle:   "abc",
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := strsafe.NewString(tt.content)
			if testlog.Check(t, err) {
				return
			}

			count, err := s.CountString(tt.needle)
			if testlog.Check(t, err) {
				return
			}
			deepequal.SideBySide(t, "count", tt.expected, count)
		})
	}

	t.Run("empty-needle-is-invalid", func(t *testing.T) {
		s, err := strsafe.NewString("abc")
		if testlog.Check(t, err) {
			return
		}

		if _, err := s.CountString(""); !strsafe.IsInvalidArgument(err) {
			t.Fatalf("an invalid argument error was expected, got %v", err)
		}
	})
}

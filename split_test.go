package strsafe_test

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"
	"github.com/sirkon/strsafe"
	"github.com/sirkon/strsafe/internal/extmocks"
	"github.com/sirkon/strsafe/internal/testlog"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		delim    string
		expected []string
	}{
		{
			name:     "plain",
			content:  "a,b,,c",
			delim:    ",",
			expected: []string{"a", "b", "", "c"},
		},
		{
			name:     "no-occurrences",
			content:  "abc",
			delim:    ",",
			expected: []string{"abc"},
		},
		{
			name:     "leading-and-trailing",
			content:  ",a,",
			delim:    ",",
			expected: []string{"", "a", ""},
		},
		{
			name:     "multibyte-delimiter",
			content:  "one::two::three",
			delim:    "::",
			expected: []string{"one", "two", "three"},
		},
		{
			name:     "empty-content",
			content:  "",
			delim:    ",",
			expected: []string{""},
		},
		{
			name:     "delimiter-only",
			content:  ",",
			delim:    ",",
			expected: []string{"", ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := strsafe.NewString(tt.content)
			if testlog.Check(t, err) {
				return
			}

			parts, err := s.SplitString(tt.delim)
			if testlog.Check(t, err) {
				return
			}
			deepequal.SideBySide(t, "segments", tt.expected, parts.Strings())

			// Закон разбиения: склейка сегментов с разделителем
			// восстанавливает источник, сегментов ровно на один
			// больше чем вхождений.
			glued := strings.Join(parts.Strings(), tt.delim)
			deepequal.SideBySide(t, "glue law", tt.content, glued)

			occurrences, err := s.CountString(tt.delim)
			if testlog.Check(t, err) {
				return
			}
			deepequal.SideBySide(t, "segment count law", occurrences+1, parts.Len())
		})
	}

	t.Run("empty-delimiter-is-invalid", func(t *testing.T) {
		s, err := strsafe.NewString("abc")
		if testlog.Check(t, err) {
			return
		}

		_, err = s.SplitString("")
		if !strsafe.IsInvalidArgument(err) {
			t.Fatalf("an invalid argument error was expected, got %v", err)
		}
		testlog.Log(t, errors.Wrap(err, "expected error"))
	})

	t.Run("segments-are-independent", func(t *testing.T) {
		s, err := strsafe.NewString("a,b")
		if testlog.Check(t, err) {
			return
		}

		parts, err := s.SplitString(",")
		if testlog.Check(t, err) {
			return
		}

		if testlog.Check(t, s.Set("changed")) {
			return
		}
		deepequal.SideBySide(t, "segments after the source changed", []string{"a", "b"}, parts.Strings())
	})

	t.Run("release", func(t *testing.T) {
		s, err := strsafe.NewString("a,b,c")
		if testlog.Check(t, err) {
			return
		}

		parts, err := s.SplitString(",")
		if testlog.Check(t, err) {
			return
		}

		parts.Release()
		deepequal.SideBySide(t, "segments left", 0, parts.Len())
	})

	t.Run("failed-allocation-keeps-the-source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mem := extmocks.NewAllocatorMock(ctrl)
		mem.EXPECT().Alloc(gomock.Any()).DoAndReturn(func(n int) ([]byte, error) {
			return make([]byte, n), nil
		})
		// Первый сегмент строится, на втором аллокатор отказывает.
		mem.EXPECT().Alloc(gomock.Any()).DoAndReturn(func(n int) ([]byte, error) {
			return make([]byte, n), nil
		})
		mem.EXPECT().Alloc(gomock.Any()).Return(nil, errors.New("out of memory"))

		s := strsafe.New(strsafe.WithAllocator(mem))
		if testlog.Check(t, s.Set("a,b,c")) {
			return
		}

		_, err := s.SplitString(",")
		if !strsafe.IsAllocation(err) {
			t.Fatalf("an allocation error was expected, got %v", err)
		}
		deepequal.SideBySide(t, "source kept", "a,b,c", s.String())
	})
}

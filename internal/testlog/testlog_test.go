package testlog_test

import (
	stderrs "errors"
	"testing"

	"github.com/sirkon/errors"
	"github.com/sirkon/strsafe/internal/testlog"
)

func TestLogging(t *testing.T) {
	t.Run("log-std-error", func(t *testing.T) {
		testlog.Log(t, stderrs.New("not an error"))
	})

	t.Run("log-ctxed-error", func(t *testing.T) {
		testlog.Log(t, errors.New("ctx error").Int("pos", 12).Any("segments", []string{
			"a", "b",
		}).Str("needle", "abc"))
	})

	t.Run("error-check", func(t *testing.T) {
		if testlog.Check(t, nil) {
			t.Error("nil error must not be reported")
		}
	})
}

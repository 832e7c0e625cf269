package main

import (
	"fmt"
	"io"
	"time"

	"github.com/sirkon/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// report итоги прогона: идентификатор, зерно генератора и полное
// время каждой операции.
type report struct {
	id        string
	seed      int64
	durations map[string]time.Duration
}

func (r *report) render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "run %s (seed %d)\n", r.id, r.seed); err != nil {
		return errors.Wrap(err, "write the header")
	}

	names := maps.Keys(r.durations)
	slices.Sort(names)

	for _, name := range names {
		_, err := fmt.Fprintf(
			w,
			"\n=== %s ===\nDuration (ns): %d\n",
			name,
			r.durations[name].Nanoseconds(),
		)
		if err != nil {
			return errors.Wrap(err, "write the operation result").Str("operation", name)
		}
	}

	return nil
}

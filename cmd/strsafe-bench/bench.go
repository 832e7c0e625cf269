package main

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirkon/errors"
)

// benchConfig параметры прогона.
type benchConfig struct {
	iterations int
	maxLen     int
	seed       int64
	only       string
}

type bench struct {
	cfg     benchConfig
	rnd     *rand.Rand
	scratch []byte
}

func newBench(cfg benchConfig) *bench {
	if cfg.iterations < 1 {
		cfg.iterations = 1
	}
	if cfg.maxLen < 16 {
		cfg.maxLen = 16
	}

	return &bench{
		cfg: cfg,
		rnd: rand.New(rand.NewSource(cfg.seed)),
	}
}

// operation один замеряемый сценарий. Каждый сценарий сам крутит
// все свои итерации, замеряется полное время.
type operation struct {
	name string
	run  func(b *bench) error
}

var operations = []operation{
	{name: "set", run: (*bench).opSet},
	{name: "compare", run: (*bench).opCompare},
	{name: "find", run: (*bench).opFind},
	{name: "find-from", run: (*bench).opFindFrom},
	{name: "count", run: (*bench).opCount},
	{name: "replace", run: (*bench).opReplace},
	{name: "replace-all", run: (*bench).opReplaceAll},
	{name: "remove", run: (*bench).opRemove},
	{name: "remove-all", run: (*bench).opRemoveAll},
	{name: "append", run: (*bench).opAppend},
	{name: "append-many", run: (*bench).opAppendMany},
	{name: "insert", run: (*bench).opInsert},
	{name: "substr", run: (*bench).opSubstr},
	{name: "split", run: (*bench).opSplit},
}

func (b *bench) run() (*report, error) {
	rep := &report{
		id:        uuid.NewString(),
		seed:      b.cfg.seed,
		durations: map[string]time.Duration{},
	}

	for _, op := range operations {
		if b.cfg.only != "" && op.name != b.cfg.only {
			continue
		}

		start := time.Now()
		if err := op.run(b); err != nil {
			return nil, errors.Wrap(err, "run the operation").Str("operation", op.name)
		}
		rep.durations[op.name] = time.Since(start)
	}

	if len(rep.durations) == 0 {
		return nil, errors.New("no operation matched the filter").Str("filter", b.cfg.only)
	}

	return rep, nil
}

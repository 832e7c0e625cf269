// Команда strsafe-bench замеряет время операций библиотеки strsafe
// на случайных данных: для каждой операции генерируются случайные
// строки из строчных латинских букв, причём в половине случаев
// искомая подстрока гарантированно присутствует в строке-источнике.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirkon/errors"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "strsafe-bench",
		Usage: "замеры времени операций strsafe на случайных данных",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "iterations",
				Aliases: []string{"n"},
				Usage:   "число повторов каждой операции",
				Value:   1000,
			},
			&cli.IntFlag{
				Name:  "max-len",
				Usage: "максимальная длина случайной строки",
				Value: 6400,
			},
			&cli.IntFlag{
				Name:  "seed",
				Usage: "зерно генератора случайных данных, ноль означает текущее время",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "файл отчёта, по умолчанию отчёт идёт в stdout",
			},
			&cli.StringFlag{
				Name:  "only",
				Usage: "запустить только операцию с данным именем",
			},
		},
		Action: runAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runAction(_ context.Context, cmd *cli.Command) error {
	seed := int64(cmd.Int("seed"))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	out := io.Writer(os.Stdout)
	if name := cmd.String("output"); name != "" {
		file, err := os.Create(name)
		if err != nil {
			return errors.Wrap(err, "create the report file").Str("file", name)
		}
		defer func() {
			_ = file.Close()
		}()
		out = file
	}

	b := newBench(benchConfig{
		iterations: int(cmd.Int("iterations")),
		maxLen:     int(cmd.Int("max-len")),
		seed:       seed,
		only:       cmd.String("only"),
	})

	rep, err := b.run()
	if err != nil {
		return errors.Wrap(err, "run the operations")
	}

	if err := rep.render(out); err != nil {
		return errors.Wrap(err, "render the report")
	}

	return nil
}

// Command measure times insertion, rank selection and rank deletion of the
// OSTree against other ordered sets for growing n, and writes the table as
// JSON for plotting elsewhere.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

type config struct {
	maxN, steps, queries, rounds int
	seed                         int64
	backends                     []string
	out                          string
	level                        logrus.Level
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg      config
		backs    string
		levelStr string
	)
	fs := flag.NewFlagSet("measure", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.maxN, "max", 100000, "largest number of keys")
	fs.IntVar(&cfg.steps, "steps", 10, "number of sizes between max/steps and max")
	fs.IntVar(&cfg.queries, "queries", 1000, "rank selections per size")
	fs.IntVar(&cfg.rounds, "rounds", 3, "repetitions averaged per size")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed")
	fs.StringVar(&backs, "backends", "ostree,gods-avl,gods-rb,btree,llrb", "comma separated backends")
	fs.StringVar(&cfg.out, "out", "-", "output file, - for stdout")
	fs.StringVar(&levelStr, "v", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.maxN < 1 || cfg.steps < 1 || cfg.rounds < 1 || cfg.queries < 0 {
		return cfg, errors.New("max, steps and rounds must be positive, queries non-negative")
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return cfg, err
	}
	cfg.level = level
	for _, b := range strings.Split(backs, ",") {
		if b = strings.TrimSpace(b); b == "" {
			continue
		}
		if _, ok := backends[b]; !ok {
			return cfg, fmt.Errorf("unknown backend %q", b)
		}
		if !slices.Contains(cfg.backends, b) {
			cfg.backends = append(cfg.backends, b)
		}
	}
	if len(cfg.backends) == 0 {
		return cfg, errors.New("no backend selected")
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	log.SetOutput(stderr)
	log.SetLevel(cfg.level)
	log.WithFields(logrus.Fields{
		"max": cfg.maxN, "steps": cfg.steps, "backends": cfg.backends, "seed": cfg.seed,
	}).Info("measuring")

	rep, err := measure(cfg)
	if err != nil {
		return err
	}
	w := stdout
	if cfg.out != "-" {
		f, err := os.Create(cfg.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err = writeReport(w, rep); err != nil {
		return err
	}
	log.WithField("rows", len(rep.Rows)).Info("done")
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.WithError(err).Fatal("measure failed")
	}
}

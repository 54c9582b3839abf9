package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ugorji/go/codec"
)

type row struct {
	Backend  string  `codec:"backend"`
	N        int     `codec:"n"`
	InsertNs float64 `codec:"insert_ns"`
	SelectNs float64 `codec:"select_ns"`
	DeleteNs float64 `codec:"delete_ns"`
	Height   int     `codec:"height,omitempty"`
}

type report struct {
	Seed int64 `codec:"seed"`
	Rows []row `codec:"rows"`
}

// sizes returns max/steps, 2*max/steps, ..., max, skipping zeros.
func sizes(maxN, steps int) []int {
	var s []int
	for i := 1; i <= steps; i++ {
		if n := maxN / steps * i; n > 0 {
			s = append(s, n)
		}
	}
	if len(s) == 0 || s[len(s)-1] != maxN {
		s = append(s, maxN)
	}
	return s
}

// measureOne builds a set of the keys 0..n-1 in random order by n inserts, selects
// cfg.queries random ranks, then drains it by deleting the minimum n times.
// Every answer is checked: the key of rank k is k-1.
func measureOne(cfg config, name string, mk func() backend, n int) (row, error) {
	var ins, sel, del time.Duration
	r := row{Backend: name, N: n}
	rg := rand.New(rand.NewSource(cfg.seed))
	q := min(cfg.queries, n)
	for range cfg.rounds {
		keys := rg.Perm(n)
		b := mk()

		t0 := time.Now()
		for _, v := range keys {
			b.insert(v)
		}
		ins += time.Since(t0)
		if b.size() != n {
			return r, fmt.Errorf("%s: size %d after %d inserts", name, b.size(), n)
		}
		r.Height = b.height()

		ranks := make([]int, q)
		for i := range ranks {
			ranks[i] = rg.Intn(n) + 1
		}
		t0 = time.Now()
		for _, k := range ranks {
			v, err := b.selectRank(k)
			if err != nil {
				return r, fmt.Errorf("%s: select %d: %w", name, k, err)
			}
			if v != k-1 {
				return r, fmt.Errorf("%s: rank %d is %d", name, k, v)
			}
		}
		sel += time.Since(t0)

		t0 = time.Now()
		for range n {
			if err := b.deleteMin(); err != nil {
				return r, fmt.Errorf("%s: %w", name, err)
			}
		}
		del += time.Since(t0)
		if b.size() != 0 {
			return r, fmt.Errorf("%s: size %d after draining", name, b.size())
		}
	}
	perOp := func(d time.Duration, ops int) float64 {
		if ops == 0 {
			return 0
		}
		return float64(d.Nanoseconds()) / float64(ops*cfg.rounds)
	}
	r.InsertNs, r.SelectNs, r.DeleteNs = perOp(ins, n), perOp(sel, q), perOp(del, n)
	return r, nil
}

func measure(cfg config) (report, error) {
	rep := report{Seed: cfg.seed}
	for _, n := range sizes(cfg.maxN, cfg.steps) {
		for _, name := range cfg.backends {
			mk, ok := backends[name]
			if !ok {
				return rep, fmt.Errorf("unknown backend %q", name)
			}
			r, err := measureOne(cfg, name, mk, n)
			if err != nil {
				return rep, err
			}
			log.WithFields(logrus.Fields{
				"backend": name, "n": n, "insert_ns": r.InsertNs,
				"select_ns": r.SelectNs, "delete_ns": r.DeleteNs,
			}).Info("measured")
			rep.Rows = append(rep.Rows, r)
		}
	}
	return rep, nil
}

func jsonHandle() *codec.JsonHandle {
	h := new(codec.JsonHandle)
	h.Indent = 2
	return h
}

func writeReport(w io.Writer, rep report) error {
	return codec.NewEncoder(w, jsonHandle()).Encode(rep)
}

func readReport(r io.Reader) (rep report, err error) {
	err = codec.NewDecoder(r, jsonHandle()).Decode(&rep)
	return
}

package store

import (
	"fmt"
	"os"
	"time"
)

// Options selects the initial content of a store.
type Options struct {
	// DatasetPath, when set, is a JSON dataset that takes precedence over
	// generated data.
	DatasetPath  string
	SeedDemoData bool
	Seed         uint64
	Extensions   int
	Now          time.Time
}

// Open builds a store from a dataset file, from generated demo data, or
// empty, in that order of preference.
func Open(opts Options) (*Store, error) {
	s := New()
	switch {
	case opts.DatasetPath != "":
		f, err := os.Open(opts.DatasetPath)
		if err != nil {
			return nil, fmt.Errorf("open dataset: %w", err)
		}
		defer f.Close()
		d, err := ReadDataset(f)
		if err != nil {
			return nil, err
		}
		if err := s.Load(d); err != nil {
			return nil, fmt.Errorf("load dataset %s: %w", opts.DatasetPath, err)
		}
	case opts.SeedDemoData:
		if err := s.Load(NewGenerator(opts.Seed, opts.Now).Generate(opts.Extensions)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

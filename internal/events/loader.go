package events

import (
	"context"
	_ "embed"
	"os"
	"sync"

	"cloudeng.io/logging/ctxlog"
)

//go:embed data/events.json
var bundled []byte

// BundledSource names the embedded dataset in errors and logs.
const BundledSource = "bundled dataset"

// Loader builds the Index at most once. Every call to Load after the first
// returns the same Index, or the same error.
type Loader struct {
	path string

	once  sync.Once
	index *Index
	err   error
}

// NewLoader returns a Loader for the dataset file at path, or for the
// bundled dataset when path is empty. Nothing is read until Load is called.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and validates the dataset on first use.
func (l *Loader) Load(ctx context.Context) (*Index, error) {
	l.once.Do(func() {
		source, data := BundledSource, bundled
		if l.path != "" {
			source = l.path
			raw, err := os.ReadFile(l.path)
			if err != nil {
				l.err = &LoadError{Source: source, Err: err}
				return
			}
			data = raw
		}
		l.index, l.err = Parse(source, data)
		if l.err != nil {
			return
		}
		ctxlog.Logger(ctx).Debug("event dataset loaded", "source", source, "events", l.index.Len())
	})
	return l.index, l.err
}

package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type options struct {
	verbose bool
	// writer receives verbose progress lines (typically stderr) so stdout
	// only carries summaries.
	writer io.Writer
}

type Option func(*options)

func WithVerbose(enabled bool, writer io.Writer) Option {
	return func(o *options) {
		o.verbose = enabled
		o.writer = writer
	}
}

// Loader reads evaluation documents from disk, several at a time.
type Loader struct {
	concurrency int
	opts        options
	group       singleflight.Group
	logMu       sync.Mutex
}

func NewLoader(concurrency int, opts ...Option) (*Loader, error) {
	if concurrency <= 0 {
		return nil, fmt.Errorf("concurrency must be >= 1, got %d", concurrency)
	}
	o := options{}
	for _, apply := range opts {
		if apply != nil {
			apply(&o)
		}
	}
	if o.verbose && o.writer == nil {
		o.writer = os.Stderr
	}
	return &Loader{concurrency: concurrency, opts: o}, nil
}

// LoadFile reads and decodes a single document.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decode(path, data)
}

// LoadAll loads every path and returns the documents in argument order.
// Loads of the same file that overlap in time are shared; a duplicate path
// whose first load already finished is read again. The first error cancels
// the remaining loads and is returned.
func (l *Loader) LoadAll(ctx context.Context, paths []string) ([]*Document, error) {
	if ctx == nil {
		return nil, errors.New("context is nil")
	}
	if l == nil {
		return nil, errors.New("loader is nil")
	}

	docs := make([]*Document, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := l.load(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (l *Loader) load(path string) (*Document, error) {
	key := path
	if abs, err := filepath.Abs(path); err == nil {
		key = abs
	}

	v, err, shared := l.group.Do(key, func() (any, error) {
		l.logf("[verbose] loading %s\n", path)
		return LoadFile(path)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		l.logf("[verbose] reused concurrent load of %s\n", path)
	}
	return v.(*Document), nil
}

func (l *Loader) logf(format string, args ...any) {
	if !l.opts.verbose || l.opts.writer == nil {
		return
	}
	l.logMu.Lock()
	defer l.logMu.Unlock()
	_, _ = fmt.Fprintf(l.opts.writer, format, args...)
}

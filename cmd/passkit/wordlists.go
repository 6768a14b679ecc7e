package main

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/hasbyte1/go-passkit/config"
	"github.com/hasbyte1/go-passkit/wordlist"
)

// loadWordlists starts reading the configured wordlist files in the
// background. With no paths configured the returned future is already
// complete with empty lists.
func loadWordlists(ctx context.Context, c config.WordlistsConfig, logger *log.Logger) *wordlist.Future {
	if c.Common == "" && c.Names == "" {
		return wordlist.Loaded(wordlist.Empty())
	}
	return wordlist.Load(ctx, func(ctx context.Context) (*wordlist.Lists, error) {
		start := time.Now()
		var common, names []string

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			common, err = readList(ctx, c.Common)
			return err
		})
		g.Go(func() (err error) {
			names, err = readList(ctx, c.Names)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		l := wordlist.New(common, names)
		logger.Debug("wordlists loaded", "common", l.CommonCount(), "names", l.NameCount(), "took", time.Since(start))
		return l, nil
	})
}

func readList(ctx context.Context, path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return wordlist.Read(f)
}

// awaitWordlists waits up to timeout for f. On failure or timeout it logs a
// warning; classification then proceeds with whatever f holds, which is
// empty until the load succeeds.
func awaitWordlists(ctx context.Context, f *wordlist.Future, timeout time.Duration, logger *log.Logger) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if _, err := f.Wait(ctx); err != nil {
		logger.Warn("classifying without wordlists", "err", err)
	}
}

package wordlist_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-passkit/wordlist"
)

func TestFuture_PendingIsEmpty(t *testing.T) {
	release := make(chan struct{})
	f := wordlist.Load(context.Background(), func(context.Context) (*wordlist.Lists, error) {
		<-release
		return wordlist.New([]string{"password"}, nil), nil
	})

	assert.False(t, f.Ready())
	_, err := f.Result()
	assert.ErrorIs(t, err, wordlist.ErrNotLoaded)
	assert.False(t, f.Lists().IsCommon("password"), "pending load behaves as empty")

	close(release)
	l, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, l.IsCommon("password"))
	assert.True(t, f.Ready())
	assert.True(t, f.Lists().IsCommon("password"))
}

func TestFuture_Failure(t *testing.T) {
	boom := errors.New("boom")
	f := wordlist.Load(context.Background(), func(context.Context) (*wordlist.Lists, error) {
		return nil, boom
	})
	<-f.Done()

	assert.False(t, f.Ready())
	_, err := f.Result()
	assert.ErrorIs(t, err, wordlist.ErrNotLoaded)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, f.Lists().CommonCount())
}

func TestFuture_Panic(t *testing.T) {
	f := wordlist.Load(context.Background(), func(context.Context) (*wordlist.Lists, error) {
		panic("corrupt list")
	})
	_, err := f.Wait(context.Background())
	assert.ErrorIs(t, err, wordlist.ErrLoadPanic)
	assert.ErrorContains(t, err, "corrupt list")
}

func TestFuture_NilListsBecomeEmpty(t *testing.T) {
	f := wordlist.Load(context.Background(), func(context.Context) (*wordlist.Lists, error) {
		return nil, nil
	})
	l, err := f.Wait(context.Background())
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Zero(t, l.CommonCount())
}

func TestFuture_WaitTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	f := wordlist.Load(context.Background(), func(context.Context) (*wordlist.Lists, error) {
		<-release
		return wordlist.Empty(), nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFuture_ContextPassedThrough(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	var got any
	f := wordlist.Load(ctx, func(ctx context.Context) (*wordlist.Lists, error) {
		got = ctx.Value(key{})
		return wordlist.Empty(), nil
	})
	<-f.Done()
	assert.Equal(t, "v", got)
}

func TestFuture_ConcurrentReaders(t *testing.T) {
	f := wordlist.Load(context.Background(), func(context.Context) (*wordlist.Lists, error) {
		return wordlist.New([]string{"123456"}, []string{"eve"}), nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = f.Lists().IsCommon("123456")
			l, err := f.Wait(context.Background())
			if assert.NoError(t, err) {
				assert.True(t, l.IsName("EVE"))
			}
		}()
	}
	wg.Wait()
}

func TestLoaded(t *testing.T) {
	f := wordlist.Loaded(wordlist.New(nil, []string{"mallory"}))
	assert.True(t, f.Ready())
	assert.True(t, f.Lists().IsName("Mallory"))

	var nilFuture *wordlist.Future
	assert.Zero(t, nilFuture.Lists().NameCount())
}

package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/halma/config"
)

func TestLoadOnce(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	calls := 0
	lf := func(cfg *config.Config, key string) (interface{}, error) {
		calls++
		return key + "!", nil
	}
	for i := 0; i < 3; i++ {
		obj, err := Load(cfg, "tables:a.yaml", lf)
		is.NoErr(err)
		is.Equal(obj.(string), "tables:a.yaml!")
	}
	is.Equal(calls, 1)

	Forget("tables:a.yaml")
	_, err := Load(cfg, "tables:a.yaml", lf)
	is.NoErr(err)
	is.Equal(calls, 2)
}

func TestLoadError(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	boom := errors.New("boom")
	_, err := Load(cfg, "tables:bad.yaml", func(*config.Config, string) (interface{}, error) {
		return nil, boom
	})
	is.Equal(err, boom)
	// failures are not remembered
	obj, err := Load(cfg, "tables:bad.yaml", func(*config.Config, string) (interface{}, error) {
		return 1, nil
	})
	is.NoErr(err)
	is.Equal(obj.(int), 1)
}

func TestConcurrentLoadsShareOne(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	var calls atomic.Int32
	release := make(chan struct{})
	slow := func(cfg *config.Config, key string) (interface{}, error) {
		calls.Add(1)
		<-release
		return key, nil
	}

	var wg sync.WaitGroup
	results := make([]interface{}, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			obj, err := Load(cfg, "tables:shared.yaml", slow)
			if err == nil {
				results[i] = obj
			}
		}(i)
	}
	// Another key is not held up by the slow one.
	obj, err := Load(cfg, "tables:other.yaml", func(*config.Config, string) (interface{}, error) {
		return "other", nil
	})
	is.NoErr(err)
	is.Equal(obj.(string), "other")

	close(release)
	wg.Wait()
	is.Equal(calls.Load(), int32(1))
	for _, r := range results {
		is.Equal(r.(string), "tables:shared.yaml")
	}
	Forget("tables:shared.yaml")
	Forget("tables:other.yaml")
}

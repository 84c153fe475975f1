// Package cache keeps objects that are expensive to build, such as
// positional tables read from a file, so that every game in the process
// shares one copy.
package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/halma/config"
)

type loadFunc func(cfg *config.Config, key string) (interface{}, error)

// slot holds one key. Its lock is held while the key loads, so callers
// asking for the same key wait for one load, while other keys go ahead.
type slot struct {
	sync.Mutex
	obj    interface{}
	loaded bool
}

type objectCache struct {
	mu    sync.Mutex
	slots map[string]*slot
}

var objects = &objectCache{slots: map[string]*slot{}}

func (c *objectCache) slotFor(key string) *slot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.slots[key]
	if !ok {
		s = &slot{}
		c.slots[key] = s
	}
	return s
}

func (c *objectCache) get(cfg *config.Config, key string, fn loadFunc) (interface{}, error) {
	s := c.slotFor(key)
	s.Lock()
	defer s.Unlock()
	if s.loaded {
		log.Debug().Str("key", key).Msg("cache-hit")
		return s.obj, nil
	}
	log.Debug().Str("key", key).Msg("cache-load")
	obj, err := fn(cfg, key)
	if err != nil {
		// not remembered; the next caller tries again
		return nil, err
	}
	s.obj, s.loaded = obj, true
	return obj, nil
}

func (c *objectCache) forget(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.slots, key)
}

// Load returns the object stored under key, calling fn the first time
// the key is asked for.
func Load(cfg *config.Config, key string, fn loadFunc) (interface{}, error) {
	return objects.get(cfg, key, fn)
}

// Forget drops key, so that the next Load builds it again.
func Forget(key string) {
	objects.forget(key)
}

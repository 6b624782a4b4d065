package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

var _ Cache = (*FreeCache)(nil)

type FreeCache struct {
	cache *freecache.Cache
}

func NewFreeCache(sizeMB int) *FreeCache {
	megabyte := 1024 * 1024
	// freecache enforces a 512KB minimum on its own
	return &FreeCache{
		cache: freecache.NewCache(sizeMB * megabyte),
	}
}

func (fc *FreeCache) Get(key string) ([]byte, bool) {
	val, err := fc.cache.Get([]byte(key))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Warnf("freecache get [%s]: %s", key, err)
		}
		return nil, false
	}
	return val, true
}

func (fc *FreeCache) Set(key string, value []byte, ttl time.Duration) error {
	if err := fc.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		return fmt.Errorf("freecache set [%s]: %w", key, err)
	}
	return nil
}

func (fc *FreeCache) Clear() {
	fc.cache.Clear()
}

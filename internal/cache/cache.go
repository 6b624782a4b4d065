package cache

import "time"

// Cache is a process-local byte cache. Misses are reported with ok == false.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Clear()
}

package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// LookupRepository caches distinct lookup lists (jurisdictions, alert
// types, case types, document types) so filter dropdowns do not hit the
// database on every request.
type LookupRepository struct {
	cache *cache.Cache
}

func NewLookupRepository() *LookupRepository {
	// Lookup lists only change when reference data changes, a short TTL
	// keeps them fresh enough
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &LookupRepository{
		cache: c,
	}
}

func (r *LookupRepository) Save(key string, values []string) {
	r.cache.Set(key, values, cache.DefaultExpiration)
}

func (r *LookupRepository) Get(key string) ([]string, bool) {
	if x, found := r.cache.Get(key); found {
		return x.([]string), true
	}
	return nil, false
}

func (r *LookupRepository) Invalidate(key string) {
	r.cache.Delete(key)
}

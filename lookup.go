package namecast

import "sync"

// parallelLookup queries the cache for every key concurrently and returns
// the hits keyed as given. Remote backends pay a round trip per Get, so
// a batch issues its lookups in parallel.
func parallelLookup(cache Cache, keys []string) map[string]string {
	hits := make(map[string]string)
	if cache == nil || len(keys) == 0 {
		return hits
	}

	type lookupResult struct {
		key   string
		value string
		found bool
	}

	results := make(chan lookupResult, len(keys))
	var wg sync.WaitGroup

	for _, key := range keys {
		wg.Add(1)
		go func(k string) {
			defer wg.Done()
			if v, ok := cache.Get(k); ok {
				results <- lookupResult{key: k, value: v, found: true}
			} else {
				results <- lookupResult{key: k}
			}
		}(key)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		if r.found {
			hits[r.key] = r.value
		}
	}

	return hits
}

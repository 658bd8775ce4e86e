package contracts

import "context"

// ResponseCache stores raw CSV bodies keyed by request URL so repeated
// sessions over the same days or games skip the network. Implementations are
// best-effort: a cache failure is a miss, never a session failure.
type ResponseCache interface {
	// Get returns the cached body for url, ok false on miss
	Get(ctx context.Context, url string) (body string, ok bool)

	// Put stores the body for url
	Put(ctx context.Context, url, body string)
}

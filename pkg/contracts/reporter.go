package contracts

// Reporter receives coarse progress callbacks while a session fetches.
// Implementations must tolerate concurrent calls; all methods are optional
// no-ops for consumers that only want the final dataset.
type Reporter interface {
	// OnFetchStart is called once before the first request, with the total
	// number of URLs the session will fetch.
	OnFetchStart(sessionID string, total int)

	// OnProgress is called after each request completes (in completion
	// order, not request order).
	OnProgress(sessionID string, completed, total int)

	// OnFetchDone is called once after the last request, whether or not
	// the fetch phase succeeded.
	OnFetchDone(sessionID string)
}

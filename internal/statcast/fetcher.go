package statcast

import (
	"context"
	"sync"
)

// defaultWorkers caps the fetch pool when the caller doesn't configure one
const defaultWorkers = 16

// fetchAll executes every URL with a bounded worker pool and collects bodies
// in completion order. The first failure cancels outstanding work and fails
// the whole fetch - there is no partial success.
func (s *Session) fetchAll(ctx context.Context, urls []string) ([]string, error) {
	if len(urls) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := s.workers
	if workers > len(urls) {
		workers = len(urls)
	}

	if s.reporter != nil {
		s.reporter.OnFetchStart(s.id, len(urls))
		defer s.reporter.OnFetchDone(s.id)
	}

	jobs := make(chan string)

	var (
		mu        sync.Mutex
		bodies    []string
		firstErr  error
		completed int
	)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for url := range jobs {
				if ctx.Err() != nil {
					continue
				}

				body, err := s.fetchOne(ctx, url)

				mu.Lock()
				completed++
				if err != nil {
					if firstErr == nil {
						firstErr = &FetchError{URL: url, Err: err}
						cancel()
					}
				} else {
					bodies = append(bodies, body)
					if s.reporter != nil {
						s.reporter.OnProgress(s.id, completed, len(urls))
					}
				}
				mu.Unlock()
			}
		}()
	}

	for _, url := range urls {
		jobs <- url
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return bodies, nil
}

// fetchOne consults the response cache before the network and refreshes it
// after. Cache failures degrade to misses.
func (s *Session) fetchOne(ctx context.Context, url string) (string, error) {
	if s.cache != nil {
		if body, ok := s.cache.Get(ctx, url); ok {
			return body, nil
		}
	}

	body, err := s.source.FetchCSV(ctx, url)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		s.cache.Put(ctx, url, body)
	}

	return body, nil
}

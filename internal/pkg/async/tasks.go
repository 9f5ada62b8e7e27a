package async

import (
	"strings"
	"sync"

	"golang.org/x/exp/constraints"
)

type Errors struct {
	E []error
}

var _ error = (*Errors)(nil)

func (e Errors) Wrapped() error {
	if len(e.E) == 0 {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	var sb strings.Builder
	l := len(e.E)
	for i, err := range e.E {
		sb.WriteString(err.Error())
		if i < l-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// Map runs f over src with at most concurrencyLimit invocations in flight
// and returns the results in source order. Result ordering must stay stable
// regardless of scheduling so that downstream output is deterministic.
func Map[T any, D any](src []T, concurrencyLimit int, f func(T) (D, error)) ([]D, error) {
	if len(src) == 0 {
		return []D{}, nil
	}

	concurrencyLimit = clamp(concurrencyLimit, 1, len(src))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		errs    Errors
		limiter = make(chan struct{}, concurrencyLimit)
	)

	results := make([]D, len(src))

	wg.Add(len(src))
	for i, element := range src {
		limiter <- struct{}{}
		go func(i int, el T) {
			defer func() {
				<-limiter
				wg.Done()
			}()

			r, err := f(el)
			if err != nil {
				mu.Lock()
				errs.E = append(errs.E, err)
				mu.Unlock()
				return
			}
			results[i] = r
		}(i, element)
	}

	wg.Wait()

	return results, errs.Wrapped()
}

func FlatMap[T any, D any](src []T, concurrencyLimit int, f func(T) ([]D, error)) ([]D, error) {
	r, err := Map(src, concurrencyLimit, f)
	if err != nil {
		return nil, err
	}

	flattened := make([]D, 0, len(r))
	for _, v := range r {
		flattened = append(flattened, v...)
	}

	return flattened, nil
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

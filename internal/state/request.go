// Package state holds the per-entity state containers. Each container keeps
// an entity snapshot, a loading flag, and the last error, and transitions
// through the three-phase request lifecycle: Begin (pending), then exactly one
// of a succeed-variant (fulfilled) or Fail (rejected).
//
// Containers are plain structs. They are mutated only from the Bubble Tea
// update loop (or a single CLI goroutine), so they carry no locks.
package state

import "carrego/internal/domain"

// Request tracks one container's in-flight request state
type Request struct {
	loading bool
	err     *domain.APIError
}

// Begin marks the request pending and clears the previous error. It is the
// duplicate-dispatch guard: while a request is already pending it returns
// false and the new dispatch must be dropped.
func (r *Request) Begin() bool {
	if r.loading {
		return false
	}
	r.loading = true
	r.err = nil
	return true
}

// Fail marks the request rejected with the normalized error
func (r *Request) Fail(err *domain.APIError) {
	r.loading = false
	r.err = err
}

// Succeed marks the request fulfilled
func (r *Request) Succeed() {
	r.loading = false
}

// Loading reports whether a request is in flight
func (r *Request) Loading() bool {
	return r.loading
}

// Err returns the last error, nil after Begin or Succeed
func (r *Request) Err() *domain.APIError {
	return r.err
}

// finish applies the fulfilled/rejected transition shared by every container:
// on error the snapshot mutation is skipped, matching the rule that failed
// attempts never touch entity data.
func (r *Request) finish(err *domain.APIError, mutate func()) {
	if err != nil {
		r.Fail(err)
		return
	}
	r.Succeed()
	if mutate != nil {
		mutate()
	}
}

package mocks

import "sync"

// recorder keeps the calls made to a mock and the errors it should return
// instead of delegating.
type recorder struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]error
}

// FailOn makes every later call to method return err. A nil err clears it.
func (r *recorder) FailOn(method string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fail == nil {
		r.fail = make(map[string]error)
	}
	if err == nil {
		delete(r.fail, method)
		return
	}
	r.fail[method] = err
}

// Calls returns the method names called so far, in call order.
func (r *recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func (r *recorder) call(method string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, method)
	return r.fail[method]
}

package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/chazu/resgeom/pkg/params"
)

// EvalTimeout bounds a single evaluation.
const EvalTimeout = 5 * time.Second

type evalResult struct {
	params *params.Params
	errors []EvalError
	err    error
}

// waitWithTimeout returns the result from ch, or an error once EvalTimeout
// passes. A result whose generation is no longer current is discarded; a
// timed-out goroutine may still finish later and its result is dropped the
// same way.
func waitWithTimeout(ch <-chan evalResult, gen uint64, mu *sync.Mutex, current *uint64) (*params.Params, []EvalError, error) {
	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		mu.Lock()
		latest := *current
		mu.Unlock()
		if gen != latest {
			return nil, nil, fmt.Errorf("evaluation superseded by newer request")
		}
		return res.params, res.errors, res.err
	case <-timer.C:
		return nil, nil, fmt.Errorf("evaluation timed out after %s", EvalTimeout)
	}
}

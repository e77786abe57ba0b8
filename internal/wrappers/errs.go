// Package wrappers provides small error-aggregation helpers shared by the
// config-validation code across dsbeam.
package wrappers

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Errs collects zero or more errors and folds them into a single error.
type Errs struct {
	mu   sync.Mutex
	errs []error
}

// Add appends err to the collection, ignoring nil.
func (e *Errs) Add(err error) {
	if err == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.errs = append(e.errs, err)
}

// Errored reports whether any error has been added.
func (e *Errs) Errored() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.errs) > 0
}

// Err folds the collected errors into one: nil, the single error, or a
// combined multi-line error.
func (e *Errs) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch len(e.errs) {
	case 0:
		return nil
	case 1:
		return e.errs[0]
	default:
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d errors occurred:", len(e.errs))
		for _, err := range e.errs {
			sb.WriteString("\n\t* ")
			sb.WriteString(err.Error())
		}
		return errors.New(sb.String())
	}
}

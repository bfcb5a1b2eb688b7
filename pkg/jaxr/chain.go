package jaxr

import "errors"

// Chain returns err followed by each error reached by repeatedly unwrapping
// it. Walking stops at nil or when an exception repeats.
func Chain(err error) []error {
	var chain []error
	seen := make(map[*Exception]struct{})

	for err != nil {
		if e, ok := err.(*Exception); ok {
			if e == nil {
				break
			}
			if _, loop := seen[e]; loop {
				break
			}
			seen[e] = struct{}{}
		}
		chain = append(chain, err)
		err = errors.Unwrap(err)
	}

	return chain
}

// RootCause returns the innermost error of the chain starting at err.
func RootCause(err error) error {
	chain := Chain(err)
	if len(chain) == 0 {
		return nil
	}

	return chain[len(chain)-1]
}

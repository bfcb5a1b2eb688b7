package jaxr

// Response is the contract shared by registry responses.
type Response interface {
	RequestID() string
	Status() int
	// IsAvailable reports whether the response is ready. It must not block.
	IsAvailable() (bool, error)
}

var _ Response = (*Exception)(nil)

// TODO: correlate RequestID with the originating registry call once a
// registry client exists to issue request identifiers.
func (e *Exception) RequestID() string {
	return ""
}

// TODO: define the status code domain together with RequestID.
func (e *Exception) Status() int {
	return 0
}

func (e *Exception) IsAvailable() (bool, error) {
	return true, nil
}

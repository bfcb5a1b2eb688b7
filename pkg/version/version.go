package version

import "fmt"

const unreleased = "edge"

// Set at link time, for example:
//
//	go build -ldflags "-X github.com/spiceai/jaxr/pkg/version.release=0.3.1"
var release = unreleased

// Version returns "edge" for builds without an injected release,
// otherwise the release prefixed with "v".
func Version() string {
	if release == unreleased {
		return release
	}

	return fmt.Sprintf("v%s", release)
}

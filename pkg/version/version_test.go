package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	t.Run("Version() - Unreleased builds report edge", func(t *testing.T) {
		assert.Equal(t, "edge", Version())
	})

	t.Run("Version() - Injected release is prefixed", func(t *testing.T) {
		original := release
		t.Cleanup(func() { release = original })

		release = "0.3.1"
		assert.Equal(t, "v0.3.1", Version())
	})
}

package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconstructPath(t *testing.T) {
	previous := map[string]string{"B": "A", "C": "B", "D": "C"}
	lookup := func(n string) (string, bool) {
		p, ok := previous[n]
		return p, ok
	}

	assert.Equal(t, []string{"B", "C", "D"}, ReconstructPath(lookup, "D", "A"))
	assert.Equal(t, []string{"C"}, ReconstructPath(lookup, "C", "B"))

	same := ReconstructPath(lookup, "A", "A")
	assert.NotNil(t, same)
	assert.Empty(t, same)

	// A broken chain stops at its root, which is not part of the path.
	assert.Equal(t, []string{"B", "C"}, ReconstructPath(lookup, "C", "Z"))
	assert.Empty(t, ReconstructPath(lookup, "A", "Z"))
}

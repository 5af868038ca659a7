package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "1.2.3", normalize("v1.2.3"))
	assert.Equal(t, "1.2.0", normalize("1.2"))
	assert.Equal(t, "1.0.0-rc.1", normalize("v1.0.0-rc.1"))
	assert.Equal(t, fallback, normalize("main"))
	assert.Equal(t, fallback, normalize(""))
}

func TestCurrent(t *testing.T) {
	assert.Equal(t, "0.1.0", Current())
}

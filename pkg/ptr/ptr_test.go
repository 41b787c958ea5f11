package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	p := Ptr("pending")
	require.NotNil(t, p)
	assert.Equal(t, "pending", *p)
}

func TestDeref(t *testing.T) {
	n := 90
	assert.Equal(t, 90, Deref(&n, 60))
	assert.Equal(t, 60, Deref[int](nil, 60))
}

package instance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockAndUnlock(t *testing.T) {
	dir := t.TempDir()

	fl, err := Lock(dir)
	require.NoError(t, err)
	require.NotNil(t, fl)

	_, err = Lock(dir)
	assert.Error(t, err)

	Unlock(fl)

	fl2, err := Lock(dir)
	assert.NoError(t, err)
	Unlock(fl2)
}

func TestUnlockNil(t *testing.T) {
	Unlock(nil) // must not panic
}

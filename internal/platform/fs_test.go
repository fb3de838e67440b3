package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSWritesHostFiles(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "marker")
	require.NoError(t, afero.WriteFile(OS(), path, []byte("marker"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "marker", string(data))
}

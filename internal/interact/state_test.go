package interact

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galaxypad/galaxy/internal/value"
)

func TestSaveAndLoadStateRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	want := value.FromElements([]value.Value{value.Int{N: 1}, value.Int{N: 2}})

	require.NoError(t, SaveState(path, want, "checkpoint after turn 3"))

	got, err := LoadState(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadStateMissingFileIsAnError(t *testing.T) {
	_, err := LoadState(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machkit/mach/internal/errors"
)

func TestOpen_MissingFileIsEmpty(t *testing.T) {
	idx, err := Open(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, idx.Records)
}

func TestOpen_CorruptFile(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, stateDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, stateFile), []byte("{{not yaml"), 0644))

	_, err := Open(root)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrState))
}

func TestIndex_PutLookupRemove(t *testing.T) {
	idx := Empty()

	require.NoError(t, idx.Put(Record{Name: "web", Provider: "docker"}))
	require.NoError(t, idx.Put(Record{Name: "db", Provider: "virtualbox"}))

	rec, ok := idx.Lookup("web")
	require.True(t, ok)
	assert.Equal(t, "docker", rec.Provider)

	_, ok = idx.Lookup("ghost")
	assert.False(t, ok)

	idx.Remove("web")
	_, ok = idx.Lookup("web")
	assert.False(t, ok)

	// Removing an absent name is fine.
	idx.Remove("ghost")
	assert.Len(t, idx.Records, 1)
}

func TestIndex_PutSameProviderUpdates(t *testing.T) {
	idx := Empty()

	require.NoError(t, idx.Put(Record{Name: "web", Provider: "docker", State: "running"}))
	require.NoError(t, idx.Put(Record{Name: "web", Provider: "docker", State: "stopped"}))

	require.Len(t, idx.Records, 1)
	rec, _ := idx.Lookup("web")
	assert.Equal(t, "stopped", rec.State)
}

func TestIndex_PutProviderConflict(t *testing.T) {
	idx := Empty()
	require.NoError(t, idx.Put(Record{Name: "web", Provider: "docker"}))

	err := idx.Put(Record{Name: "web", Provider: "virtualbox"})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrProviderConflict))
	assert.Contains(t, err.Error(), "docker")
}

func TestIndex_SaveRoundTrip(t *testing.T) {
	root := t.TempDir()

	idx, err := Open(root)
	require.NoError(t, err)
	require.NoError(t, idx.Put(Record{Name: "web", Provider: "docker", ID: "abc123", State: "running"}))
	require.NoError(t, idx.Save())

	reloaded, err := Open(root)
	require.NoError(t, err)
	require.Len(t, reloaded.Records, 1)
	assert.Equal(t, "web", reloaded.Records[0].Name)
	assert.Equal(t, "docker", reloaded.Records[0].Provider)
	assert.Equal(t, "abc123", reloaded.Records[0].ID)
}

func TestIndex_SaveWithoutBackingFile(t *testing.T) {
	idx := Empty()
	require.NoError(t, idx.Put(Record{Name: "web", Provider: "docker"}))

	assert.NoError(t, idx.Save())
}

func TestIndex_PreservesActivationOrder(t *testing.T) {
	root := t.TempDir()

	idx, err := Open(root)
	require.NoError(t, err)
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, idx.Put(Record{Name: name, Provider: "docker"}))
	}
	require.NoError(t, idx.Save())

	reloaded, err := Open(root)
	require.NoError(t, err)
	names := make([]string, len(reloaded.Records))
	for i, r := range reloaded.Records {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"c", "a", "b"}, names)
}

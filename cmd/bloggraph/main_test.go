package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanpama/bloggraph/internal/store"
)

func TestRunRequiresCommand(t *testing.T) {
	require.Error(t, run(nil))
	require.Error(t, run([]string{"frobnicate"}))
}

func TestDumpSeedRoundTrips(t *testing.T) {
	out := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, run([]string{"dump-seed", "-out", out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var ds store.Dataset
	require.NoError(t, json.Unmarshal(data, &ds))
	require.Len(t, ds.Users, 2)
	require.Len(t, ds.Posts, 4)
	require.Len(t, ds.Comments, 5)

	// The dump is valid -data.file input.
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	st, err := store.Load(f)
	require.NoError(t, err)
	require.Equal(t, "Alice", st.UserByID(1).Name)
}

func TestLoadStoreFallsBackToSeed(t *testing.T) {
	st, err := loadStore("")
	require.NoError(t, err)
	require.NotNil(t, st.PostByID(202))
}

func TestLoadStoreMissingFile(t *testing.T) {
	_, err := loadStore(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

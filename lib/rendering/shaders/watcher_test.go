package shaders_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/glintgl/glint/lib/rendering/shaders"
)

func TestWatcherReportsChangedFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/watched.frag"
	require.NoError(t, writeFile(path, "before"))

	watcher, err := shaders.Watch(path)
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, writeFile(path, "after"))

	select {
	case <-watcher.Changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification within 5s")
	}
}

func TestWatchMissingFileFails(t *testing.T) {
	_, err := shaders.Watch(t.TempDir() + "/does-not-exist.vert")
	require.Error(t, err)
}

package staging

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLocalPathPassesThrough(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "fam.tre")
	require.NoError(t, os.WriteFile(p, []byte("(a,b);"), 0644))

	ref := NewFileRef(p)
	local, err := ref.Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, p, local)
	assert.Equal(t, p, ref.LocalPath)
}

func TestResolveFileURL(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "fam.fa")
	require.NoError(t, os.WriteFile(p, []byte(">a\nATG\n"), 0644))

	local, err := NewFileRef("file://" + p).Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, p, local)
}

func TestResolveHTTPDownloads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("(speciesA|gene1,speciesB|gene1);"))
	}))
	defer srv.Close()

	workDir := filepath.Join(t.TempDir(), "stage")
	local, err := NewFileRef(srv.URL + "/trees/fam.tre").Resolve(workDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workDir, "fam.tre"), local)

	data, err := os.ReadFile(local)
	require.NoError(t, err)
	assert.Equal(t, "(speciesA|gene1,speciesB|gene1);", string(data))
}

func TestResolveHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewFileRef(srv.URL + "/missing.tre").Resolve(t.TempDir())
	assert.Error(t, err)
}

func TestResolveUnsupportedScheme(t *testing.T) {
	_, err := NewFileRef("s3://bucket/fam.tre").Resolve(t.TempDir())
	assert.Error(t, err)
}

func TestPublishCopiesTree(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "trees"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "fam.orthosnap.0.fa"), []byte(">a\nATG\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "trees", "fam.orthosnap.0.tre"), []byte("(a,b);"), 0644))

	dest := filepath.Join(t.TempDir(), "results")
	published, err := NewDirRef(dest).Publish(src)
	require.NoError(t, err)
	assert.Equal(t, dest, published)

	assert.FileExists(t, filepath.Join(dest, "fam.orthosnap.0.fa"))
	assert.FileExists(t, filepath.Join(dest, "trees", "fam.orthosnap.0.tre"))
}

func TestPublishIsIdempotent(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "fam.orthosnap.0.fa"), []byte(">a\nATG\n"), 0644))

	dest := filepath.Join(t.TempDir(), "results")
	ref := NewDirRef(dest)

	_, err := ref.Publish(src)
	require.NoError(t, err)
	_, err = ref.Publish(src)
	require.NoError(t, err)

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.org/fam.tre"))
	assert.False(t, IsURL("/data/fam.tre"))
}

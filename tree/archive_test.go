package tree

import (
	"archive/tar"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/jxsl13/attr-diff/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTarGz(t *testing.T, headers ...*tar.Header) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.tar.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	for _, h := range headers {
		require.NoError(t, tw.WriteHeader(h))
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return path
}

func TestOpenArchive(t *testing.T) {
	path := writeTarGz(t,
		&tar.Header{Name: "a/", Typeflag: tar.TypeDir, Mode: 0o755, Uid: 0, Gid: 0},
		&tar.Header{Name: "a/file1", Typeflag: tar.TypeReg, Mode: 0o644, Uid: 500, Gid: 100},
		&tar.Header{Name: "b/c/deep", Typeflag: tar.TypeReg, Mode: 0o600, Uid: 1, Gid: 1},
	)
	assert.True(t, IsArchive(path))

	x, err := OpenArchive(path)
	require.NoError(t, err)
	assert.Equal(t, path, x.Root())
	assert.Equal(t, path+"/a/file1", x.Abs("a/file1"))

	s, err := x.Lstat("a/file1")
	require.NoError(t, err)
	assert.Equal(t, model.TypeFile, s.Type)
	assert.Equal(t, 500, s.Uid)
	assert.Equal(t, 100, s.Gid)
	assert.Equal(t, 644, s.Perm())

	s, err = x.Lstat("b/c")
	require.NoError(t, err)
	assert.True(t, s.IsDir())
}

func TestOpenArchiveCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.tgz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip"), 0o644))
	_, err := OpenArchive(path)
	assert.Error(t, err)
}

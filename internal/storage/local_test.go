package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFileHeader builds a real multipart.FileHeader carrying content.
func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestLocalStorage_Store(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	content := []byte("fake image bytes")
	name, err := s.Store(context.Background(), newFileHeader(t, "photo.jpg", content))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "-photo.jpg"))

	stored, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, content, stored)

	ok, err := s.Exists(context.Background(), name)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalStorage_UniqueNames(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	a, err := s.Store(context.Background(), newFileHeader(t, "same.jpg", []byte("a")))
	require.NoError(t, err)
	b, err := s.Store(context.Background(), newFileHeader(t, "same.jpg", []byte("b")))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestLocalStorage_SanitizesNames(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	name, err := s.Store(context.Background(), newFileHeader(t, "../../etc passwd?.jpg", []byte("x")))
	require.NoError(t, err)

	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, "..")
	assert.NotContains(t, name, " ")
	assert.NotContains(t, name, "?")

	// The file landed inside the base directory.
	_, err = os.Stat(filepath.Join(dir, name))
	assert.NoError(t, err)
}

func TestLocalStorage_Delete(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	name, err := s.Store(context.Background(), newFileHeader(t, "gone.jpg", []byte("x")))
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), name))
	ok, err := s.Exists(context.Background(), name)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing file is not an error.
	assert.NoError(t, s.Delete(context.Background(), name))
}

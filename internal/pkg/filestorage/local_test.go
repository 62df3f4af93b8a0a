package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFile(t *testing.T, filename, contents string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, header, err := req.FormFile("file")
	require.NoError(t, err)
	return header
}

func TestSaveFileWithPath(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base, "/uploads")
	require.NoError(t, err)

	url, err := storage.SaveFileWithPath(uploadedFile(t, "photo.png", "png-bytes"), "staff")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/staff/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	name := strings.TrimPrefix(url, "/uploads/")
	saved, err := os.ReadFile(filepath.Join(base, filepath.FromSlash(name)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(saved))
}

func TestSaveFileUniqueNames(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	first, err := storage.SaveFile(uploadedFile(t, "a.jpg", "one"))
	require.NoError(t, err)
	second, err := storage.SaveFile(uploadedFile(t, "a.jpg", "two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSaveFileNilHeader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	url, err := storage.SaveFile(nil)
	assert.NoError(t, err)
	assert.Empty(t, url)
}

func TestDeleteFileByURL(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base, "/uploads")
	require.NoError(t, err)

	url, err := storage.SaveFileWithPath(uploadedFile(t, "doc.pdf", "pdf"), "library")
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(url))

	name := strings.TrimPrefix(url, "/uploads/")
	_, statErr := os.Stat(filepath.Join(base, filepath.FromSlash(name)))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDeleteFileMissingIsNotAnError(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	assert.NoError(t, storage.DeleteFile("/uploads/staff/nope.png"))
	assert.NoError(t, storage.DeleteFile(""))
}

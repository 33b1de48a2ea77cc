package attach_test

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/yuki-connector/internal/attach"
)

func TestFromBytes_NonPDFPassesThrough(t *testing.T) {
	doc, err := attach.FromBytes("note.txt", []byte("hello world"))
	require.NoError(t, err)

	assert.Equal(t, "note.txt", doc.FileName)
	decoded, err := base64.StdEncoding.DecodeString(doc.Base64)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(decoded))
}

func TestFromBytes_CorruptPDFRejected(t *testing.T) {
	_, err := attach.FromBytes("scan.pdf", []byte("definitely not a pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan.pdf")
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invoice.csv")
	require.NoError(t, os.WriteFile(path, []byte("a;b;c"), 0o644))

	doc, err := attach.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "invoice.csv", doc.FileName)
}

func TestFromFile_Missing(t *testing.T) {
	_, err := attach.FromFile(filepath.Join(t.TempDir(), "absent.pdf"))
	require.Error(t, err)
}

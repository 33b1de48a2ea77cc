// Package attach prepares document attachments for invoice submission.
package attach

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Document is a file ready for embedding in an invoice payload.
type Document struct {
	FileName string
	Base64   string
}

// FromFile reads the file and encodes it for embedding. PDF files are
// validated first so a corrupt scan is caught before the submission round
// trip; other file types are encoded as-is.
func FromFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attachment: %w", err)
	}
	return FromBytes(filepath.Base(path), data)
}

// FromBytes encodes in-memory file content for embedding.
func FromBytes(fileName string, data []byte) (*Document, error) {
	if strings.EqualFold(filepath.Ext(fileName), ".pdf") {
		if err := api.Validate(bytes.NewReader(data), nil); err != nil {
			return nil, fmt.Errorf("attachment %s is not a valid PDF: %w", fileName, err)
		}
	}
	return &Document{
		FileName: fileName,
		Base64:   base64.StdEncoding.EncodeToString(data),
	}, nil
}

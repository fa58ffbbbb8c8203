// Package source reads raw FNOL document text from files, PDFs, and stdin.
// It only produces the text handed to the intake pipeline; nothing here
// influences extraction or routing.
package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/claims-triage/internal/config"
)

// documentExts are the file extensions the batch command picks up.
var documentExts = map[string]bool{
	".txt":  true,
	".text": true,
	".md":   true,
	".pdf":  true,
}

// Loader reads document text according to the input and PDF configuration.
type Loader struct {
	input config.InputConfig
	pdf   config.PDFConfig
	stdin io.Reader
}

// NewLoader creates a Loader reading stdin from os.Stdin.
func NewLoader(input config.InputConfig, pdf config.PDFConfig) *Loader {
	return &Loader{input: input, pdf: pdf, stdin: os.Stdin}
}

// Load returns the text of the document at path. "-" reads stdin; paths
// ending in .pdf run the configured pdftotext binary; anything else is read
// as a text file in the configured charset.
func (l *Loader) Load(ctx context.Context, path string) (string, error) {
	if path == "-" {
		raw, err := io.ReadAll(l.stdin)
		if err != nil {
			return "", eris.Wrap(err, "source: read stdin")
		}
		return decodeText(raw, l.input.Charset)
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return l.extractPDF(ctx, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", eris.Wrapf(err, "source: read %s", path)
	}
	return decodeText(raw, l.input.Charset)
}

// IsDocument reports whether the path looks like a processable document.
func IsDocument(path string) bool {
	return documentExts[strings.ToLower(filepath.Ext(path))]
}

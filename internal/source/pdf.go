package source

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/rotisserie/eris"
)

// extractPDF runs pdftotext -layout on the given PDF and returns stdout.
// PDF decoding is strictly an upstream collaborator: its output is ordinary
// document text and any failure is an I/O error, never a routing outcome.
func (l *Loader) extractPDF(ctx context.Context, pdfPath string) (string, error) {
	if l.pdf.TimeoutSecs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(l.pdf.TimeoutSecs)*time.Second)
		defer cancel()
	}

	bin := l.pdf.PdfToTextPath
	if bin == "" {
		bin = "pdftotext"
	}

	cmd := exec.CommandContext(ctx, bin, "-layout", pdfPath, "-")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", eris.Wrapf(err, "source: pdftotext failed for %s: %s", pdfPath, stderr.String())
	}

	return stdout.String(), nil
}

// Package export renders a submission into its persisted file formats.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/wardrisk/internal/domain"
)

// DateFolderLayout names the per-day output directory, e.g. 15_Jun_2025.
const DateFolderLayout = "02_Jan_2006"

// timestampLayout gives base names second resolution so repeated
// submissions by the same respondent on the same day stay distinct.
const timestampLayout = "20060102_150405"

// Renderer writes the export bundle for a submission under a fixed output
// root, one dated directory per calendar day.
type Renderer struct {
	root      string
	newSuffix func() string
}

// RendererOption customizes a Renderer.
type RendererOption func(*Renderer)

// WithSuffixFunc overrides the collision-suffix generator.
func WithSuffixFunc(fn func() string) RendererOption {
	return func(r *Renderer) { r.newSuffix = fn }
}

func NewRenderer(root string, opts ...RendererOption) *Renderer {
	r := &Renderer{
		root:      root,
		newSuffix: func() string { return uuid.New().String()[:8] },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Root returns the output root directory.
func (r *Renderer) Root() string { return r.root }

// Render writes the CSV, XLSX, DOCX and PDF files plus a zip of the four,
// all sharing one sanitized base name, and returns their paths. Any write
// failure removes every file already written for this submission and
// returns an ExportError: a partial bundle is never handed to delivery.
func (r *Renderer) Render(sub *domain.Submission) (*domain.ExportBundle, error) {
	dir := filepath.Join(r.root, sub.Date.Format(DateFolderLayout))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &domain.ExportError{Path: dir, Err: err}
	}

	base := fmt.Sprintf("%s_%s_%s",
		Sanitize(sub.Ward),
		Sanitize(sub.RespondentName),
		sub.Date.Format(timestampLayout),
	)
	// Same respondent, same ward, same second: disambiguate instead of
	// silently overwriting the earlier bundle.
	if _, err := os.Stat(filepath.Join(dir, base+".csv")); err == nil {
		base = base + "_" + r.newSuffix()
	}

	bundle := &domain.ExportBundle{
		Base:     base,
		CSVPath:  filepath.Join(dir, base+".csv"),
		XLSXPath: filepath.Join(dir, base+".xlsx"),
		DocxPath: filepath.Join(dir, base+".docx"),
		PDFPath:  filepath.Join(dir, base+".pdf"),
		ZipPath:  filepath.Join(dir, base+".zip"),
	}

	var written []string
	fail := func(path string, err error) (*domain.ExportBundle, error) {
		for _, p := range written {
			os.Remove(p)
		}
		return nil, &domain.ExportError{Path: path, Err: err}
	}

	steps := []struct {
		path  string
		write func() error
	}{
		{bundle.CSVPath, func() error { return writeCSV(bundle.CSVPath, sub) }},
		{bundle.XLSXPath, func() error { return writeXLSX(bundle.XLSXPath, sub) }},
		{bundle.DocxPath, func() error { return writeDocx(bundle.DocxPath, sub) }},
		{bundle.PDFPath, func() error { return writePDF(bundle.PDFPath, sub) }},
		{bundle.ZipPath, func() error { return writeZip(bundle.ZipPath, bundle.Attachments()) }},
	}
	for _, step := range steps {
		if err := step.write(); err != nil {
			return fail(step.path, err)
		}
		written = append(written, step.path)
	}

	return bundle, nil
}

// metadataDate is how the submission date appears inside the files.
func metadataDate(t time.Time) string {
	return t.Format("2006-01-02")
}

package out

import (
	"context"
	"fmt"
	"strings"

	"rsc.io/pdf"

	intakeout "studykit/internal/modules/intake/port/out"
)

type PDFSyllabusReader struct{}

func NewPDFSyllabusReader() intakeout.SyllabusReader {
	return &PDFSyllabusReader{}
}

func (r *PDFSyllabusReader) ReadText(_ context.Context, path string) (string, int, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	total := doc.NumPage()
	var pages []string
	for number := 1; number <= total; number++ {
		page := doc.Page(number)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		parts := make([]string, 0, len(content.Text))
		for _, text := range content.Text {
			if strings.TrimSpace(text.S) == "" {
				continue
			}
			parts = append(parts, text.S)
		}
		pages = append(pages, strings.Join(parts, " "))
	}
	return strings.Join(pages, "\n"), total, nil
}

package out

import "context"

// SyllabusReader extracts the text of a syllabus document and its page
// count.
type SyllabusReader interface {
	ReadText(ctx context.Context, path string) (string, int, error)
}

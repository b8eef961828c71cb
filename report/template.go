package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	docx "github.com/lukasjarosch/go-docx"
)

// RenderError wraps a template parse or substitution failure. It is fatal to
// the act being rendered only.
type RenderError struct {
	Name string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("unable to render %s (%v)", e.Name, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Template holds the raw bytes of the act template. The file is read once
// per run and every render parses a fresh document instance from the bytes,
// so no parsed state is ever shared between acts.
type Template struct {
	bytes []byte
}

// LoadTemplate reads the template file. The file must exist and be readable;
// parse errors only surface on render.
func LoadTemplate(path string) (*Template, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read template %s (%w)", path, err)
	}

	return &Template{bytes: b}, nil
}

// Render substitutes the placeholder map into a fresh copy of the template
// and returns the serialized document. Substitution covers body paragraphs,
// tables, headers and footers and preserves run formatting. Tokens present
// in the template but absent from the map are left literally in place.
func (t *Template) Render(name string, placeholders map[string]string) ([]byte, error) {
	doc, err := docx.OpenBytes(t.bytes)
	if err != nil {
		return nil, &RenderError{Name: name, Err: err}
	}

	for token, value := range placeholders {
		if err := doc.Replace(token, value); err != nil {
			if errors.Is(err, docx.ErrPlaceholderNotFound) {
				continue
			}

			return nil, &RenderError{Name: name, Err: err}
		}
	}

	var b bytes.Buffer
	if err := doc.Write(&b); err != nil {
		return nil, &RenderError{Name: name, Err: err}
	}

	return b.Bytes(), nil
}

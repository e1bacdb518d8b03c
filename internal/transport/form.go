package transport

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// Form накапливает multipart-поля; пустые значения не отправляются.
type Form struct {
	fields []field
}

type field struct {
	name     string
	value    string
	filename string
	content  io.Reader
}

func NewForm() *Form { return &Form{} }

func (f *Form) Field(name, value string) *Form {
	if value != "" {
		f.fields = append(f.fields, field{name: name, value: value})
	}
	return f
}

func (f *Form) File(name, filename string, content io.Reader) *Form {
	f.fields = append(f.fields, field{name: name, filename: filename, content: content})
	return f
}

func (f *Form) Encode() (contentType string, body io.Reader, err error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, fd := range f.fields {
		if fd.content != nil {
			part, err := w.CreateFormFile(fd.name, fd.filename)
			if err != nil {
				return "", nil, fmt.Errorf("поле %s: %w", fd.name, err)
			}
			if _, err := io.Copy(part, fd.content); err != nil {
				return "", nil, fmt.Errorf("поле %s: %w", fd.name, err)
			}
			continue
		}
		if err := w.WriteField(fd.name, fd.value); err != nil {
			return "", nil, fmt.Errorf("поле %s: %w", fd.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return "", nil, err
	}
	return w.FormDataContentType(), &buf, nil
}

package payload

import (
	"bytes"
	"fmt"
	"mime/multipart"
)

// Part is one multipart entry. A part is either a scalar (Value) or a file
// (Filename + Data); Filename decides which.
type Part struct {
	Name     string
	Value    string
	Filename string
	Data     []byte
}

// IsFile reports whether the part carries binary file content.
func (p Part) IsFile() bool { return p.Filename != "" }

// Payload is an ordered multipart field set assembled by the builders. Order
// is preserved so indexed sub-item paths arrive grouped the way they were
// emitted.
type Payload struct {
	parts []Part
}

// AddValue appends a scalar field.
func (p *Payload) AddValue(name, value string) {
	p.parts = append(p.parts, Part{Name: name, Value: value})
}

// AddFile appends a binary field. Empty filenames are replaced so the
// receiving side always sees a file part, not a scalar.
func (p *Payload) AddFile(name, filename string, data []byte) {
	if filename == "" {
		filename = "upload"
	}
	p.parts = append(p.parts, Part{Name: name, Filename: filename, Data: data})
}

// Parts returns the ordered entries.
func (p *Payload) Parts() []Part {
	return p.parts
}

// Len returns the number of entries.
func (p *Payload) Len() int {
	return len(p.parts)
}

// Has reports whether any entry uses the given field name.
func (p *Payload) Has(name string) bool {
	for _, part := range p.parts {
		if part.Name == name {
			return true
		}
	}
	return false
}

// Values returns every scalar value recorded under name, in emission order.
// Repeated names are how list-valued scalars (contentRemoves) travel.
func (p *Payload) Values(name string) []string {
	var out []string
	for _, part := range p.parts {
		if part.Name == name && !part.IsFile() {
			out = append(out, part.Value)
		}
	}
	return out
}

// Encode writes the payload as multipart/form-data and returns the body along
// with the boundary-bearing content type.
func (p *Payload) Encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, part := range p.parts {
		if part.IsFile() {
			fw, err := w.CreateFormFile(part.Name, part.Filename)
			if err != nil {
				return nil, "", fmt.Errorf("payload: create file part %q: %w", part.Name, err)
			}
			if _, err := fw.Write(part.Data); err != nil {
				return nil, "", fmt.Errorf("payload: write file part %q: %w", part.Name, err)
			}
			continue
		}
		if err := w.WriteField(part.Name, part.Value); err != nil {
			return nil, "", fmt.Errorf("payload: write field %q: %w", part.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("payload: close writer: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

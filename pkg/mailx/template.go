package mailx

import (
	"bytes"
	"html/template"
	"sync"
	texttemplate "text/template"
)

// TemplateRegistry stores and renders named email templates. HTML and text
// variants are kept separately so a message can carry both bodies.
type TemplateRegistry struct {
	html map[string]*template.Template
	text map[string]*texttemplate.Template
	mu   sync.RWMutex
}

// NewTemplateRegistry creates a new template registry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		html: make(map[string]*template.Template),
		text: make(map[string]*texttemplate.Template),
	}
}

// RegisterHTML parses and stores an HTML template by name.
func (r *TemplateRegistry) RegisterHTML(name, tmplString string) error {
	t, err := template.New(name).Parse(tmplString)
	if err != nil {
		return mailxErrors.NewWithCause(ErrTemplateParse, err).WithDetail("template", name)
	}

	r.mu.Lock()
	r.html[name] = t
	r.mu.Unlock()

	return nil
}

// RegisterText parses and stores a plain-text template by name.
func (r *TemplateRegistry) RegisterText(name, tmplString string) error {
	t, err := texttemplate.New(name).Parse(tmplString)
	if err != nil {
		return mailxErrors.NewWithCause(ErrTemplateParse, err).WithDetail("template", name)
	}

	r.mu.Lock()
	r.text[name] = t
	r.mu.Unlock()

	return nil
}

// RenderHTML executes a named HTML template with the given data.
func (r *TemplateRegistry) RenderHTML(name string, data interface{}) (string, error) {
	r.mu.RLock()
	t, ok := r.html[name]
	r.mu.RUnlock()

	if !ok {
		return "", mailxErrors.New(ErrTemplateNotFound).WithDetail("template", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", mailxErrors.NewWithCause(ErrTemplateRender, err).WithDetail("template", name)
	}

	return buf.String(), nil
}

// RenderText executes a named text template with the given data.
func (r *TemplateRegistry) RenderText(name string, data interface{}) (string, error) {
	r.mu.RLock()
	t, ok := r.text[name]
	r.mu.RUnlock()

	if !ok {
		return "", mailxErrors.New(ErrTemplateNotFound).WithDetail("template", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", mailxErrors.NewWithCause(ErrTemplateRender, err).WithDetail("template", name)
	}

	return buf.String(), nil
}

package engine

import "gomedic/internal/patch"

// Overlay is a FileStore for dry runs. Reads fall through to the base store
// until a path is written, after which later reads observe the staged content,
// preserving the sequential read-after-prior-write semantics of a real run.
// Nothing ever reaches disk.
type Overlay struct {
	base      patch.FileStore
	originals map[string]string
	staged    map[string]string
	order     []string
}

func NewOverlay(base patch.FileStore) *Overlay {
	return &Overlay{
		base:      base,
		originals: make(map[string]string),
		staged:    make(map[string]string),
	}
}

func (o *Overlay) ReadFile(path string) (string, error) {
	if content, ok := o.staged[path]; ok {
		return content, nil
	}
	content, err := o.base.ReadFile(path)
	if err != nil {
		return "", err
	}
	if _, ok := o.originals[path]; !ok {
		o.originals[path] = content
	}
	return content, nil
}

func (o *Overlay) WriteFile(path string, content string) error {
	if _, ok := o.staged[path]; !ok {
		o.order = append(o.order, path)
	}
	o.staged[path] = content
	return nil
}

// ModifiedPaths returns the paths whose staged content differs from what was
// first read, in first-write order.
func (o *Overlay) ModifiedPaths() []string {
	var out []string
	for _, path := range o.order {
		if o.staged[path] != o.originals[path] {
			out = append(out, path)
		}
	}
	return out
}

// Change returns the original and staged content for a written path.
func (o *Overlay) Change(path string) (before, after string) {
	return o.originals[path], o.staged[path]
}

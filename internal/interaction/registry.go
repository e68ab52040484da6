package interaction

// Element is an opaque handle a renderer returns for a drawn segment. The
// interaction layer only stores and hands it back as a tooltip anchor.
type Element interface{}

// Entry pairs a segment label with its drawn element.
type Entry struct {
	Label   string
	Element Element
}

// Registry maps segment labels to drawn elements for one render pass. It is
// append-only; duplicate labels are kept and lookups return the first match.
type Registry struct {
	entries []Entry
}

// NewRegistry returns an empty registry sized for n entries.
func NewRegistry(n int) *Registry {
	if n < 0 {
		n = 0
	}
	return &Registry{entries: make([]Entry, 0, n)}
}

// Add appends a label/element pair.
func (r *Registry) Add(label string, el Element) {
	r.entries = append(r.entries, Entry{Label: label, Element: el})
}

// Lookup returns the first element registered under label.
func (r *Registry) Lookup(label string) (Element, bool) {
	if r == nil {
		return nil, false
	}
	for _, e := range r.entries {
		if e.Label == label {
			return e.Element, true
		}
	}
	return nil, false
}

// Entries returns the registered pairs in insertion order.
func (r *Registry) Entries() []Entry {
	if r == nil || len(r.entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(r.entries))
	copy(dup, r.entries)
	return dup
}

// Len reports the number of registered pairs.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

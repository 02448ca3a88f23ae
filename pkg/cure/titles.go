package cure

// Title is one work and the characters appearing in it, in display order.
type Title struct {
	Name       string
	Characters []string
}

// Titles is an append-only, insertion-ordered mapping from title to names.
// Names need not be present in any Registry.
type Titles struct {
	order   []string
	members map[string][]string
}

// NewTitles returns an empty Titles.
func NewTitles() *Titles {
	return &Titles{members: make(map[string][]string)}
}

// BuiltinTitles returns the grouping of built-in characters by series.
func BuiltinTitles() *Titles {
	t := NewTitles()
	for _, b := range builtinTitles {
		t.Add(b.Name, b.Characters...)
	}
	return t
}

// Add appends names to title. A new title goes to the end of the order;
// an existing one keeps its position.
func (t *Titles) Add(title string, names ...string) {
	if _, exists := t.members[title]; !exists {
		t.order = append(t.order, title)
		t.members[title] = []string{}
	}
	t.members[title] = append(t.members[title], names...)
}

// Get returns a copy of the names listed under title.
func (t *Titles) Get(title string) ([]string, bool) {
	names, ok := t.members[title]
	if !ok {
		return nil, false
	}
	return append([]string(nil), names...), true
}

// Names returns the titles in insertion order.
func (t *Titles) Names() []string {
	return append([]string(nil), t.order...)
}

// All returns every title with its names, in insertion order.
func (t *Titles) All() []Title {
	out := make([]Title, len(t.order))
	for i, name := range t.order {
		out[i] = Title{Name: name, Characters: append([]string(nil), t.members[name]...)}
	}
	return out
}

// Len returns the number of titles.
func (t *Titles) Len() int { return len(t.order) }

package persona

// Persona is a character profile whose prompt fragment sets the roast voice.
type Persona struct {
	ID             string `json:"id"`
	DisplayName    string `json:"name"`
	Description    string `json:"description"`
	PromptFragment string `json:"-"`
	ImageRef       string `json:"imageRef"`
}

// Catalog is an immutable, ordered persona registry. Safe for concurrent reads.
type Catalog struct {
	personas     []Persona
	index        map[string]int
	defaultIndex int
}

// NewCatalog builds a catalog from the given personas. defaultIndex is clamped
// into range; an empty list falls back to the built-in personas.
func NewCatalog(personas []Persona, defaultIndex int) *Catalog {
	if len(personas) == 0 {
		personas = builtinPersonas
	}
	copied := make([]Persona, len(personas))
	copy(copied, personas)

	index := make(map[string]int, len(copied))
	for i, p := range copied {
		if _, dup := index[p.ID]; dup {
			continue
		}
		index[p.ID] = i
	}
	if defaultIndex < 0 || defaultIndex >= len(copied) {
		defaultIndex = 0
	}
	return &Catalog{personas: copied, index: index, defaultIndex: defaultIndex}
}

// NewDefaultCatalog returns the built-in persona set, defaulting to the first entry.
func NewDefaultCatalog() *Catalog {
	return NewCatalog(builtinPersonas, DefaultIndex)
}

// Find returns the persona with the given id, or the default persona when the
// id is empty or unknown. It never fails.
func (c *Catalog) Find(id string) Persona {
	if i, ok := c.index[id]; ok && id != "" {
		return c.personas[i]
	}
	return c.Default()
}

// Default returns the designated default persona.
func (c *Catalog) Default() Persona {
	return c.personas[c.defaultIndex]
}

// List returns the personas in catalog order.
func (c *Catalog) List() []Persona {
	out := make([]Persona, len(c.personas))
	copy(out, c.personas)
	return out
}

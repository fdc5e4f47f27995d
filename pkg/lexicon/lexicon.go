package lexicon

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-realiser/pkg/element"
)

// ErrDuplicate reports a base form registered more than once.
var ErrDuplicate = errors.New("lexicon: duplicate entry")

// Lexicon resolves base forms to word records. Word must be idempotent in the
// identity sense: the same base form always yields the same record.
type Lexicon interface {
	Word(base string) *element.WordElement
}

// Entry is the declarative form of a lexicon record.
type Entry struct {
	Base        string            `yaml:"base" json:"base"`
	Category    element.Category  `yaml:"category,omitempty" json:"category,omitempty"`
	Synonyms    []string          `yaml:"synonyms,omitempty" json:"synonyms,omitempty"`
	Replaceable bool              `yaml:"replaceable,omitempty" json:"replaceable,omitempty"`
	Forms       map[string]string `yaml:"forms,omitempty" json:"forms,omitempty"`
}

// Memory is a concurrency-safe interning lexicon.
type Memory struct {
	mu      sync.RWMutex
	words   map[string]*element.WordElement
	entries map[string]Entry
}

var _ Lexicon = (*Memory)(nil)

// NewMemory builds a lexicon from entries. Synonyms may refer to entries
// declared later in the list.
func NewMemory(entries ...Entry) (*Memory, error) {
	m := &Memory{
		words:   make(map[string]*element.WordElement),
		entries: make(map[string]Entry),
	}
	if err := m.Add(entries...); err != nil {
		return nil, err
	}
	return m, nil
}

// Add registers a batch of entries. Records are created first and linked
// afterwards so entries within the batch may reference each other. A base form
// that is already interned, whether declared or looked up, is rejected.
func (m *Memory) Add(entries ...Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	batch := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		base := strings.TrimSpace(entry.Base)
		if base == "" {
			return errors.New("lexicon: entry base form is required")
		}
		if _, exists := m.words[base]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicate, base)
		}
		if _, exists := batch[base]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicate, base)
		}
		batch[base] = struct{}{}
	}

	for _, entry := range entries {
		entry.Base = strings.TrimSpace(entry.Base)
		m.words[entry.Base] = element.NewWord(entry.Base, entry.Category,
			element.WithReplaceWithSynonym(entry.Replaceable),
			element.WithForms(entry.Forms),
		)
		m.entries[entry.Base] = entry
	}
	for _, entry := range entries {
		if len(entry.Synonyms) == 0 {
			continue
		}
		m.link(entry.Base, entry.Synonyms)
	}
	return nil
}

// Word returns the record for base, interning a new record of category ANY
// when the base form is unknown.
func (m *Memory) Word(base string) *element.WordElement {
	m.mu.RLock()
	w, ok := m.words[base]
	m.mu.RUnlock()
	if ok {
		return w
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.intern(base)
}

// Lookup returns the record for base without interning.
func (m *Memory) Lookup(base string) (*element.WordElement, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.words[base]
	return w, ok
}

// Entry returns the declared entry for base.
func (m *Memory) Entry(base string) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[base]
	return e, ok
}

// Link sets the synonyms of base to the records of the given base forms,
// interning any that are unknown.
func (m *Memory) Link(base string, synonyms ...string) *element.WordElement {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.link(base, synonyms)
}

// Words returns the interned base forms in sorted order.
func (m *Memory) Words() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.words))
	for base := range m.words {
		out = append(out, base)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of interned records.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.words)
}

func (m *Memory) link(base string, synonyms []string) *element.WordElement {
	w := m.intern(base)
	records := make([]*element.WordElement, 0, len(synonyms))
	for _, s := range synonyms {
		s = strings.TrimSpace(s)
		if s == "" || s == base {
			continue
		}
		records = append(records, m.intern(s))
	}
	w.SetSynonyms(records...)
	return w
}

func (m *Memory) intern(base string) *element.WordElement {
	if w, ok := m.words[base]; ok {
		return w
	}
	w := element.NewWord(base, element.CategoryAny)
	m.words[base] = w
	return w
}

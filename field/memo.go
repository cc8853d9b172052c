package field

import (
	"container/list"
	"sync"
)

// DefaultMemoSize is the number of distinct texts a controller remembers
const DefaultMemoSize = 16

// Memo caches Derive results keyed by the exact input text. Entries are
// evicted least recently used first. A Memo is safe for concurrent use.
//
// Cached previews share their Table with every caller; treat it as
// read-only.
type Memo struct {
	mu     sync.Mutex
	parser Parser
	size   int
	order  *list.List
	items  map[string]*list.Element
}

type memoEntry struct {
	text    string
	preview Preview
}

// NewMemo creates a memo of the given size. A size below one uses
// DefaultMemoSize.
func NewMemo(p Parser, size int) *Memo {
	if size < 1 {
		size = DefaultMemoSize
	}
	return &Memo{
		parser: p,
		size:   size,
		order:  list.New(),
		items:  make(map[string]*list.Element),
	}
}

// Derive returns the cached preview for text, deriving it on a miss
func (m *Memo) Derive(text string) Preview {
	preview, _ := m.lookup(text)
	return preview
}

// lookup is Derive that also reports whether the preview came from the cache
func (m *Memo) lookup(text string) (Preview, bool) {
	if text == "" {
		return Derive(text, m.parser), false
	}

	m.mu.Lock()
	if el, ok := m.items[text]; ok {
		m.order.MoveToFront(el)
		preview := el.Value.(*memoEntry).preview
		m.mu.Unlock()
		return preview, true
	}
	m.mu.Unlock()

	preview := Derive(text, m.parser)

	m.mu.Lock()
	defer m.mu.Unlock()
	if el, ok := m.items[text]; ok {
		m.order.MoveToFront(el)
		return el.Value.(*memoEntry).preview, true
	}
	m.items[text] = m.order.PushFront(&memoEntry{text: text, preview: preview})
	for m.order.Len() > m.size {
		oldest := m.order.Back()
		m.order.Remove(oldest)
		delete(m.items, oldest.Value.(*memoEntry).text)
	}
	return preview, false
}

// Len returns the number of cached entries
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

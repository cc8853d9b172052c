package field

// PatchType is the kind of change a patch makes
type PatchType string

const (
	PatchSet   PatchType = "set"
	PatchUnset PatchType = "unset"
)

// Patch is a whole-value change to a field. Path is relative to the
// component that emitted it; hosts prefix it as the patch travels up.
type Patch struct {
	Type  PatchType `json:"type"`
	Path  []string  `json:"path,omitempty"`
	Value string    `json:"value,omitempty"`
}

// Set returns a patch replacing the value at path
func Set(value string, path ...string) Patch {
	return Patch{Type: PatchSet, Path: path, Value: value}
}

// Unset returns a patch removing the value at path
func Unset(path ...string) Patch {
	return Patch{Type: PatchUnset, Path: path}
}

// Apply applies the patch to a value. present reports whether a value is
// stored at all.
func (p Patch) Apply(current string, present bool) (string, bool) {
	switch p.Type {
	case PatchSet:
		return p.Value, true
	case PatchUnset:
		return "", false
	default:
		return current, present
	}
}

// PatchEvent is the unit of change handed to the host
type PatchEvent struct {
	Patches []Patch `json:"patches"`
}

// PatchEventFrom creates an event from patches
func PatchEventFrom(patches ...Patch) PatchEvent {
	return PatchEvent{Patches: patches}
}

// Prefixed returns a copy of the event with segments prepended to every
// patch path
func (e PatchEvent) Prefixed(segments ...string) PatchEvent {
	out := PatchEvent{Patches: make([]Patch, len(e.Patches))}
	for i, p := range e.Patches {
		path := make([]string, 0, len(segments)+len(p.Path))
		path = append(path, segments...)
		path = append(path, p.Path...)
		p.Path = path
		out.Patches[i] = p
	}
	return out
}

// Apply applies every patch in order
func (e PatchEvent) Apply(current string, present bool) (string, bool) {
	for _, p := range e.Patches {
		current, present = p.Apply(current, present)
	}
	return current, present
}

// IntentFor returns the event persisting the full text of an edit. Empty
// text removes the field instead of storing an empty string; any other
// text, whitespace included, is stored verbatim.
func IntentFor(text string) PatchEvent {
	if text == "" {
		return PatchEventFrom(Unset())
	}
	return PatchEventFrom(Set(text))
}

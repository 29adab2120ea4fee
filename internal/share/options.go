package share

// Option names a boolean display toggle that is encoded into the share URL.
type Option string

const (
	HideExplorer     Option = "hideExplorer"
	ShowTransactions Option = "showTransactions"
	ShowAppview      Option = "showAppview"
)

// KnownOptions is the fixed option domain in query-string order.
var KnownOptions = []Option{HideExplorer, ShowTransactions, ShowAppview}

// ExclusionRules maps an option to the options forced false when it becomes true.
var ExclusionRules = map[Option][]Option{
	ShowTransactions: {ShowAppview},
	ShowAppview:      {ShowTransactions},
}

type Entry struct {
	Name  Option `json:"name"`
	Value bool   `json:"value"`
}

// OptionSet is an immutable, ordered set of option values.
// Every method that changes a value returns a fresh set.
type OptionSet struct {
	entries []Entry
}

// DefaultOptionSet returns the known options, all false.
func DefaultOptionSet() OptionSet {
	return NewOptionSet(KnownOptions...)
}

// NewOptionSet returns a set holding names (all false). Duplicates are dropped.
func NewOptionSet(names ...Option) OptionSet {
	s := OptionSet{entries: make([]Entry, 0, len(names))}
	for _, n := range names {
		if s.index(n) >= 0 {
			continue
		}
		s.entries = append(s.entries, Entry{Name: n})
	}
	return s
}

func (s OptionSet) index(name Option) int {
	for i := range s.entries {
		if s.entries[i].Name == name {
			return i
		}
	}
	return -1
}

func (s OptionSet) clone() OptionSet {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return OptionSet{entries: out}
}

// Has reports whether name is part of the set.
func (s OptionSet) Has(name Option) bool { return s.index(name) >= 0 }

// Get returns the value of name; names outside the set read as false.
func (s OptionSet) Get(name Option) bool {
	if i := s.index(name); i >= 0 {
		return s.entries[i].Value
	}
	return false
}

// With returns a copy with name set to v, appending name if it is new.
// Exclusion rules are not applied; use Toggle for user-driven changes.
func (s OptionSet) With(name Option, v bool) OptionSet {
	out := s.clone()
	if i := out.index(name); i >= 0 {
		out.entries[i].Value = v
		return out
	}
	out.entries = append(out.entries, Entry{Name: name, Value: v})
	return out
}

// Toggle flips name and applies ExclusionRules when the new value is true.
// A name outside the set reads as false, so it is appended as true.
func (s OptionSet) Toggle(name Option) OptionSet {
	next := !s.Get(name)
	out := s.With(name, next)
	if !next {
		return out
	}
	for _, other := range ExclusionRules[name] {
		if i := out.index(other); i >= 0 {
			out.entries[i].Value = false
		}
	}
	return out
}

// Entries returns the (name, value) pairs in query-string order.
func (s OptionSet) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s OptionSet) Names() []Option {
	out := make([]Option, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Name)
	}
	return out
}

func (s OptionSet) Len() int { return len(s.entries) }

// Equal compares names, order and values.
func (s OptionSet) Equal(o OptionSet) bool {
	if len(s.entries) != len(o.entries) {
		return false
	}
	for i := range s.entries {
		if s.entries[i] != o.entries[i] {
			return false
		}
	}
	return true
}

// IsKnownOption reports whether name belongs to KnownOptions.
func IsKnownOption(name Option) bool {
	for _, k := range KnownOptions {
		if k == name {
			return true
		}
	}
	return false
}

// OptionLabel is the human label shown next to a switch.
func OptionLabel(name Option) string {
	switch name {
	case HideExplorer:
		return "Hide Explorer"
	case ShowTransactions:
		return "Show Transactions"
	case ShowAppview:
		return "Show Appview"
	default:
		return string(name)
	}
}

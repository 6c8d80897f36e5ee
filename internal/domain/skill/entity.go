package skill

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
)

// List is a set of skill names as it appears on a user or job record. It
// decodes from a JSON array of strings or from one comma-separated string and
// always encodes as an array.
type List []string

func (l *List) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*l = List{}
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = Split(s)
		return nil
	}

	var items []string
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	*l = Clean(items)
	return nil
}

func (l List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Split turns "Python, SQL,,Docker" into [Python SQL Docker].
func Split(s string) List {
	if strings.TrimSpace(s) == "" {
		return List{}
	}
	return Clean(strings.Split(s, ","))
}

// Clean trims every name and drops empty ones, keeping order.
func Clean(items []string) List {
	out := make(List, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Key is the comparison form of a skill name.
func Key(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Set returns the distinct keys of l.
func (l List) Set() map[string]struct{} {
	out := make(map[string]struct{}, len(l))
	for _, s := range l {
		k := Key(s)
		if k == "" {
			continue
		}
		out[k] = struct{}{}
	}
	return out
}

// Has reports whether l contains name, ignoring case.
func (l List) Has(name string) bool {
	k := Key(name)
	for _, s := range l {
		if Key(s) == k {
			return true
		}
	}
	return false
}

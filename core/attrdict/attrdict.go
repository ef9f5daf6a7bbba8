// core/attrdict/attrdict.go
package attrdict

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/containerd/errdefs"
)

// Pair is a single key/value entry. Keys are strings or ints; only string
// keys are reachable through the attribute-style accessors.
type Pair struct {
	Key   any
	Value any
}

// Dict is an insertion-ordered mapping with two access styles: item-style
// (Get/Set, any string or int key) and attribute-style (Attr/SetAttr, string
// keys only). Mapping values are converted to nested *Dict on every write,
// so arbitrarily deep structures keep the dual interface at every level.
//
// A fixed set of metadata keys (see Metadata) is readable on every instance
// but can never be written; writes fail with *ReservedKeyError.
type Dict struct {
	order []any
	items map[any]any
}

// Metadata keys carried implicitly by every Dict, with their default values.
// Reads of these names succeed even on an empty Dict; writes are rejected.
var metadataDefaults = map[string]any{
	"_force_nulls":        false,
	"_attribute_identity": false,
}

// Metadata returns the reserved metadata key names.
func Metadata() []string {
	names := make([]string, 0, len(metadataDefaults))
	for k := range metadataDefaults {
		names = append(names, k)
	}
	return names
}

// IsReserved reports whether name is a protected metadata key.
func IsReserved(name string) bool {
	_, ok := metadataDefaults[name]
	return ok
}

// New returns an empty Dict.
func New() *Dict {
	return &Dict{items: map[any]any{}}
}

// From builds a Dict from any of the supported entry sources: nil, a
// mapping (map[string]any or map[any]any), a pair slice, another *Dict
// (deep-copied), or a zero-argument generator of pairs.
func From(src any) (*Dict, error) {
	d := New()
	if src == nil {
		return d, nil
	}
	if other, ok := src.(*Dict); ok {
		return other.Copy(), nil
	}
	if err := d.Update(src); err != nil {
		return nil, err
	}
	return d, nil
}

// FromMap builds a Dict from a plain map, converting nested maps.
func FromMap(m map[string]any) (*Dict, error) { return From(m) }

// FromPairs builds a Dict from explicit key/value pairs, in order.
func FromPairs(pairs []Pair) (*Dict, error) { return From(pairs) }

// FromFunc builds a Dict from a zero-argument entry generator.
func FromFunc(gen func() []Pair) (*Dict, error) { return From(gen) }

// Set stores value under key. Keys must be strings or ints; a write to a
// reserved metadata key fails with *ReservedKeyError. Mapping values are
// converted to nested *Dict.
func (d *Dict) Set(key, value any) error {
	if err := checkKey(key); err != nil {
		return err
	}
	v, err := convertValue(value)
	if err != nil {
		return err
	}
	if d.items == nil {
		d.items = map[any]any{}
	}
	if _, ok := d.items[key]; !ok {
		d.order = append(d.order, key)
	}
	d.items[key] = v
	return nil
}

// SetAttr is attribute-style assignment: sugar over Set restricted to
// string keys.
func (d *Dict) SetAttr(name string, value any) error {
	return d.Set(name, value)
}

// Get returns the value stored under key. Reserved metadata keys resolve to
// their defaults when not shadowed by anything (they never are, since writes
// to them fail).
func (d *Dict) Get(key any) (any, bool) {
	if v, ok := d.items[key]; ok {
		return v, true
	}
	if s, ok := key.(string); ok {
		if def, ok := metadataDefaults[s]; ok {
			return def, true
		}
	}
	return nil, false
}

// Attr is attribute-style lookup: sugar over Get restricted to string keys.
func (d *Dict) Attr(name string) (any, bool) {
	return d.Get(name)
}

// Has reports whether key holds an entry (metadata defaults included).
func (d *Dict) Has(key any) bool {
	_, ok := d.Get(key)
	return ok
}

// Delete removes the entry under key. Deleting a reserved metadata key
// fails with *ReservedKeyError; deleting an absent key is a no-op.
func (d *Dict) Delete(key any) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if _, ok := d.items[key]; !ok {
		return nil
	}
	delete(d.items, key)
	for i, k := range d.order {
		if k == key {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return nil
}

// Update merges entries from src (any source accepted by From) into d.
// Where both sides hold a mapping under the same key, the nested Dicts are
// merged recursively; otherwise the incoming value replaces the old one.
func (d *Dict) Update(src any) error {
	pairs, err := sourcePairs(src)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		incoming, err := convertValue(p.Value)
		if err != nil {
			return err
		}
		if nested, ok := incoming.(*Dict); ok {
			if cur, exists := d.items[p.Key]; exists {
				if curDict, ok := cur.(*Dict); ok {
					if err := curDict.Update(nested); err != nil {
						return err
					}
					continue
				}
			}
		}
		if err := d.Set(p.Key, incoming); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of explicit entries (metadata defaults excluded).
func (d *Dict) Len() int { return len(d.items) }

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []any {
	out := make([]any, len(d.order))
	copy(out, d.order)
	return out
}

// Values returns the values in insertion order.
func (d *Dict) Values() []any {
	out := make([]any, 0, len(d.order))
	for _, k := range d.order {
		out = append(out, d.items[k])
	}
	return out
}

// Items returns the entries in insertion order.
func (d *Dict) Items() []Pair {
	out := make([]Pair, 0, len(d.order))
	for _, k := range d.order {
		out = append(out, Pair{Key: k, Value: d.items[k]})
	}
	return out
}

// Copy returns a deep copy of d.
func (d *Dict) Copy() *Dict {
	out := New()
	for _, k := range d.order {
		v := d.items[k]
		if nested, ok := v.(*Dict); ok {
			v = nested.Copy()
		}
		out.order = append(out.order, k)
		out.items[k] = v
	}
	return out
}

// ToMap exports the structure as plain nested maps. Int keys are rendered
// in decimal (JSON object keys must be strings). Order is not preserved.
func (d *Dict) ToMap() map[string]any {
	out := make(map[string]any, len(d.items))
	for _, k := range d.order {
		var name string
		switch key := k.(type) {
		case string:
			name = key
		case int:
			name = strconv.Itoa(key)
		}
		v := d.items[k]
		if nested, ok := v.(*Dict); ok {
			out[name] = nested.ToMap()
		} else {
			out[name] = v
		}
	}
	return out
}

// Equal reports structural, recursive equality of the explicit entries,
// independent of insertion order.
func (d *Dict) Equal(o *Dict) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.items) != len(o.items) {
		return false
	}
	for k, v := range d.items {
		ov, ok := o.items[k]
		if !ok || !valueEqual(v, ov) {
			return false
		}
	}
	return true
}

// EqualMap reports whether d compares equal to a plain string-keyed map,
// the way two plain mappings would compare. Nested maps on the right-hand
// side match nested Dicts on the left.
func (d *Dict) EqualMap(m map[string]any) bool {
	if d == nil {
		return m == nil
	}
	if len(d.items) != len(m) {
		return false
	}
	for k, mv := range m {
		v, ok := d.items[k]
		if !ok || !valueEqual(v, mv) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	if _, ok := b.(*Dict); ok {
		if _, alsoDict := a.(*Dict); !alsoDict {
			a, b = b, a
		}
	}
	if ad, ok := a.(*Dict); ok {
		switch bv := b.(type) {
		case *Dict:
			return ad.Equal(bv)
		case map[string]any:
			return ad.EqualMap(bv)
		case map[any]any:
			bd, err := From(bv)
			return err == nil && ad.Equal(bd)
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func checkKey(key any) error {
	switch k := key.(type) {
	case string:
		if IsReserved(k) {
			return &ReservedKeyError{Key: k}
		}
		return nil
	case int:
		return nil
	default:
		return fmt.Errorf("unsupported key type %T: %w", key, errdefs.ErrInvalidArgument)
	}
}

// convertValue turns mapping values into nested *Dict; everything else is
// stored as-is (slices included, matching the original semantics: only
// direct mapping values nest).
func convertValue(v any) (any, error) {
	switch val := v.(type) {
	case *Dict:
		return val, nil
	case map[string]any, map[any]any:
		return From(val)
	default:
		return v, nil
	}
}

func sourcePairs(src any) ([]Pair, error) {
	switch s := src.(type) {
	case nil:
		return nil, nil
	case *Dict:
		return s.Items(), nil
	case map[string]any:
		// Deterministic order for reproducible construction.
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]Pair, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, Pair{Key: k, Value: s[k]})
		}
		return pairs, nil
	case map[any]any:
		pairs := make([]Pair, 0, len(s))
		for k, v := range s {
			pairs = append(pairs, Pair{Key: k, Value: v})
		}
		sort.Slice(pairs, func(i, j int) bool {
			return fmt.Sprint(pairs[i].Key) < fmt.Sprint(pairs[j].Key)
		})
		return pairs, nil
	case []Pair:
		return s, nil
	case func() []Pair:
		return s(), nil
	default:
		return nil, fmt.Errorf("cannot build entries from %T: %w", src, errdefs.ErrInvalidArgument)
	}
}

// Package querykey derives hierarchical cache keys for admin resources.
//
// A key is an ordered tuple: resource, scope, then scope parameters. Keys of
// the same resource are prefix-comparable, so Lists() matches every List(f)
// and Details() matches every Detail(id, f).
package querykey

import (
	"net/url"
	"strings"
)

const (
	ScopeList    = "list"
	ScopeDetail  = "detail"
	ScopePreview = "preview"
)

// separator never appears in ids or encoded filters.
const separator = "\x1f"

// Key is an ordered tuple of key parts.
type Key []string

// String returns the canonical form used as the store key.
func (k Key) String() string { return strings.Join(k, separator) }

// HasPrefix reports whether k starts with every part of prefix.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Equal compares keys part by part.
func (k Key) Equal(other Key) bool {
	return len(k) == len(other) && k.HasPrefix(other)
}

// Parse reverses String.
func Parse(s string) Key {
	if s == "" {
		return nil
	}
	return Key(strings.Split(s, separator))
}

// Filters narrows a list or detail read. Parameter order does not matter.
type Filters map[string][]string

// Encode renders filters with sorted parameter names, so equal filters yield
// equal keys.
func (f Filters) Encode() string {
	if len(f) == 0 {
		return ""
	}
	return url.Values(f).Encode()
}

// FiltersFromQuery copies a request query into Filters.
func FiltersFromQuery(q url.Values) Filters {
	if len(q) == 0 {
		return nil
	}
	out := make(Filters, len(q))
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Factory builds keys for one resource type.
type Factory struct {
	resource string
}

func New(resource string) Factory { return Factory{resource: resource} }

func (f Factory) Resource() string { return f.resource }

func (f Factory) All() Key { return Key{f.resource} }

func (f Factory) Lists() Key { return Key{f.resource, ScopeList} }

func (f Factory) List(filters Filters) Key {
	return Key{f.resource, ScopeList, filters.Encode()}
}

func (f Factory) Details() Key { return Key{f.resource, ScopeDetail} }

func (f Factory) Detail(id string, filters Filters) Key {
	return Key{f.resource, ScopeDetail, id, filters.Encode()}
}

// Scoped builds a key under a custom scope, e.g. an order preview.
func (f Factory) Scoped(scope string, params ...string) Key {
	k := make(Key, 0, 2+len(params))
	k = append(k, f.resource, scope)
	return append(k, params...)
}

// OrderKeys extends the generic factory with the order preview scope.
type OrderKeys struct {
	Factory
}

func (o OrderKeys) Preview(orderID string) Key { return o.Scoped(ScopePreview, orderID) }

var (
	Orders   = OrderKeys{New("orders")}
	Returns  = New("returns")
	Payments = New("payments")
)

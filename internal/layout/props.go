// internal/layout/props.go
package layout

import "strings"

// Property names a layout or style property. Canonical spelling is
// kebab-case; Lookup also accepts the snake_case alias some declaration
// sources emit.
type Property string

const (
	PropColumns      Property = "columns"
	PropRows         Property = "rows"
	PropGutter       Property = "gutter"
	PropColumnGutter Property = "column-gutter"
	PropRowGutter    Property = "row-gutter"
	PropAlign        Property = "align"
	PropFill         Property = "fill"
	PropStroke       Property = "stroke"
	PropInset        Property = "inset"
	PropDirection    Property = "direction"
	PropSpacing      Property = "spacing"
	PropHeight       Property = "height"
	PropWidth        Property = "width"
)

// PropertyMap holds a node's declared or resolved properties. Invariant: no
// key ever maps to nil — absence means the key is missing entirely. Set
// maintains this; code building maps by hand must too.
type PropertyMap map[Property]any

// Set stores value under key, dropping the key instead when value is nil.
func (m PropertyMap) Set(key Property, value any) {
	if value == nil {
		delete(m, key)
		return
	}
	m[key] = value
}

// Has reports whether key (or its alias spelling) is present.
func (m PropertyMap) Has(key Property) bool {
	if _, ok := m[key]; ok {
		return true
	}
	_, ok := m[aliasKey(key)]
	return ok
}

// Lookup finds a property value under the canonical key, then under its
// alias spelling, returning fallback when neither is present.
func (m PropertyMap) Lookup(key Property, fallback any) any {
	if value, ok := m[key]; ok {
		return value
	}
	if value, ok := m[aliasKey(key)]; ok {
		return value
	}
	return fallback
}

// Clone returns a shallow copy. Values are shared; the map structure is not.
func (m PropertyMap) Clone() PropertyMap {
	cloned := make(PropertyMap, len(m))
	for key, value := range m {
		cloned[key] = value
	}
	return cloned
}

// aliasKey converts between the kebab-case canonical spelling and the
// snake_case alias, in whichever direction applies.
func aliasKey(key Property) Property {
	s := string(key)
	if strings.Contains(s, "-") {
		return Property(strings.ReplaceAll(s, "-", "_"))
	}
	return Property(strings.ReplaceAll(s, "_", "-"))
}

// internal/props/resolve.go
package props

import (
	"strings"

	"go.uber.org/zap"

	"github.com/folioengine/folio/internal/layout"
	"github.com/folioengine/folio/internal/length"
	"github.com/folioengine/folio/internal/observability"
)

// Package props merges style and layout properties along the inheritance
// chain (cell over row over container over defaults), evaluates
// position-dependent values, and normalizes length-bearing properties.

// Resolve merges child over parent over defaults, key for key. Any key whose
// final value is nil is dropped from the result entirely, so the returned
// map never carries absence markers. The inputs are not modified; nil maps
// are treated as empty.
func Resolve(child, parent, defaults layout.PropertyMap) layout.PropertyMap {
	resolved := make(layout.PropertyMap, len(defaults)+len(parent)+len(child))
	for _, overlay := range []layout.PropertyMap{defaults, parent, child} {
		for key, value := range overlay {
			resolved[key] = value
		}
	}
	for key, value := range resolved {
		if value == nil {
			delete(resolved, key)
		}
	}
	return resolved
}

// ResolveChain runs the three-level cascade: cell wins over row, row over
// container, container over defaults.
func ResolveChain(cell, row, container, defaults layout.PropertyMap) layout.PropertyMap {
	base := Resolve(nil, container, defaults)
	withRow := Resolve(row, base, nil)
	return Resolve(cell, withRow, nil)
}

// ResolveAlign looks up the alignment property on child first, then parent,
// then falls back to def. Both key spellings are accepted.
func ResolveAlign(child, parent layout.PropertyMap, def any) any {
	return lookupChain(layout.PropAlign, child, parent, def)
}

// ResolveInset looks up the inset property on child first, then parent,
// then falls back to def. Both key spellings are accepted.
func ResolveInset(child, parent layout.PropertyMap, def any) any {
	return lookupChain(layout.PropInset, child, parent, def)
}

func lookupChain(key layout.Property, child, parent layout.PropertyMap, def any) any {
	if child.Has(key) {
		return child.Lookup(key, nil)
	}
	if parent.Has(key) {
		return parent.Lookup(key, nil)
	}
	return def
}

// lengthProperties are the keys ResolveAll parses, in canonical spelling.
var lengthProperties = map[layout.Property]bool{
	layout.PropInset:        true,
	layout.PropGutter:       true,
	layout.PropColumnGutter: true,
	layout.PropRowGutter:    true,
	layout.PropWidth:        true,
	layout.PropHeight:       true,
	layout.PropSpacing:      true,
}

// ResolveAll returns a copy of props where every string value under a known
// length-bearing key is replaced by its parsed length. Non-string values and
// already-typed values pass through; strings that fail to parse are left in
// place with a warning, so malformed lengths surface at rendering rather
// than aborting the transform.
func ResolveAll(props layout.PropertyMap) layout.PropertyMap {
	resolved := props.Clone()
	for key, value := range resolved {
		if !lengthProperties[canonicalKey(key)] {
			continue
		}
		raw, ok := value.(string)
		if !ok {
			continue
		}
		parsed, err := length.Parse(raw)
		if err != nil {
			observability.GetLogger().Warn("Leaving unparsable length property as-is",
				zap.String("property", string(key)),
				zap.String("value", raw))
			continue
		}
		resolved[key] = parsed
	}
	return resolved
}

func canonicalKey(key layout.Property) layout.Property {
	return layout.Property(strings.ReplaceAll(string(key), "_", "-"))
}

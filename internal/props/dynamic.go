// internal/props/dynamic.go
package props

import "github.com/folioengine/folio/internal/layout"

// Context carries the positioning facts a computed property value may
// depend on: the cell's resolved column and row.
type Context struct {
	Col int
	Row int
}

// Computed is the one-argument variant of a computed property value. It
// receives the whole context.
type Computed func(ctx Context) any

// ComputedXY is the two-argument variant, invoked with the resolved column
// and row. Hosts that only care about coordinates supply this form.
type ComputedXY func(col, row int) any

// IsDynamic reports whether value is a computed property value. Hosts may
// supply the named variant types or plain function literals of the same
// shape; both are recognized.
func IsDynamic(value any) bool {
	switch value.(type) {
	case Computed, ComputedXY, func(Context) any, func(int, int) any:
		return true
	default:
		return false
	}
}

// SeparateStaticDynamic partitions props into a static map and a dynamic
// map. The input is not modified.
func SeparateStaticDynamic(props layout.PropertyMap) (static, dynamic layout.PropertyMap) {
	static = layout.PropertyMap{}
	dynamic = layout.PropertyMap{}
	for key, value := range props {
		if IsDynamic(value) {
			dynamic[key] = value
		} else {
			static[key] = value
		}
	}
	return static, dynamic
}

// EvaluateDynamic invokes a two-argument computed value with (col, row), a
// one-argument computed value with the whole context, and returns any static
// value unchanged.
func EvaluateDynamic(value any, ctx Context) any {
	switch fn := value.(type) {
	case ComputedXY:
		return fn(ctx.Col, ctx.Row)
	case func(int, int) any:
		return fn(ctx.Col, ctx.Row)
	case Computed:
		return fn(ctx)
	case func(Context) any:
		return fn(ctx)
	default:
		return value
	}
}

// EvaluateAll returns a copy of props with every computed value replaced by
// its evaluation under ctx. A computed value returning nil leaves its key
// absent, per the property map invariant.
func EvaluateAll(props layout.PropertyMap, ctx Context) layout.PropertyMap {
	evaluated := make(layout.PropertyMap, len(props))
	for key, value := range props {
		evaluated.Set(key, EvaluateDynamic(value, ctx))
	}
	return evaluated
}

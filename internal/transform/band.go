// internal/transform/band.go
package transform

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/folioengine/folio/api/decl"
	"github.com/folioengine/folio/internal/errdefs"
	"github.com/folioengine/folio/internal/layout"
)

// TransformBand extracts the layout declaration from a report band and runs
// it through the full pipeline. The primary layout field wins; the legacy
// grid and table fields are consulted in that order. A map under a legacy
// field needs no kind tag, since the field name implies it.
func (p *Pipeline) TransformBand(band any) (*layout.Node, error) {
	switch b := band.(type) {
	case *decl.Band:
		switch {
		case b.Layout != nil:
			return p.Transform(b.Layout)
		case b.Grid != nil:
			return p.transformTagged(b.Grid, "grid")
		case b.Table != nil:
			return p.transformTagged(b.Table, "table")
		}
		return nil, errdefs.NewNoLayoutInBandError(band)
	case decl.Band:
		return p.TransformBand(&b)
	case map[string]any:
		if v := b["layout"]; v != nil {
			return p.Transform(v)
		}
		if v := b["grid"]; v != nil {
			return p.transformTagged(v, "grid")
		}
		if v := b["table"]; v != nil {
			return p.transformTagged(v, "table")
		}
		return nil, errdefs.NewNoLayoutInBandError(band)
	default:
		return nil, errdefs.NewNoLayoutInBandError(band)
	}
}

// TransformBand runs band through a default Pipeline.
func TransformBand(band any) (*layout.Node, error) {
	return New().TransformBand(band)
}

// transformTagged transforms a declaration found under a kind-specific
// field, tagging an untagged map with the implied kind first. The caller's
// map is never mutated.
func (p *Pipeline) transformTagged(declaration any, kind string) (*layout.Node, error) {
	m, ok := declaration.(map[string]any)
	if !ok {
		return p.Transform(declaration)
	}
	if _, tagged := m["kind"]; !tagged {
		clone := make(map[string]any, len(m)+1)
		for key, value := range m {
			clone[key] = value
		}
		clone["kind"] = kind
		m = clone
	}
	return p.Transform(m)
}

// TransformBands transforms each band on its own goroutine, returning the
// trees in input order. The first failure cancels the remaining work and is
// returned alone; per the all-or-nothing contract no partial results leak.
func (p *Pipeline) TransformBands(ctx context.Context, bands []any) ([]*layout.Node, error) {
	g, ctx := errgroup.WithContext(ctx)
	nodes := make([]*layout.Node, len(bands))

	for i, band := range bands {
		i, band := i, band
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			node, err := p.TransformBand(band)
			if err != nil {
				return err
			}
			nodes[i] = node
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return nodes, nil
}

// internal/transform/transform.go
package transform

import (
	"strings"

	"go.uber.org/zap"

	"github.com/folioengine/folio/api/decl"
	"github.com/folioengine/folio/internal/errdefs"
	"github.com/folioengine/folio/internal/layout"
	"github.com/folioengine/folio/internal/observability"
)

// Package transform orchestrates the pipeline from declarations to IR:
// dispatch on the declaration kind, build the node tree recursively, assign
// grid coordinates, then push the property cascade down the resolved tree.

// Pipeline converts layout declarations into positioned, resolved IR trees.
// It holds no per-call state, so one Pipeline may serve concurrent
// transformations; every call builds its own tree and its own occupancy.
type Pipeline struct {
	logger   *zap.Logger
	position bool
	resolve  bool
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger replaces the pipeline's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger.With(zap.String("component", "transform"))
	}
}

// WithoutPositioning skips the coordinate-assignment pass. Cells keep their
// declared positions; flow cells stay unset.
func WithoutPositioning() Option {
	return func(p *Pipeline) {
		p.position = false
	}
}

// WithoutResolution skips the property cascade pass. Every node keeps only
// the properties its own declaration carried.
func WithoutResolution() Option {
	return func(p *Pipeline) {
		p.resolve = false
	}
}

// New builds a Pipeline with both post-passes enabled.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		position: true,
		resolve:  true,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = observability.GetLogger().With(zap.String("component", "transform"))
	}
	return p
}

// Transform runs declaration through a default Pipeline.
func Transform(declaration any) (*layout.Node, error) {
	return New().Transform(declaration)
}

// Transform builds the IR tree for declaration, then runs the positioning
// and resolution passes unless disabled. The first error aborts the whole
// call; no partial tree is ever returned.
func (p *Pipeline) Transform(declaration any) (*layout.Node, error) {
	node, err := p.build(declaration)
	if err != nil {
		return nil, err
	}

	if p.position {
		if err := p.positionNode(node); err != nil {
			return nil, err
		}
	}
	if p.resolve {
		p.resolveNode(node)
	}

	p.logger.Debug("Transformed declaration",
		zap.String("kind", node.Kind.String()),
		zap.Int("rows", len(node.Rows)),
		zap.Int("cells", len(node.Cells)))
	return node, nil
}

// build dispatches on the declaration kind. Typed declarations are matched
// directly; maps are normalized through their kind tag first.
func (p *Pipeline) build(declaration any) (*layout.Node, error) {
	switch d := declaration.(type) {
	case *decl.Grid:
		return p.buildGridNode(d, layout.Grid)
	case decl.Grid:
		return p.buildGridNode(&d, layout.Grid)
	case *decl.Table:
		return p.buildTable(d)
	case decl.Table:
		return p.buildTable(&d)
	case *decl.Stack:
		return p.buildStack(d)
	case decl.Stack:
		return p.buildStack(&d)
	case map[string]any:
		typed, err := layoutFromMap(d)
		if err != nil {
			return nil, err
		}
		return p.build(typed)
	default:
		return nil, errdefs.NewUnsupportedLayoutTypeError(declaration)
	}
}

// layoutFromMap normalizes a kind-tagged map into its typed declaration.
func layoutFromMap(m map[string]any) (decl.Layout, error) {
	raw, ok := m["kind"]
	if !ok {
		return nil, errdefs.NewMissingRequiredError("layout", "kind")
	}
	kind, _ := raw.(string)
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "grid":
		return gridFromMap(m)
	case "table":
		return tableFromMap(m)
	case "stack":
		return stackFromMap(m)
	default:
		return nil, errdefs.NewUnsupportedLayoutTypeError(raw)
	}
}

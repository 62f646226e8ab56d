// internal/transform/band_test.go
package transform_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/folioengine/folio/api/decl"
	"github.com/folioengine/folio/internal/errdefs"
	"github.com/folioengine/folio/internal/layout"
)

func TestTransformBandPrecedence(t *testing.T) {
	grid := map[string]any{"kind": "grid", "columns": 1, "children": []any{map[string]any{"text": "x"}}}

	testCases := []struct {
		name     string
		band     any
		wantKind layout.Kind
	}{
		{
			name:     "primary layout field",
			band:     &decl.Band{Layout: &decl.Stack{Children: []any{&decl.Label{Text: "x"}}}},
			wantKind: layout.Stack,
		},
		{
			name:     "layout wins over legacy fields",
			band:     &decl.Band{Layout: &decl.Stack{}, Grid: grid, Table: grid},
			wantKind: layout.Stack,
		},
		{
			name:     "legacy grid field",
			band:     &decl.Band{Grid: map[string]any{"columns": 2}},
			wantKind: layout.Grid,
		},
		{
			name:     "legacy table field",
			band:     &decl.Band{Table: map[string]any{"columns": 2}},
			wantKind: layout.Table,
		},
		{
			name:     "band by value",
			band:     decl.Band{Grid: map[string]any{"columns": 1}},
			wantKind: layout.Grid,
		},
		{
			name:     "map band with layout",
			band:     map[string]any{"name": "detail", "layout": grid},
			wantKind: layout.Grid,
		},
		{
			name:     "map band with legacy table",
			band:     map[string]any{"table": map[string]any{"columns": 3}},
			wantKind: layout.Table,
		},
		{
			name:     "typed declaration under a legacy field",
			band:     &decl.Band{Grid: &decl.Grid{Columns: 2}},
			wantKind: layout.Grid,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			node, err := newPipeline(t).TransformBand(tc.band)
			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, node.Kind)
		})
	}
}

func TestTransformBandLegacyTableGetsDefaults(t *testing.T) {
	node, err := newPipeline(t).TransformBand(&decl.Band{
		Table: map[string]any{"columns": 2},
	})
	require.NoError(t, err)

	assert.Equal(t, layout.Table, node.Kind)
	assert.Equal(t, "1pt", node.Props.Lookup(layout.PropStroke, nil))
}

func TestTransformBandKeepsExplicitKindTag(t *testing.T) {
	// A kind tag already present under a legacy field is authoritative.
	node, err := newPipeline(t).TransformBand(map[string]any{
		"grid": map[string]any{"kind": "table", "columns": 1},
	})
	require.NoError(t, err)
	assert.Equal(t, layout.Table, node.Kind)
}

func TestTransformBandDoesNotMutateCaller(t *testing.T) {
	legacy := map[string]any{"columns": 2}
	_, err := newPipeline(t).TransformBand(map[string]any{"grid": legacy})
	require.NoError(t, err)

	_, tagged := legacy["kind"]
	assert.False(t, tagged, "the caller's map must not be tagged in place")
}

func TestTransformBandWithoutLayout(t *testing.T) {
	for _, band := range []any{
		&decl.Band{Name: "empty"},
		map[string]any{"name": "empty"},
		"not a band",
		nil,
	} {
		_, err := newPipeline(t).TransformBand(band)

		var noLayout *errdefs.NoLayoutInBandError
		require.ErrorAs(t, err, &noLayout, "band %v", band)
	}
}

func TestTransformBandsPreservesOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	bands := []any{
		&decl.Band{Layout: &decl.Grid{Columns: 1, Children: []any{&decl.Label{Text: "first"}}}},
		&decl.Band{Layout: &decl.Stack{Children: []any{&decl.Label{Text: "second"}}}},
		&decl.Band{Layout: &decl.Table{Columns: 1, Children: []any{&decl.Label{Text: "third"}}}},
	}

	nodes, err := newPipeline(t).TransformBands(context.Background(), bands)
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	assert.Equal(t, layout.Grid, nodes[0].Kind)
	assert.Equal(t, layout.Stack, nodes[1].Kind)
	assert.Equal(t, layout.Table, nodes[2].Kind)

	for i, want := range []string{"first", "second", "third"} {
		lbl := nodes[i].Cells[0].Content[0].(*layout.Label)
		assert.Equal(t, want, lbl.Text, "band %d", i)
	}
}

func TestTransformBandsFailsAsAWhole(t *testing.T) {
	defer goleak.VerifyNone(t)

	bands := []any{
		&decl.Band{Layout: &decl.Grid{Columns: 1}},
		&decl.Band{Layout: &decl.Grid{}}, // missing columns
		&decl.Band{Layout: &decl.Grid{Columns: 1}},
	}

	nodes, err := newPipeline(t).TransformBands(context.Background(), bands)

	var missing *errdefs.MissingRequiredError
	require.ErrorAs(t, err, &missing)
	assert.Nil(t, nodes, "no partial results on failure")
}

func TestTransformBandsHonorsCancellation(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	nodes, err := newPipeline(t).TransformBands(ctx, []any{
		&decl.Band{Layout: &decl.Grid{Columns: 1}},
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, nodes)
}

func TestTransformBandsEmpty(t *testing.T) {
	nodes, err := newPipeline(t).TransformBands(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

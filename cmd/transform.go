// cmd/transform.go
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/folioengine/folio/api/decl"
	"github.com/folioengine/folio/internal/config"
	"github.com/folioengine/folio/internal/inspect"
	"github.com/folioengine/folio/internal/observability"
	"github.com/folioengine/folio/internal/template"
	"github.com/folioengine/folio/internal/transform"
)

// newTransformCmd creates and configures the `transform` command.
func newTransformCmd() *cobra.Command {
	transformCmd := &cobra.Command{
		Use:   "transform [templates...]",
		Short: "Transforms report templates into positioned layout trees",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			cfg := configFromContext(ctx)
			if err := applyTransformFlags(cmd, cfg); err != nil {
				return err
			}
			band, _ := cmd.Flags().GetString("band")

			runID := uuid.New().String()
			logger.Info("Starting layout transformation",
				zap.String("runID", runID),
				zap.Strings("templates", args),
				zap.Int("concurrency", cfg.Transform().BandConcurrency),
			)

			views, err := transformTemplates(ctx, cfg, args, band)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					logger.Warn("Transformation aborted", zap.String("runID", runID))
					return err
				}
				logger.Error("Transformation failed", zap.Error(err), zap.String("runID", runID))
				return err
			}

			writer, err := inspect.NewWriter(cfg.Output().Path, cfg.Output().Indent)
			if err != nil {
				return err
			}
			for _, view := range views {
				if err := writer.Write(view); err != nil {
					writer.Close()
					return err
				}
			}
			if err := writer.Close(); err != nil {
				return fmt.Errorf("failed to close output writer: %w", err)
			}

			logger.Info("Transformation completed",
				zap.String("runID", runID),
				zap.Int("templates", len(views)),
			)
			if path := cfg.Output().Path; path != "" && path != "stdout" {
				cmd.Printf("Wrote %d layout(s) to %s\n", len(views), path)
			}
			return nil
		},
	}

	transformCmd.Flags().Bool("skip-position", false, "Skip the positioning pass. (Overrides config/env)")
	transformCmd.Flags().Bool("skip-resolve", false, "Skip property resolution. (Overrides config/env)")
	transformCmd.Flags().IntP("concurrency", "j", 0, "Number of concurrent template transforms. (Overrides config/env)")
	transformCmd.Flags().StringP("output", "o", "", "Write layouts to this file instead of stdout. (Overrides config/env)")
	transformCmd.Flags().Bool("indent", true, "Indent the JSON output. (Overrides config/env)")
	transformCmd.Flags().String("band", "", "Transform only the named band from band-list templates")

	return transformCmd
}

// applyTransformFlags overlays changed flags onto the resolved config, then
// re-validates it since flags can introduce out-of-range values.
func applyTransformFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("skip-position") {
		v, _ := flags.GetBool("skip-position")
		cfg.SetTransformSkipPosition(v)
	}
	if flags.Changed("skip-resolve") {
		v, _ := flags.GetBool("skip-resolve")
		cfg.SetTransformSkipResolve(v)
	}
	if flags.Changed("concurrency") {
		v, _ := flags.GetInt("concurrency")
		cfg.SetTransformBandConcurrency(v)
	}
	if flags.Changed("output") {
		v, _ := flags.GetString("output")
		cfg.SetOutputPath(v)
	}
	if flags.Changed("indent") {
		v, _ := flags.GetBool("indent")
		cfg.SetOutputIndent(v)
	}
	return cfg.Validate()
}

// newPipelineFromConfig maps transform settings onto pipeline options.
func newPipelineFromConfig(cfg *config.Config) *transform.Pipeline {
	var opts []transform.Option
	if cfg.Transform().SkipPosition {
		opts = append(opts, transform.WithoutPositioning())
	}
	if cfg.Transform().SkipResolve {
		opts = append(opts, transform.WithoutResolution())
	}
	return transform.New(opts...)
}

// transformTemplates loads and transforms the templates concurrently,
// returning one view per input in input order.
func transformTemplates(ctx context.Context, cfg *config.Config, paths []string, band string) ([]any, error) {
	pipeline := newPipelineFromConfig(cfg)

	views := make([]any, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Transform().BandConcurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			declaration, err := template.Load(path)
			if err != nil {
				return err
			}
			view, err := viewFromDeclaration(gctx, pipeline, declaration, band)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			views[i] = view
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

// viewFromDeclaration dispatches on the template's root shape: a list is a
// band list, an untagged object is a single band, anything else transforms
// as one layout.
func viewFromDeclaration(ctx context.Context, pipeline *transform.Pipeline, declaration any, band string) (any, error) {
	switch d := declaration.(type) {
	case []any:
		bands := d
		if band != "" {
			bands = selectBand(d, band)
			if bands == nil {
				return nil, fmt.Errorf("band %q not found", band)
			}
		}
		nodes, err := pipeline.TransformBands(ctx, bands)
		if err != nil {
			return nil, err
		}
		doc := &inspect.Document{Bands: make([]*inspect.BandView, len(nodes))}
		for i, node := range nodes {
			doc.Bands[i] = &inspect.BandView{Name: bandName(bands[i]), Layout: inspect.Snapshot(node)}
		}
		return doc, nil
	case map[string]any:
		if _, tagged := d["kind"]; !tagged {
			node, err := pipeline.TransformBand(d)
			if err != nil {
				return nil, err
			}
			return &inspect.BandView{Name: bandName(d), Layout: inspect.Snapshot(node)}, nil
		}
	}

	node, err := pipeline.Transform(declaration)
	if err != nil {
		return nil, err
	}
	return inspect.Snapshot(node), nil
}

// selectBand narrows a band list to the named band, or nil when absent.
func selectBand(bands []any, name string) []any {
	for _, band := range bands {
		if bandName(band) == name {
			return []any{band}
		}
	}
	return nil
}

// bandName extracts the declared band name, empty when anonymous.
func bandName(band any) string {
	switch b := band.(type) {
	case *decl.Band:
		return b.Name
	case decl.Band:
		return b.Name
	case map[string]any:
		if name, ok := b["name"].(string); ok {
			return name
		}
	}
	return ""
}

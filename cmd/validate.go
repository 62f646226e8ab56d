// cmd/validate.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/folioengine/folio/internal/errdefs"
	"github.com/folioengine/folio/internal/observability"
	"github.com/folioengine/folio/internal/template"
)

// newValidateCmd creates the `validate` command, a dry run that checks each
// template through the full pipeline and reports problems in the
// declaration error vocabulary.
func newValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate [templates...]",
		Short: "Checks report templates without writing layout output",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()
			cfg := configFromContext(ctx)
			pipeline := newPipelineFromConfig(cfg)

			failed := 0
			for _, path := range args {
				if err := ctx.Err(); err != nil {
					return err
				}

				declaration, err := template.Load(path)
				if err != nil {
					failed++
					logger.Debug("Template failed to load", zap.String("template", path), zap.Error(err))
					cmd.PrintErrf("%s: %s\n", path, err)
					continue
				}
				if _, err := viewFromDeclaration(ctx, pipeline, declaration, ""); err != nil {
					failed++
					logger.Debug("Template failed validation", zap.String("template", path), zap.Error(err))
					cmd.PrintErrf("%s: %s\n", path, errdefs.Format(err))
					continue
				}
				cmd.Printf("%s: ok\n", path)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d templates failed validation", failed, len(args))
			}
			return nil
		},
	}
	return validateCmd
}

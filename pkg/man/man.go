// Package man generates man pages for the cli application.
package man

import (
	"fmt"
	"path/filepath"

	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewManCmd returns the hidden man subcommand. Without flags the rendered
// page goes to stdout; --output writes <name>.1 into the given directory.
func NewManCmd() *cobra.Command {
	return newManCmd(afero.NewOsFs())
}

func newManCmd(fs afero.Fs) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:                   "man",
		Short:                 "Generates manpages",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Hidden:                true,
		Args:                  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manPage, err := mcobra.NewManPage(1, cmd.Root())
			if err != nil {
				return fmt.Errorf("failed to build man page: %w", err)
			}

			rendered := manPage.Build(roff.NewDocument())

			if outputDir == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
				return err
			}

			if err := fs.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			path := filepath.Join(outputDir, cmd.Root().Name()+".1")
			if err := afero.WriteFile(fs, path, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf("failed to write man page: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory to write the man page into")

	return cmd
}

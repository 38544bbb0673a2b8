// Package version exposes build-time version information and the
// corresponding "version" subcommand.
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Build information, overridable at link time with -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info describes the binary's build provenance.
type Info struct {
	Version   string `yaml:"version"`
	Commit    string `yaml:"commit"`
	Date      string `yaml:"date"`
	GoVersion string `yaml:"go_version"`
	Platform  string `yaml:"platform"`
}

// Get returns the build information for the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Command returns the version subcommand. The default output is a
// single-line summary; --format yaml emits the full Info structure.
func Command() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := Get()
			switch format {
			case "text":
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit %s, built %s)\n",
					cmd.Root().Name(), info.Version, info.Commit, info.Date)
			case "yaml":
				out, err := yaml.Marshal(info)
				if err != nil {
					return fmt.Errorf("failed to marshal version info: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(out))
			default:
				return fmt.Errorf("unknown format %q, expected \"text\" or \"yaml\"", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text or yaml)")

	return cmd
}

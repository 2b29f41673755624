package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/shellsense/internal/app"
	"github.com/doeshing/shellsense/internal/domain"
)

// NewPatternsCommand creates the patterns command with its subcommands.
func NewPatternsCommand(container *app.Container) *cobra.Command {
	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "Inspect the danger pattern table",
	}

	patternsCmd.AddCommand(
		newPatternsListCommand(container),
		newPatternsExportCommand(container),
	)

	return patternsCmd
}

func newPatternsListCommand(container *app.Container) *cobra.Command {
	var tier string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active patterns with tier and rationale",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tier != "" {
				if _, ok := domain.ParseRiskTier(tier); !ok {
					return fmt.Errorf("unknown tier %q", tier)
				}
			}
			return listPatterns(cmd.OutOrStdout(), container, tier)
		},
	}

	cmd.Flags().StringVar(&tier, "tier", "", "Only show patterns at this tier")
	return cmd
}

func newPatternsExportCommand(container *app.Container) *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full pattern table as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportPatterns(cmd.OutOrStdout(), container, dest)
		},
	}

	cmd.Flags().StringVarP(&dest, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func listPatterns(w io.Writer, container *app.Container, tier string) error {
	for _, spec := range container.Library.Specs() {
		if tier != "" && spec.Tier != tier {
			continue
		}
		scope := spec.Shell
		if scope == "" {
			scope = "all"
		}
		fmt.Fprintf(w, "%-10s %-10s %s\n", spec.Tier, scope, spec.Name)
		fmt.Fprintf(w, "           %s\n", spec.Rationale)
	}
	return nil
}

func exportPatterns(w io.Writer, container *app.Container, dest string) error {
	raw, err := yaml.Marshal(container.Library.Specs())
	if err != nil {
		return err
	}
	if dest == "" {
		_, err = w.Write(raw)
		return err
	}
	if err := os.WriteFile(dest, raw, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %d patterns to %s\n", len(container.Library.Specs()), dest)
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/shellsense/internal/app"
	"github.com/doeshing/shellsense/internal/domain"
	"github.com/doeshing/shellsense/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	container.Resolution.Prompter = NewPrompter(nil, nil)

	askCmd := newAskCommand(container)

	root := &cobra.Command{
		Use:   "shellsense [request]",
		Short: "shellsense - natural language to shell commands",
		Long:  "shellsense turns natural-language requests into shell commands,\nasking clarifying questions when the request is ambiguous and\nvalidating every candidate against a danger pattern library.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			askCmd.SetArgs(args)
			return askCmd.ExecuteContext(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(askCmd)
	root.AddCommand(commands.NewPatternsCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	return root, nil
}

func newAskCommand(container *app.Container) *cobra.Command {
	var (
		model   string
		shell   string
		debug   bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "ask [natural language]",
		Short: "Resolve a natural-language request into a command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if shell != "" && !domain.ValidShell(shell) {
				return fmt.Errorf("unknown shell %q", shell)
			}

			req := domain.ResolutionRequest{
				Context:       ctx,
				Request:       strings.Join(args, " "),
				ShellHint:     domain.Shell(shell),
				ModelOverride: model,
				Debug:         debug,
				Timeout:       timeout,
			}
			result, err := container.Resolution.Run(req)
			if err != nil {
				return err
			}

			cfg, err := container.ConfigProvider.Load(ctx)
			if err != nil {
				return err
			}
			RenderResult(cmd.OutOrStdout(), result, cfg.Preferences.ShowPOSIX)
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Override model name (default from config)")
	cmd.Flags().StringVarP(&shell, "shell", "s", "", "Target shell (bash, zsh, fish, sh, powershell, cmd)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable verbose logging")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Limit the backend generation call (0 means no limit)")

	return cmd
}

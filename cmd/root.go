package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dimi-r1/create-fb-react/internal/app"
	"github.com/dimi-r1/create-fb-react/internal/config"
	"github.com/dimi-r1/create-fb-react/internal/errors"
	"github.com/dimi-r1/create-fb-react/internal/logging"
)

var (
	verbose      bool
	jsonOutput   bool
	templateName string
	configPath   string
)

var rootCmd = &cobra.Command{
	Use:   config.AppName + " [project-name]",
	Short: "Create a React + Firebase app from the Blaze boilerplate",
	Long: `create-blaze-app creates a new React + Firebase project.

It clones the boilerplate repository into ./<project-name>, drops the
boilerplate's git history, names the package after the project, copies
.env.example to .env.local, installs dependencies and records a single
initial commit. A half-created project directory is removed on failure.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		a := app.Default
		logging.Setup(verbose, jsonOutput, a.Err)
		logging.SetOutput(a.Out, a.Err)
	},
	RunE: runCreate,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the running step.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.As(err, new(*errors.ScaffoldError)) {
		// Flag and argument errors from cobra; our own errors are already shown.
		logging.UserError("%v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.Flags().StringVarP(&templateName, "template", "t", config.DefaultTemplate, "Template to use")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a TOML or YAML config file")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dimi-r1/create-fb-react/internal/app"
	"github.com/dimi-r1/create-fb-react/internal/config"
	"github.com/dimi-r1/create-fb-react/internal/errors"
	"github.com/dimi-r1/create-fb-react/internal/logging"
	"github.com/dimi-r1/create-fb-react/internal/project"
	"github.com/dimi-r1/create-fb-react/internal/tui"
)

func runCreate(cmd *cobra.Command, args []string) error {
	a := app.Default

	// rejected reports an error raised before any step ran.
	rejected := func(err error) error {
		tui.PrintInvalid(a.Err, err)
		return err
	}

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return rejected(errors.ConfigError("failed to load configuration", err))
		}
		a.Config = cfg
	}

	tui.PrintHeader(a.Out)

	name, err := projectName(a, args)
	if err != nil {
		return rejected(err)
	}

	dir, err := a.Dir()
	if err != nil {
		return rejected(errors.Wrap(errors.KindGeneral, "failed to determine working directory", err))
	}

	logging.Debug("creating project", "name", name, "dir", dir, "template", templateName)

	result, err := a.Creator().Create(cmd.Context(), project.CreateOptions{
		Name:     name,
		Dir:      dir,
		Template: templateName,
		Observer: a.Reporter(),
		OnStepError: func(err error) {
			tui.PrintError(a.Err, err)
		},
	})
	if err != nil {
		if errors.IsKind(err, errors.KindStep) {
			return err
		}
		return rejected(err)
	}

	if err := tui.PrintSuccess(a.Out, result.Name, a.Config.EnvLocal, a.Interactive); err != nil {
		logging.Warn("failed to print next steps", "error", err)
	}
	return nil
}

// projectName returns the name from the arguments, asking for it on a terminal.
func projectName(a *app.App, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if !a.Interactive {
		return "", errors.ValidationError("Project name is required when not running in a terminal")
	}

	return tui.PromptName(a.In, a.Out, a.Config.DefaultName, project.ValidateName)
}

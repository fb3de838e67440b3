package cli

import (
	"errors"
	"fmt"

	"github.com/tilingwm/wmgen/internal/config"
	"github.com/tilingwm/wmgen/internal/logging"
	"github.com/tilingwm/wmgen/internal/scaffold"
	"github.com/tilingwm/wmgen/internal/templates"
)

// generate scaffolds the project into root and prints the completion message.
func (a *app) generate(root string) error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	logger := logging.For(logging.Setup(settings.LogLevel, a.stderr), "scaffold")

	result, err := scaffold.Generate(a.fsys, root, templates.Default(), scaffold.Options{
		DirMode:  settings.DirMode,
		FileMode: settings.FileMode,
		Logger:   logger,
	})
	if err != nil {
		var ioErr *scaffold.IOError
		if errors.As(err, &ioErr) {
			return fmt.Errorf("writing %s: %w", ioErr.Entry, err)
		}
		return err
	}

	for _, f := range result.Files {
		logger.Info().Str("file", f).Msg("Created")
	}
	fmt.Fprintln(a.stdout, settings.SuccessMessage)
	return nil
}

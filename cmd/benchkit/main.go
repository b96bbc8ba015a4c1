package main

import (
	"context"
	"errors"
	"os"

	"github.com/agbru/benchkit/internal/app"
	apperrors "github.com/agbru/benchkit/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(0)
		}
		var configErr apperrors.ConfigError
		if errors.As(err, &configErr) {
			os.Exit(apperrors.ExitErrorConfig)
		}
		os.Exit(1)
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}

package main

import (
	"context"
	"errors"
	"log"

	"users-api/cmd/api/app"
	"users-api/cmd/api/server"
	apperrors "users-api/pkg/errors"
)

func main() {
	ctx, stop := server.WithSignal(context.Background())
	defer stop()

	if err := run(ctx); err != nil {
		var se *apperrors.StartupError
		if errors.As(err, &se) {
			log.Fatalf("startup failed during %s: %v", se.Phase, se.Err)
		}
		log.Fatalf("application exited with error: %v", err)
	}
}

func run(ctx context.Context) error {
	a, err := app.New()
	if err != nil {
		return err
	}

	return a.Run(ctx)
}

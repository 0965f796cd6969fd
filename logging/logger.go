package logging

import (
	"log/slog"
	"os"
)

// Setup initializes the global slog logger with JSON output to stdout.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

// SetupWithDB routes records to stdout and batches ERROR+ records into the
// error_logs table. The returned handler must be stopped on shutdown.
func SetupWithDB(dbHandler *DBHandler) {
	slog.SetDefault(slog.New(NewTeeHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		dbHandler,
	)))
}

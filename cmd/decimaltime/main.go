package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/taext/decimaltime/internal/cli"
	"github.com/taext/decimaltime/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// main is the application entry point.
// It delegates execution to runMain so that deferred cleanup runs before the
// process terminates; os.Exit() does not run defers.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle and exit codes.
// Returns config.ExitCodeSuccess on success, config.ExitCodeError on failure.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. Logging Initialization
	// -------------------------------------------------------------------------
	// Structured logging (slog) is configured before anything else so startup
	// issues are captured. The level var is handed to the CLI so --debug can
	// lower it after flag parsing.
	level := new(slog.LevelVar)
	setupLogging(level)

	// -------------------------------------------------------------------------
	// 2. Context & Signal Handling
	// -------------------------------------------------------------------------
	// Root context cancels on SIGINT (Ctrl+C) or SIGTERM; the serve command
	// uses it for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	// -------------------------------------------------------------------------
	// 3. Application Logic
	// -------------------------------------------------------------------------
	if err := cli.Execute(ctx, level); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Debug(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Debug(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
// Logs go to stderr (stdout is reserved for the formatted decimal time) and,
// when a log directory can be resolved, to a size-rotated file.
func setupLogging(level *slog.LevelVar) {
	level.Set(slog.LevelInfo)

	var logWriter io.Writer = os.Stderr

	if logPath, err := getLogFilePath(); err == nil {
		// lumberjack rotates by size and prunes old files, so the log
		// directory stays bounded without any external logrotate setup.
		rotator := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    config.LogMaxSizeMB,
			MaxBackups: config.LogMaxBackups,
			MaxAge:     config.LogMaxAgeDays,
			Compress:   true,
		}
		logWriter = io.MultiWriter(os.Stderr, rotator)
	} else {
		fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogDir, err)
	}

	logger := slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrLogDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}

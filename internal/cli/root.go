// Package cli wires the cobra command tree. Flags are bound to viper so that
// DECIMALTIME_* environment variables can override any of them.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/taext/decimaltime"
	"github.com/taext/decimaltime/internal/config"
)

// logLevel is shared with main's logging setup; --debug lowers it once the
// flags have been parsed.
var logLevel *slog.LevelVar

var rootCmd = &cobra.Command{
	Use:   config.CmdRootUse,
	Short: config.CmdRootShort,
	Long: `Prints the current time in decimal form: the year, the ordinal day of
the year, and the elapsed fraction of the day in [0.0, 1.0).`,
	Version:       config.Version + " (" + config.Commit + ")",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logLevel != nil && viper.GetBool(config.FlagDebug) {
			logLevel.Set(slog.LevelDebug)
		}
	},
	RunE: runRoot,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String(config.FlagFormat, decimaltime.DefaultLayout, config.FlagDescFormat)
	pf.Bool(config.FlagUTC, false, config.FlagDescUTC)
	pf.Int(config.FlagOffset, config.DefaultOffsetHours, config.FlagDescOffset)
	pf.Bool(config.FlagDebug, false, config.FlagDescDebug)

	for _, flag := range []string{config.FlagFormat, config.FlagUTC, config.FlagOffset, config.FlagDebug} {
		_ = viper.BindPFlag(flag, pf.Lookup(flag))
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()
}

// Execute runs the command tree under the given context. The level var allows
// --debug to take effect on the logger installed by main.
func Execute(ctx context.Context, level *slog.LevelVar) error {
	logLevel = level
	return rootCmd.ExecuteContext(ctx)
}

func runRoot(cmd *cobra.Command, args []string) error {
	loc := resolveLocation(viper.GetBool(config.FlagUTC), viper.GetInt(config.FlagOffset))
	layout := viper.GetString(config.FlagFormat)

	dt := decimaltime.FromTime(time.Now().In(loc))

	slog.Debug(config.MsgClockPrinted,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyZone, loc.String(),
		config.LogKeyFormat, layout,
	)

	fmt.Fprintln(cmd.OutOrStdout(), dt.Format(layout))
	return nil
}

// resolveLocation picks the zone the clock is read in. --utc wins over
// --offset; with neither, the process-local zone is used.
func resolveLocation(utc bool, offsetHours int) *time.Location {
	switch {
	case utc:
		return time.UTC
	case offsetHours != 0:
		name := fmt.Sprintf(config.OffsetZoneFormat, offsetHours)
		return time.FixedZone(name, offsetHours*config.SecondsPerHour)
	default:
		return time.Local
	}
}

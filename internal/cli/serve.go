package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/taext/decimaltime/internal/config"
	"github.com/taext/decimaltime/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   config.CmdServeUse,
	Short: config.CmdServeShort,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String(config.FlagPort, config.DefaultPort, config.FlagDescPort)
	_ = viper.BindPFlag(config.FlagPort, serveCmd.Flags().Lookup(config.FlagPort))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	port := viper.GetString(config.FlagPort)
	if err := validatePort(port); err != nil {
		return err
	}

	loc := resolveLocation(viper.GetBool(config.FlagUTC), viper.GetInt(config.FlagOffset))
	srv := server.NewClockServer(port, viper.GetString(config.FlagFormat), loc)

	// Blocks until the root context is cancelled (SIGINT/SIGTERM).
	return srv.Start(cmd.Context())
}

// validatePort rejects non-numeric and out-of-range ports before binding.
func validatePort(port string) error {
	if port == "" {
		return errors.New(config.ErrPortRequired)
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return errors.New(config.ErrPortNumber)
	}
	if n < config.MinPort || n > config.MaxPort {
		return errors.New(config.ErrPortRange)
	}
	return nil
}

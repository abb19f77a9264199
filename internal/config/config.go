// Package config wires the Viper environment layer. There is no config
// file on purpose: the program keeps no state between runs, so settings
// come from flags first and PLASMACLEAN_* environment variables second.
package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Init wires Viper with env and flag bindings. It is non-fatal: any
// errors are returned for optional handling by the caller.
func Init(root *cobra.Command) error {
	// Environment variables: PLASMACLEAN_*
	viper.SetEnvPrefix("PLASMACLEAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Bind root persistent flags to Viper keys
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	return nil
}

package main

import (
	"fmt"

	"github.com/katalvlaran/hyperarray/hyper"
	"github.com/katalvlaran/hyperarray/layout"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = ".hyperplay"
	envPrefix  = "HYPERPLAY"
	keyOrder   = "order"
)

// app carries the configuration shared by every subcommand.
type app struct {
	cfgFile string
	v       *viper.Viper
}

// newRootCmd wires the command tree. Each call returns an independent tree
// with its own viper instance, so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "hyperplay",
		Short: "Explore N-dimensional arrays, views and iterators",
		Long: `
hyperplay builds dense N-dimensional arrays and prints how they are laid out,
how views over sub-regions iterate, and how data moves between shapes and
storage orders.

The default storage order comes from --order, the HYPERPLAY_ORDER environment
variable or the "order" key of $HOME/.hyperplay.yaml, in that priority.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.hyperplay.yaml)")
	rootCmd.PersistentFlags().StringP(keyOrder, "o", "row-major", "storage order: row-major or column-major")
	_ = a.v.BindPFlag(keyOrder, rootCmd.PersistentFlags().Lookup(keyOrder))

	rootCmd.AddCommand(newShowCmd(a), newWalkCmd(a), newReshapeCmd(a), newLabelCmd(a))

	return rootCmd
}

// initConfig reads in the config file and ENV variables if set.
func (a *app) initConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return errors.Wrap(err, "locating home directory")
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigName(configName)
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrapf(err, "reading config %q", a.cfgFile)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", a.v.ConfigFileUsed())

	return nil
}

// order resolves the configured default storage order.
func (a *app) order() (hyper.Order, error) {
	o, err := layout.ParseOrder(a.v.GetString(keyOrder))
	if err != nil {
		return 0, errors.Wrap(err, "resolving --order")
	}

	return o, nil
}

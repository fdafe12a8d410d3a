package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix prefixes the environment variables that configure the demo.
const envPrefix = "datagrid"

// Config holds the demo settings.
type Config struct {
	// Rows is the number of generated records.
	Rows int
	// Seed seeds the record generator.
	Seed int64
	// Selection enables the selection column.
	Selection bool
	// Debug outlines every cell.
	Debug bool
	// Profile is the kind of profile to record.
	Profile string
	// LogLevel is the logrus level name.
	LogLevel string
	// Metrics dumps the grid metrics when the window closes.
	Metrics bool
}

func (c *Config) addFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", 5000, "number of generated records")
	fs.Int64Var(&c.Seed, "seed", 1, "seed of the record generator")
	fs.BoolVar(&c.Selection, "selection", true, "show the selection column")
	fs.BoolVar(&c.Debug, "debug", false, "outline every cell")
	fs.StringVar(&c.Profile, "profile", "none", "create the provided kind of profile. Use one of [none, cpu, mem, block, goroutine, mutex, trace, gio]")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level")
	fs.BoolVar(&c.Metrics, "metrics", false, "print grid metrics on exit")
}

// bindEnvironment sets every flag left unset on the command line from its
// DATAGRID_ environment variable.
func bindEnvironment(command *cobra.Command) error {
	var errs []string
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	command.Flags().VisitAll(func(f *pflag.Flag) {
		name := strings.ReplaceAll(f.Name, "-", "_")
		if f.Changed || !v.IsSet(name) {
			return
		}
		if err := command.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(name))); err != nil {
			errs = append(errs, err.Error())
		}
	})
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("mapping environment variables to flags: %s", strings.Join(errs, "; "))
}

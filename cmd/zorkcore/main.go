// Command zorkcore runs a data-driven text adventure: point it at a
// directory of world files and play in the terminal, full-screen or
// plain.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dirkkok101/zorkcore/cli"
	"github.com/dirkkok101/zorkcore/engine"
	"github.com/dirkkok101/zorkcore/engine/inventory"
	"github.com/dirkkok101/zorkcore/loader"
	"github.com/dirkkok101/zorkcore/logging"
	"github.com/dirkkok101/zorkcore/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	logging.Init()

	root := &cobra.Command{
		Use:           "zorkcore",
		Short:         "A data-driven text adventure engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "config file (default ./zorkcore.yaml)")

	root.AddCommand(playCmd(), validateCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initConfig loads settings from the config file and environment.
// Every setting has a default so the config file is optional.
func initConfig(cmd *cobra.Command) error {
	v := viper.GetViper()
	v.SetDefault("start_scene", engine.DefaultStartScene)
	v.SetDefault("max_items", inventory.DefaultLimits.MaxItems)
	v.SetDefault("max_weight", inventory.DefaultLimits.MaxWeight)
	v.SetDefault("light_load_limit", inventory.DefaultLimits.LightLoadLimit)
	v.SetDefault("seed", int64(0))
	v.SetEnvPrefix("ZORKCORE")
	v.AutomaticEnv()

	if cfg, _ := cmd.Flags().GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
	} else {
		v.SetConfigName("zorkcore")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func engineOptions() engine.Options {
	v := viper.GetViper()
	return engine.Options{
		StartScene: v.GetString("start_scene"),
		Seed:       v.GetInt64("seed"),
		Limits: inventory.Limits{
			MaxItems:       v.GetInt("max_items"),
			MaxWeight:      v.GetInt("max_weight"),
			LightLoadLimit: v.GetInt("light_load_limit"),
		},
	}
}

func playCmd() *cobra.Command {
	var plain bool
	var scriptFile string

	cmd := &cobra.Command{
		Use:   "play <game_directory>",
		Short: "Play a game from a directory of world files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(cmd); err != nil {
				return err
			}

			world, err := loader.LoadWorld(args[0])
			if err != nil {
				return fmt.Errorf("loading game: %w", err)
			}
			eng := engine.New(world, engineOptions())

			// Script mode: read commands from a file, echoing each.
			if scriptFile != "" {
				f, err := os.Open(scriptFile)
				if err != nil {
					return fmt.Errorf("opening script: %w", err)
				}
				defer f.Close()
				c := cli.New(eng)
				c.In = f
				c.EchoInput = true
				c.Run()
				return nil
			}

			if plain || !isTerminal() {
				cli.New(eng).Run()
				return nil
			}
			return tui.Run(eng)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "plain line-mode interface")
	cmd.Flags().StringVar(&scriptFile, "script", "", "play commands from a file")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <game_directory>",
		Short: "Load world files and report per-entity problems without playing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := loader.LoadWorld(args[0])
			if err != nil {
				return err
			}
			failed := 0
			for _, rep := range world.Reports {
				fmt.Printf("%s: %d/%d loaded (index total %d)\n",
					rep.Kind, rep.Loaded, rep.Attempted, rep.Total)
				for _, fe := range rep.Errors {
					failed++
					fmt.Printf("  %s: %v\n", fe.File, fe.Err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d file(s) failed validation", failed)
			}
			fmt.Println("All world files valid.")
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("zorkcore %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/spf13/cobra"

	"github.com/cmmoran/jsls/pkg/language"
)

var (
	configFiles []string
	level       string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jsls",
	Short: "JavaScript language service tooling",
	Long: "Analyze JavaScript sources from the command line: diagnostics, outlines,\n" +
		"completions, hover cards, token dumps and outline snapshots.",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&level, "level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringSliceVar(&configFiles, "config", []string{}, "config file(s) - multiple config files are merged with last specified file having highest priority")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	var ll slog.Level
	if err := (&ll).UnmarshalText([]byte(level)); err != nil {
		if strings.EqualFold(level, "trace") {
			ll = slog.Level(-8)
		} else {
			panic("invalid log level: " + level)
		}
	}
	// results go to stdout, telemetry to stderr
	l := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: false,
		Level:     ll,
	}))
	slog.SetDefault(l)

	if len(configFiles) > 0 {
		// Use config file from the flag.
		viper.SetConfigFile(configFiles[0])
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc")
		viper.SetConfigType("yaml")
		viper.SetConfigName("jsls")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		l.With("config", viper.ConfigFileUsed()).Debug("using config file(s)")
	}
	if len(configFiles) > 1 {
		for _, file := range configFiles[1:] {
			if configBytes, err := os.ReadFile(file); err == nil {
				if err = viper.MergeConfig(bytes.NewReader(configBytes)); err != nil {
					l.With("error", err, "file", file).Warn("failed to merge config file")
				} else {
					l.With("file", file).Debug("merged config file")
				}
			}
		}
	}

	// config may tighten or loosen the level chosen by the flag
	if llstr := viper.GetString("log.level"); llstr != "" && !strings.EqualFold(llstr, level) {
		if err := (&ll).UnmarshalText([]byte(llstr)); err == nil {
			slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: ll})))
		}
	}
}

// serviceOptions assembles language options from the merged config.
func serviceOptions() []language.Option {
	var opts []language.Option
	if d := viper.GetDuration("debounce"); d > 0 {
		opts = append(opts, language.WithDebounce(d))
	}
	if n := viper.GetInt("completion.max_items"); n > 0 {
		opts = append(opts, language.WithMaxCompletions(n))
	}
	if viper.GetBool("completion.recency_boost") {
		opts = append(opts, language.WithRecencyBoost())
	}
	if viper.IsSet("completion.locality_boost") {
		opts = append(opts, language.WithLocalityBoost(viper.GetBool("completion.locality_boost")))
	}
	return opts
}

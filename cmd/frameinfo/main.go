package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/frameinfo/pkg/frame"
	"github.com/ajitpratap0/frameinfo/pkg/info"
	"github.com/ajitpratap0/frameinfo/pkg/logger"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "frameinfo",
		Short: "frameinfo - info-style summaries for columnar tables",
		Long: `frameinfo prints human-readable summaries of columnar data files:
shape, estimated memory size, per-column dtypes and null statistics, and an
optional row sample. CSV, Parquet, and Arrow IPC files are supported.`,
	}
	root.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("frameinfo v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the default options as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(info.DefaultOptions())
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	})

	root.AddCommand(newInfoCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newInfoCmd() *cobra.Command {
	var (
		cfgFile string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize a tabular data file",
		Long: `Summarize a tabular data file. The format is detected from the file
extension: .csv, .parquet, .arrow, .ipc, .feather.

Options come from flags, FRAMEINFO_* environment variables, or a YAML config
file, in that order of precedence.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logLevel, _ := cmd.Flags().GetString("log-level")
			if err := logger.Init(logger.Config{Level: logLevel, Encoding: "console"}); err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			v := viper.New()
			v.SetEnvPrefix("FRAMEINFO")
			v.AutomaticEnv()
			bindFlags(v, cmd)

			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("failed to read config file: %w", err)
				}
			}

			opts, err := optionsFromViper(v)
			if err != nil {
				return err
			}

			logger.Debug("loading table",
				zap.String("path", args[0]),
				zap.String("display", string(opts.Display)))

			tbl, err := frame.LoadFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			defer tbl.Release()

			if jsonOut {
				// JSON replaces the human-readable text on stdout.
				opts.Output = io.Discard
			}

			summary, err := info.Summarize(tbl, opts)
			if err != nil {
				return err
			}

			if jsonOut {
				out, err := json.MarshalIndent(summary, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("name", "", "Label printed in the summary header")
	flags.String("display", string(info.DisplayAuto), "Column display mode (full, head_tail, auto)")
	flags.Int("head", 5, "Leading columns shown in head_tail mode")
	flags.Int("tail", 5, "Trailing columns shown in head_tail mode")
	flags.Int("max-columns", 60, "Column limit before full/auto display falls back to head_tail")
	flags.Bool("null-stats", true, "Show non-null / null / null% columns")
	flags.Int("sample", 0, "Append the first N rows to the output")
	flags.StringVar(&cfgFile, "config", "", "YAML options file")
	flags.BoolVar(&jsonOut, "json", false, "Emit the summary as JSON instead of text")

	return cmd
}

// bindFlags maps flag spellings onto the yaml option keys so flags, env vars,
// and config files resolve through one viper instance.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	_ = v.BindPFlag("name", cmd.Flags().Lookup("name"))
	_ = v.BindPFlag("display", cmd.Flags().Lookup("display"))
	_ = v.BindPFlag("head", cmd.Flags().Lookup("head"))
	_ = v.BindPFlag("tail", cmd.Flags().Lookup("tail"))
	_ = v.BindPFlag("max_columns", cmd.Flags().Lookup("max-columns"))
	_ = v.BindPFlag("show_null_stats", cmd.Flags().Lookup("null-stats"))
	_ = v.BindPFlag("show_sample", cmd.Flags().Lookup("sample"))
}

// optionsFromViper builds validated summarization options from the resolved
// configuration.
func optionsFromViper(v *viper.Viper) (info.Options, error) {
	opts := info.DefaultOptions()
	opts.Name = v.GetString("name")

	mode, err := info.ParseDisplayMode(v.GetString("display"))
	if err != nil {
		return info.Options{}, err
	}
	opts.Display = mode
	opts.Head = v.GetInt("head")
	opts.Tail = v.GetInt("tail")
	opts.MaxColumns = v.GetInt("max_columns")
	opts.ShowNullStats = v.GetBool("show_null_stats")
	opts.ShowSample = v.GetInt("show_sample")

	if err := opts.Validate(); err != nil {
		return info.Options{}, err
	}
	return opts, nil
}

// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package cmd provides the root command for the jsv CLI.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/defenseunicorns/jsv"
	configv0 "github.com/defenseunicorns/jsv/config/v0"
	"github.com/defenseunicorns/jsv/tui"
)

// NewRootCmd creates the root command for the jsv CLI.
func NewRootCmd() *cobra.Command {
	var (
		level       string
		ver         bool
		list        bool
		explain     bool
		interactive bool
		full        bool
		mode        = jsv.DefaultMode // VarP does not allow you to set a default value
		dir         string
		exts        []string
		configPath  string
	)

	var cfg *configv0.Config // cfg is not set via CLI flag

	// closure initializer
	loadConfig := func(cmd *cobra.Command) error {
		switch {
		case cmd.Flags().Changed("config"):
			f, err := os.Open(configPath)
			if err != nil {
				return fmt.Errorf("failed to open config file: %w", err)
			}
			defer f.Close()
			cfg, err = configv0.LoadConfig(f)
			if err != nil {
				return fmt.Errorf("failed to load config file: %w", err)
			}
		case os.Getenv("JSV_CONFIG") != "":
			f, err := os.Open(os.Getenv("JSV_CONFIG"))
			if err != nil {
				return fmt.Errorf("failed to open config file: %w", err)
			}
			defer f.Close()
			cfg, err = configv0.LoadConfig(f)
			if err != nil {
				return fmt.Errorf("failed to load config file: %w", err)
			}
		default:
			var err error
			cfg, err = configv0.LoadDefaultConfig()
			if err != nil {
				return err
			}
		}

		// default < cfg < flags
		if !cmd.Flags().Changed("dir") && cfg.Dir != "" {
			dir = cfg.Dir
		}
		if !cmd.Flags().Changed("extensions") && len(cfg.Extensions) > 0 {
			exts = cfg.Extensions
		}

		return nil
	}

	root := &cobra.Command{
		Use:   "jsv [schema]",
		Short: "A JSON Schema viewer for the terminal",
		Long: `
      ██╗███████╗██╗   ██╗
      ██║██╔════╝██║   ██║
      ██║███████╗██║   ██║
 ██   ██║╚════██║╚██╗ ██╔╝
 ╚█████╔╝███████║ ╚████╔╝
  ╚════╝ ╚══════╝  ╚═══╝
`,
		Example: `
jsv

jsv 2 --full

jsv schemas/user.schema.json --explain

jsv --dir ./api/schemas --list
`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}

			// completion does not always run PersistentPreRun first
			if cfg == nil {
				if err := loadConfig(cmd); err != nil {
					return nil, cobra.ShellCompDirectiveError
				}
			}

			entries, err := jsv.Discover(afero.NewOsFs(), dir, exts)
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}

			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, strings.Join([]string{e.Path, e.HumanSize()}, "\t"))
			}

			return names, cobra.ShellCompDirectiveNoFileComp
		},
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := log.ParseLevel(level)
			if err != nil {
				return err
			}
			logger := log.FromContext(cmd.Context())
			logger.SetLevel(l)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)

			if ver && len(args) == 0 {
				bi, ok := debug.ReadBuildInfo()
				if !ok {
					return fmt.Errorf("version information not available")
				}
				switch bi.Main.Path {
				case "github.com/defenseunicorns/jsv":
					fmt.Fprintln(os.Stdout, bi.Main.Version)
				default:
					for _, dep := range bi.Deps {
						if dep.Path == "github.com/defenseunicorns/jsv" {
							fmt.Fprintln(os.Stdout, dep.Version)
							break
						}
					}
				}
				return nil
			}

			if full {
				if cmd.Flags().Changed("mode") && mode != jsv.ModeFull {
					return fmt.Errorf("cannot combine --full with --mode %s", mode)
				}
				mode = jsv.ModeFull
			}

			fs := afero.NewOsFs()

			if list {
				entries, err := jsv.Discover(fs, dir, exts)
				if err != nil {
					return err
				}

				fmt.Fprintln(os.Stdout, "Available JSON Schemas:")
				fmt.Fprintln(os.Stdout, jsv.MenuTable(entries))

				return nil
			}

			selector := ""
			if len(args) == 1 {
				selector = args[0]
			}

			var path string
			switch {
			case selector != "" && !jsv.IsIndex(selector):
				// explicit paths bypass discovery so they can live anywhere
				path = selector
			default:
				entries, err := jsv.Discover(fs, dir, exts)
				if err != nil {
					return err
				}
				logger.Debug("discovered schemas", "dir", dir, "count", len(entries))

				if selector == "" {
					entry, err := jsv.Choose(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), entries)
					if err != nil {
						if errors.Is(err, jsv.ErrQuit) {
							return nil
						}
						return err
					}
					path = entry.Path
				} else {
					path, err = jsv.Resolve(fs, entries, selector)
					if err != nil {
						return err
					}
				}
			}

			doc, err := jsv.LoadDocument(fs, path)
			if err != nil {
				return err
			}
			logger.Debug("loaded schema", "path", doc.Path)

			if interactive {
				return tui.Run(ctx, doc)
			}

			var rOpts []jsv.RendererOption
			fd := int(os.Stdout.Fd())
			if !term.IsTerminal(fd) {
				rOpts = append(rOpts, jsv.WithPlain(true))
			} else if w, _, err := term.GetSize(fd); err == nil && w > 0 && w < 100 {
				rOpts = append(rOpts, jsv.WithWidth(w))
			}
			renderer := jsv.NewRenderer(os.Stdout, rOpts...)

			if explain {
				out, err := renderer.Explain(ctx, doc)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, out)
				return nil
			}

			return renderer.Render(ctx, doc, mode)
		},
	}

	root.Flags().StringVarP(&level, "log-level", "l", "info", "Set log level")
	_ = root.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{log.DebugLevel.String(), log.InfoLevel.String(), log.WarnLevel.String(), log.ErrorLevel.String(), log.FatalLevel.String()}, cobra.ShellCompDirectiveNoFileComp
	})
	root.Flags().BoolVarP(&ver, "version", "V", false, "Print version number and exit")
	root.Flags().BoolVar(&list, "list", false, "Print list of discovered schemas and exit")
	root.Flags().BoolVar(&explain, "explain", false, "Print a markdown digest of the selected schema and exit")
	root.Flags().BoolVar(&interactive, "tui", false, "Browse the selected schema in a full-screen viewer")
	root.Flags().VarP(&mode, "mode", "m", fmt.Sprintf(`Set render mode ("%s")`, strings.Join(jsv.AvailableModes(), `", "`)))
	_ = root.RegisterFlagCompletionFunc("mode", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return jsv.AvailableModes(), cobra.ShellCompDirectiveNoFileComp
	})
	root.Flags().BoolVar(&full, "full", false, `Render the complete JSON with syntax highlighting (same as --mode full)`)
	root.Flags().StringVarP(&dir, "dir", "d", jsv.DefaultDir, "Directory searched for schema files")
	_ = root.MarkFlagDirname("dir")
	root.Flags().StringSliceVar(&exts, "extensions", jsv.DefaultExtensions(), "File extensions discovered as schema files")
	root.Flags().StringVar(&configPath, "config", "${HOME}/.jsv/config.yaml", "Path to jsv config file") // mirrors config.DefaultDirectory
	_ = root.MarkFlagFilename("config", "yaml", "yml")

	return root
}

// Main executes the root command for the jsv CLI.
//
// It returns 0 on success, 1 on failure and logs any errors.
func Main() int {
	cli := NewRootCmd()

	ctx := context.Background()

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer cancel()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	logger.SetStyles(DefaultStyles())

	ctx = log.WithContext(ctx, logger)
	_, err := cli.ExecuteContextC(ctx)
	if err != nil {
		logger.Error(err)
	}
	return ParseExitCode(err)
}

// ParseExitCode calculates the exit code from a given error
//
// 0 - the error was nil
// 1 - there was some error
func ParseExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

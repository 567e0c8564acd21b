package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hazepito/internal/bootstrap"
	"hazepito/internal/platform/config"
	"hazepito/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "hazepito",
		Short:         "Terminal reference for building a house in Hungary",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file (yaml)")

	root.AddCommand(newTUICmd(&configPath))
	root.AddCommand(newTopicsCmd(&configPath))
	root.AddCommand(newShowCmd(&configPath))
	root.AddCommand(newCheckCmd(&configPath))
	root.AddCommand(newExportCmd(&configPath))
	root.AddCommand(newPhotosCmd(&configPath))
	root.AddCommand(newPluginCmd(&configPath))
	return root
}

// loadApp wires the application for one-shot commands, which log to stderr.
func loadApp(configPath string) (*bootstrap.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.Stderr(cfg))
}

func runTUI(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	app, err := bootstrap.New(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("starting tui", "content_dir", cfg.ContentDir, "content_db", cfg.ContentDB, "plugins_dir", cfg.PluginsDir)
	return bootstrap.RunTUI(app)
}

func newTUICmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(*configPath)
		},
	}
}

func newTopicsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List topics grouped as in the topic bar",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			tax, err := app.CatalogCLI.Taxonomy(context.Background())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, g := range tax.Groups {
				_, _ = fmt.Fprintf(out, "%s (%s)\n", g.Label, g.ID)
				for _, t := range g.Topics {
					marker := " "
					if t.ID == tax.DefaultTopic {
						marker = "*"
					}
					_, _ = fmt.Fprintf(out, " %s %-14s %s", marker, t.ID, t.Label)
					if t.Subtitle != "" {
						_, _ = fmt.Fprintf(out, ": %s", t.Subtitle)
					}
					_, _ = fmt.Fprintln(out)
				}
			}
			return nil
		},
	}
}

func newShowCmd(configPath *string) *cobra.Command {
	var subTab, hotspot string
	cmd := &cobra.Command{
		Use:   "show <topic>",
		Short: "Print one topic panel as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			topic, err := app.CatalogCLI.Topic(context.Background(), args[0])
			if err != nil {
				return err
			}
			return renderTopic(cmd.OutOrStdout(), topic, subTab, hotspot)
		},
	}
	cmd.Flags().StringVar(&subTab, "subtab", "", "sub-tab id (default: the topic's default)")
	cmd.Flags().StringVar(&hotspot, "hotspot", "", "hotspot id to select")
	return cmd
}

func newCheckCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report shapes whose hotspot has no record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			findings, err := app.CatalogCLI.Lint(context.Background())
			if err != nil {
				return err
			}
			if len(findings) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}
			for _, f := range findings {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s/%s: %s: %s\n", f.Topic, f.SubTab, f.Hotspot, f.Message)
			}
			return fmt.Errorf("%d finding(s)", len(findings))
		},
	}
}

func newExportCmd(configPath *string) *cobra.Command {
	var format, outPath, dbPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active content pack to a sqlite db or a markdown directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dbPath != "" {
				format, outPath = "sqlite", dbPath
			}
			if strings.TrimSpace(outPath) == "" {
				return fmt.Errorf("--out or --db is required")
			}
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			out, err := app.CatalogCLI.Export(context.Background(), format, outPath)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d topics as %s to %s\n", out.Topics, out.Format, out.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "sqlite", "export format: sqlite|markdown")
	cmd.Flags().StringVar(&outPath, "out", "", "output path (db file or directory)")
	cmd.Flags().StringVar(&dbPath, "db", "", "shorthand for --format sqlite --out <path>")
	return cmd
}

func newPhotosCmd(configPath *string) *cobra.Command {
	var open, probe bool
	cmd := &cobra.Command{
		Use:   "photos <topic>",
		Short: "List a topic's reference photos and its image search link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			ctx := context.Background()
			topic, err := app.CatalogCLI.Topic(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range topic.Photos {
				status := ""
				if probe {
					res, err := app.ReferenceCLI.Probe(ctx, p.URL)
					switch {
					case err != nil:
						status = " [error: " + err.Error() + "]"
					case res.Loaded:
						status = " [ok]"
					default:
						status = " [hidden: " + res.Reason + "]"
					}
				}
				_, _ = fmt.Fprintf(out, "%s  %s%s\n", p.Caption, p.URL, status)
			}
			if strings.TrimSpace(topic.SearchQuery) == "" {
				return nil
			}
			link, err := app.ReferenceCLI.SearchLink(ctx, topic.SearchQuery)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "search: %s\n", link.URL)
			if open {
				return app.ReferenceCLI.Open(ctx, link.URL)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&open, "open", false, "open the image search in the browser")
	cmd.Flags().BoolVar(&probe, "probe", false, "check that each photo still loads")
	return cmd
}

func newPluginCmd(configPath *string) *cobra.Command {
	plugin := &cobra.Command{Use: "plugin", Short: "Content plugin operations"}
	plugin.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List plugin manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			plugins, err := app.PluginCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(plugins) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
				return nil
			}
			for _, p := range plugins {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t binary=%s capabilities=%s\n",
					p.Name, p.Version, p.Enabled, p.Binary, strings.Join(p.Capabilities, ","))
			}
			return nil
		},
	})

	plugin.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate plugin checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			results, err := app.PluginCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t", r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})
	return plugin
}

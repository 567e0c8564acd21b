package bootstrap

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	"hazepito/internal/content"
	cataloginadapter "hazepito/internal/modules/catalog/adapter/in"
	catalogoutadapter "hazepito/internal/modules/catalog/adapter/out"
	catalogout "hazepito/internal/modules/catalog/port/out"
	catalogservice "hazepito/internal/modules/catalog/service"
	catalogusecase "hazepito/internal/modules/catalog/usecase"
	plugininadapter "hazepito/internal/modules/plugin/adapter/in"
	pluginoutadapter "hazepito/internal/modules/plugin/adapter/out"
	pluginservice "hazepito/internal/modules/plugin/service"
	pluginusecase "hazepito/internal/modules/plugin/usecase"
	referenceinadapter "hazepito/internal/modules/reference/adapter/in"
	referenceoutadapter "hazepito/internal/modules/reference/adapter/out"
	referenceservice "hazepito/internal/modules/reference/service"
	referenceusecase "hazepito/internal/modules/reference/usecase"
	"hazepito/internal/platform/clock"
	"hazepito/internal/platform/config"
	uiapp "hazepito/internal/ui/app"
)

type App struct {
	Config config.Config
	Logger hclog.Logger

	CatalogCLI   cataloginadapter.CLIHandler
	CatalogTUI   cataloginadapter.TUIHandler
	ReferenceCLI referenceinadapter.CLIHandler
	ReferenceTUI referenceinadapter.TUIHandler
	PluginCLI    plugininadapter.CLIHandler
}

func New(cfg config.Config, logger hclog.Logger) (*App, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	clk := clock.SystemClock{}

	source, err := contentSource(cfg, clk)
	if err != nil {
		return nil, err
	}

	pluginUC := pluginusecase.NewInteractor(pluginservice.NewPluginService(
		pluginoutadapter.NewFileManifestStore(cfg.PluginsDir),
		pluginoutadapter.NewGRPCHost(logger),
		logger,
	))
	var providers []catalogout.TopicProvider
	if cfg.PluginsDir != "" {
		providers = append(providers, catalogoutadapter.NewPluginTopicProvider(pluginUC, logger))
	}

	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(
		source,
		providers,
		catalogoutadapter.NewWriterFactory(clk),
		logger,
	))

	referenceUC := referenceusecase.NewInteractor(referenceservice.NewReferenceService(
		referenceoutadapter.NewHTTPImageProbe(cfg.PhotoProbeTimeout),
		referenceoutadapter.NewOSExternalLauncher(),
		cfg.SearchEngine,
		cfg.PhotoProbeTimeout,
		logger,
	))

	return &App{
		Config:       cfg,
		Logger:       logger,
		CatalogCLI:   cataloginadapter.NewCLIHandler(catalogUC),
		CatalogTUI:   cataloginadapter.NewTUIHandler(catalogUC),
		ReferenceCLI: referenceinadapter.NewCLIHandler(referenceUC),
		ReferenceTUI: referenceinadapter.NewTUIHandler(referenceUC),
		PluginCLI:    plugininadapter.NewCLIHandler(pluginUC),
	}, nil
}

// contentSource picks the primary pack: a sqlite content db, a directory of
// topic files, or the embedded pack.
func contentSource(cfg config.Config, clk clock.Clock) (catalogout.ContentSource, error) {
	switch {
	case cfg.ContentDB != "":
		return catalogoutadapter.NewSQLiteContentStore(cfg.ContentDB, clk), nil
	case cfg.ContentDir != "":
		info, err := os.Stat(cfg.ContentDir)
		if err != nil {
			return nil, fmt.Errorf("content dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("content dir %s is not a directory", cfg.ContentDir)
		}
		return catalogoutadapter.NewFSContentSource("dir:"+cfg.ContentDir, os.DirFS(cfg.ContentDir)), nil
	default:
		return catalogoutadapter.NewFSContentSource("embedded", content.FS()), nil
	}
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.CatalogTUI, app.ReferenceTUI, uiapp.Options{
		DefaultTopic: app.Config.DefaultTopic,
		GlamourStyle: app.Config.GlamourStyle,
	})
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if app.Config.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model, opts...)
	_, err := program.Run()
	return err
}

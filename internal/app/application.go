package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/allsafeASM/assetspec/internal/common"
	"github.com/allsafeASM/assetspec/internal/config"
	"github.com/allsafeASM/assetspec/internal/handlers"
	"github.com/allsafeASM/assetspec/internal/logging"
	"github.com/allsafeASM/assetspec/internal/models"
	"github.com/allsafeASM/assetspec/internal/suffix"
	"github.com/allsafeASM/assetspec/internal/utils"
	"github.com/allsafeASM/assetspec/internal/validation"
	"github.com/google/uuid"
	"github.com/projectdiscovery/gologger"
)

// Options are the per-run inputs taken from the command line
type Options struct {
	Mode     string
	Targets  []string
	ListFile string
}

// Application represents the main application structure
type Application struct {
	config        *config.Config
	validator     *validation.Validator
	importHandler *handlers.ImportHandler
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *config.Config) (*Application, error) {
	app := &Application{config: cfg}

	if err := app.initialize(); err != nil {
		return nil, err
	}

	return app, nil
}

// initialize sets up all application components
func (app *Application) initialize() error {
	if app.config == nil {
		app.config = config.Load()
	}
	if err := app.config.Validate(); err != nil {
		return common.NewConfigurationError("", "invalid configuration", err)
	}

	logging.Setup(app.config.App.LogLevel)

	lookup, err := newSuffixLookup(app.config.Suffix)
	if err != nil {
		return err
	}
	app.validator = validation.NewValidator(validation.WithSuffixLookup(lookup))

	app.importHandler = handlers.NewImportHandler(
		app.validator,
		app.config.App.BatchWorkers,
		app.config.App.MaxBatchSize,
	)

	return nil
}

// newSuffixLookup builds the public suffix data source named by cfg
func newSuffixLookup(cfg config.SuffixConfig) (suffix.Lookup, error) {
	switch {
	case cfg.Provider == config.SuffixProviderXNet:
		gologger.Debug().Msg("Using golang.org/x/net public suffix table")
		return suffix.XNetLookup{}, nil
	case cfg.ListFile != "":
		lookup, err := suffix.LoadListFile(cfg.ListFile, cfg.IgnorePrivate)
		if err != nil {
			return nil, common.NewConfigurationError("SUFFIX_LIST_FILE", "failed to load public suffix list", err)
		}
		gologger.Debug().Msgf("Using public suffix list from %s", cfg.ListFile)
		return lookup, nil
	case cfg.IgnorePrivate:
		gologger.Warning().Msg("Private public suffixes are ignored; hosts under github.io and similar roll up to the ICANN suffix")
		return suffix.NewListLookup(suffix.Default().List(), true), nil
	default:
		return suffix.Default(), nil
	}
}

// Validator returns the validator the application was configured with
func (app *Application) Validator() *validation.Validator {
	return app.validator
}

// Run collects inputs, validates them and writes the JSON report to out.
// Targets come from opts.Targets, then opts.ListFile, then stdin.
func (app *Application) Run(ctx context.Context, opts Options, stdin io.Reader, out io.Writer) (*models.ImportReport, error) {
	inputs, err := collectInputs(opts, stdin)
	if err != nil {
		return nil, err
	}

	mode := models.ImportMode(strings.ToLower(opts.Mode))
	if mode == "" {
		mode = models.ImportModeTarget
	}

	report, err := app.importHandler.HandleImport(ctx, &models.ImportRequest{
		Mode:   mode,
		Inputs: inputs,
	})
	if err != nil {
		return nil, err
	}
	report.RunID = uuid.NewString()

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return nil, common.NewInternalError("failed to write report", err)
	}

	return report, nil
}

// collectInputs gathers raw targets from flags, a list file or stdin
func collectInputs(opts Options, stdin io.Reader) ([]string, error) {
	inputs := append([]string{}, opts.Targets...)

	if opts.ListFile != "" {
		fromFile, err := utils.ReadTargetsFromFile(opts.ListFile)
		if err != nil {
			return nil, common.NewInputError("failed to read target list", err)
		}
		inputs = append(inputs, fromFile...)
	}

	if len(inputs) == 0 && stdin != nil {
		fromStdin, err := utils.ReadTargets(stdin)
		if err != nil {
			return nil, common.NewInputError("failed to read targets from stdin", err)
		}
		inputs = fromStdin
	}

	if len(inputs) == 0 {
		return nil, common.NewInputError(fmt.Sprintf("no targets provided (modes: %s)", modeNames()), nil)
	}
	return inputs, nil
}

func modeNames() string {
	names := make([]string, len(models.ImportModes))
	for i, mode := range models.ImportModes {
		names[i] = string(mode)
	}
	return strings.Join(names, ", ")
}

package handlers

import (
	"context"
	"fmt"

	"github.com/allsafeASM/assetspec/internal/common"
	"github.com/allsafeASM/assetspec/internal/models"
	"github.com/allsafeASM/assetspec/internal/validation"
	"github.com/projectdiscovery/gologger"
)

// ImportHandler validates bulk target uploads
type ImportHandler struct {
	validator    *validation.Validator
	workers      int
	maxBatchSize int
}

// NewImportHandler creates a new import handler
func NewImportHandler(validator *validation.Validator, workers, maxBatchSize int) *ImportHandler {
	if validator == nil {
		validator = validation.Default()
	}
	return &ImportHandler{
		validator:    validator,
		workers:      workers,
		maxBatchSize: maxBatchSize,
	}
}

// HandleImport validates every input of req and summarizes the outcome.
// Rejected inputs are part of the report; an error is returned only when the
// request itself cannot be processed.
func (h *ImportHandler) HandleImport(ctx context.Context, req *models.ImportRequest) (*models.ImportReport, error) {
	if req == nil {
		return nil, common.NewValidationError("request", "import request cannot be nil")
	}
	if h.maxBatchSize > 0 && len(req.Inputs) > h.maxBatchSize {
		return nil, common.NewValidationError("inputs",
			fmt.Sprintf("too many inputs: %d (max: %d)", len(req.Inputs), h.maxBatchSize))
	}

	gologger.Debug().Msgf("Processing %s import with %d inputs", req.Mode, len(req.Inputs))

	report := &models.ImportReport{
		Mode:  req.Mode,
		Total: len(req.Inputs),
	}

	var err error
	switch req.Mode {
	case models.ImportModeTarget:
		err = h.handleBatch(ctx, req.Inputs, h.validator.ValidateTarget, report)
	case models.ImportModeDomain:
		err = h.handleBatch(ctx, req.Inputs, h.validator.ValidateDomain, report)
	case models.ImportModeEndpoint:
		err = h.handleBatch(ctx, req.Inputs, h.validator.ValidateEndpoint, report)
	case models.ImportModeSubdomain:
		err = h.handleSubdomainImport(ctx, req.Inputs, report)
	case models.ImportModeGroup:
		h.handleGroupImport(req.Inputs, report)
	default:
		return nil, common.NewValidationError("mode", fmt.Sprintf("unknown import mode: %s", req.Mode))
	}
	if err != nil {
		return nil, common.NewInternalError("import interrupted", err)
	}

	gologger.Info().Msgf("%s import completed: %d valid, %d invalid out of %d",
		req.Mode, report.ValidCount, report.InvalidCount, report.Total)
	return report, nil
}

// handleBatch validates inputs with fn and fills the item list and counters
func (h *ImportHandler) handleBatch(ctx context.Context, inputs []string, fn validation.ValidateFunc, report *models.ImportReport) error {
	items, err := validation.RunBatch(ctx, inputs, h.workers, fn)
	if err != nil {
		return err
	}

	report.Items = items
	for _, item := range items {
		if item.Valid {
			report.ValidCount++
			continue
		}
		report.InvalidCount++
		gologger.Debug().Msgf("Rejected input %d %q: %v", item.Index, item.OriginalInput, item.Err())
	}
	return nil
}

// handleSubdomainImport validates subdomains and groups the accepted ones
// under their root domain so parent targets can be matched or created
func (h *ImportHandler) handleSubdomainImport(ctx context.Context, inputs []string, report *models.ImportReport) error {
	if err := h.handleBatch(ctx, inputs, h.validator.ValidateSubdomain, report); err != nil {
		return err
	}

	accepted := make([]string, 0, report.ValidCount)
	for _, item := range report.Items {
		if item.Valid {
			accepted = append(accepted, item.OriginalInput)
		}
	}
	report.Groups = h.validator.GroupSubdomainsByRootDomain(accepted)
	return nil
}

// handleGroupImport only rolls inputs up under their root domain
func (h *ImportHandler) handleGroupImport(inputs []string, report *models.ImportReport) {
	report.Groups = h.validator.GroupSubdomainsByRootDomain(inputs)
	report.InvalidCount = len(report.Groups.Invalid)
	report.ValidCount = report.Total - report.InvalidCount
}

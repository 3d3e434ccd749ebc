package validation

import (
	"context"

	"github.com/allsafeASM/assetspec/internal/models"
	"golang.org/x/sync/errgroup"
)

// ValidateFunc validates a single raw input.
type ValidateFunc func(input string) models.ValidationResult

// ValidateBatch applies fn to every input. Result i always describes
// inputs[i]; a failing item never stops the batch.
func ValidateBatch(inputs []string, fn ValidateFunc) []models.BatchItem {
	items := make([]models.BatchItem, len(inputs))
	for i, input := range inputs {
		items[i] = models.BatchItem{
			Index:            i,
			OriginalInput:    input,
			ValidationResult: fn(input),
		}
	}
	return items
}

// RunBatch is ValidateBatch spread over at most workers goroutines. Items keep
// input order. The only error is a cancelled ctx.
func RunBatch(ctx context.Context, inputs []string, workers int, fn ValidateFunc) ([]models.BatchItem, error) {
	if workers <= 1 || len(inputs) < 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return ValidateBatch(inputs, fn), nil
	}

	items := make([]models.BatchItem, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			items[i] = models.BatchItem{
				Index:            i,
				OriginalInput:    input,
				ValidationResult: fn(input),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ValidateDomainBatch validates each input as a domain.
func (v *Validator) ValidateDomainBatch(inputs []string) []models.BatchItem {
	return ValidateBatch(inputs, v.ValidateDomain)
}

// ValidateSubdomainBatch validates each input as a subdomain.
func (v *Validator) ValidateSubdomainBatch(inputs []string) []models.BatchItem {
	return ValidateBatch(inputs, v.ValidateSubdomain)
}

// ValidateTargetBatch auto-detects and validates each input.
func (v *Validator) ValidateTargetBatch(inputs []string) []models.BatchItem {
	return ValidateBatch(inputs, v.ValidateTarget)
}

// ValidateEndpointBatch validates each input as an http(s) URL.
func (v *Validator) ValidateEndpointBatch(inputs []string) []models.BatchItem {
	return ValidateBatch(inputs, v.ValidateEndpoint)
}

// GroupSubdomainsByRootDomain rolls subdomains up under their root domain.
// Inputs keep their original spelling inside each group; inputs without a
// root domain go to Invalid.
func (v *Validator) GroupSubdomainsByRootDomain(subdomains []string) *models.RootDomainGroups {
	groups := models.NewRootDomainGroups()
	for _, subdomain := range subdomains {
		root, ok := v.ExtractRootDomain(subdomain)
		if !ok {
			groups.AddInvalid(subdomain)
			continue
		}
		groups.Add(root, subdomain)
	}
	return groups
}

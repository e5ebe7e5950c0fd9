// Package dispatch evaluates every FCAS offer in a dispatch-interval case:
// trapezium construction, scaling and the availability decision.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/akxen/nemde-fcas/internal/casefile"
	"github.com/akxen/nemde-fcas/internal/fcas"
	"github.com/akxen/nemde-fcas/pkg/constants"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// solutionAttributes maps each FCAS trade type to its solved target
// attribute in the casefile outputs.
var solutionAttributes = map[fcas.TradeType]string{
	fcas.R5RE: "@R5RegTarget",
	fcas.L5RE: "@L5RegTarget",
	fcas.R6SE: "@R6Target",
	fcas.R60S: "@R60Target",
	fcas.R5MI: "@R5Target",
	fcas.L6SE: "@L6Target",
	fcas.L60S: "@L60Target",
	fcas.L5MI: "@L5Target",
}

// OfferResult is the outcome of one (trader, offer) pipeline run.
type OfferResult struct {
	TraderID  string
	TradeType fcas.TradeType
	Unscaled  fcas.Trapezium
	Scaled    fcas.Trapezium
	Available bool
	// Target is the solved dispatch target for the offer when the casefile
	// carries solution data, for comparison output; nil otherwise.
	Target *float64
}

// Runner evaluates all FCAS offers of a case. Offers are independent pure
// computations over the immutable case snapshot, so they run concurrently
// without locking.
type Runner struct {
	repo    *casefile.Repository
	logger  *zap.Logger
	workers int
}

// NewRunner constructs a runner. workers <= 0 selects the default.
func NewRunner(repo *casefile.Repository, logger *zap.Logger, workers int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = constants.DefaultWorkers
	}
	return &Runner{repo: repo, logger: logger, workers: workers}
}

// Run evaluates every FCAS offer in the case and returns results sorted by
// trader then trade type. An offer whose attributes are missing is logged
// and skipped rather than aborting the batch.
func (r *Runner) Run(ctx context.Context) ([]OfferResult, error) {
	offers, err := r.repo.TraderOffers()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate trader offers: %w", err)
	}
	intervention, err := r.repo.InterventionStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to determine intervention status: %w", err)
	}

	var fcasOffers []casefile.Offer
	for _, offer := range offers {
		if fcas.TradeType(offer.TradeType).IsFCAS() {
			fcasOffers = append(fcasOffers, offer)
		}
	}

	results := make([]*OfferResult, len(fcasOffers))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(r.workers)

	for i, offer := range fcasOffers {
		i, offer := i, offer
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := r.evaluate(offer, intervention)
			if err != nil {
				var notFound *casefile.AttributeNotFoundError
				if errors.As(err, &notFound) {
					r.logger.Warn("skipping offer with incomplete case data",
						zap.String("op", "dispatch.Run"),
						zap.String("trader", offer.TraderID),
						zap.String("tradeType", offer.TradeType),
						zap.Error(err),
					)
					return nil
				}
				return fmt.Errorf("failed to evaluate %s %s: %w", offer.TraderID, offer.TradeType, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	out := make([]OfferResult, 0, len(results))
	for _, result := range results {
		if result != nil {
			out = append(out, *result)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].TraderID != out[b].TraderID {
			return out[a].TraderID < out[b].TraderID
		}
		return out[a].TradeType < out[b].TradeType
	})

	r.logger.Debug("dispatch interval evaluated",
		zap.String("op", "dispatch.Run"),
		zap.Int("offers", len(fcasOffers)),
		zap.Int("results", len(out)),
	)
	return out, nil
}

// evaluate runs the full pipeline for one offer: build, scale, decide
// availability, and attach the solved target when present.
func (r *Runner) evaluate(offer casefile.Offer, intervention string) (*OfferResult, error) {
	tradeType := fcas.TradeType(offer.TradeType)

	unit, err := fcas.LoadUnitState(r.repo, offer.TraderID)
	if err != nil {
		return nil, err
	}
	unscaled, err := fcas.OfferTrapezium(r.repo, offer.TraderID, tradeType)
	if err != nil {
		return nil, err
	}
	scaled := fcas.ScaledTrapezium(unscaled, tradeType, unit)
	available, err := fcas.Availability(r.repo, offer.TraderID, tradeType, scaled, unit)
	if err != nil {
		return nil, err
	}

	result := &OfferResult{
		TraderID:  offer.TraderID,
		TradeType: tradeType,
		Unscaled:  unscaled,
		Scaled:    scaled,
		Available: available,
	}

	// Solution data only exists in solved casefiles; its absence is normal.
	if attribute, ok := solutionAttributes[tradeType]; ok {
		target, err := r.repo.TraderSolutionAttribute(offer.TraderID, attribute, intervention)
		if err == nil {
			result.Target = &target
		} else {
			var notFound *casefile.AttributeNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	return result, nil
}

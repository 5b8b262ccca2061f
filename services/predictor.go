package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"price-optimization-api/config"
	"price-optimization-api/models"
)

var (
	// ErrModelUnavailable is returned when no artifact has been loaded.
	ErrModelUnavailable = errors.New("model not loaded")
	// ErrInvalidRange is returned for a degenerate optimization range
	// (min_price > max_price or step <= 0).
	ErrInvalidRange = errors.New("invalid price range")
)

// gridTolerance keeps the inclusive upper bound from being dropped when
// floating-point step accumulation overshoots max_price by an ulp.
const gridTolerance = 1e-9

// PredictorService scores single price points and scans price grids for
// the profit maximum.
type PredictorService struct {
	store *ModelStore
	cogs  float64
}

func NewPredictorService(store *ModelStore, cfg config.ModelConfig) *PredictorService {
	return &PredictorService{store: store, cogs: cfg.COGS}
}

// Predict scores one price point. The model emits a log-scale value;
// quantity is recovered with expm1 and floored at zero, and profit is
// floored at zero so a negative margin contributes nothing.
func (s *PredictorService) Predict(req models.PredictRequest) (models.PredictionResult, error) {
	start := time.Now()
	defer func() {
		predictDuration.Observe(time.Since(start).Seconds())
	}()

	model, meta := s.store.Get()
	if model == nil {
		return models.PredictionResult{}, ErrModelUnavailable
	}

	row := BuildFeatureRow(req, *req.UnitPrice, meta)
	preds, err := model.Predict([]models.FeatureRow{row})
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("predict: %w", err)
	}
	if len(preds) != 1 {
		return models.PredictionResult{}, fmt.Errorf("predict: got %d predictions for one row", len(preds))
	}

	qty := math.Max(0, math.Expm1(preds[0]))
	margin := *req.UnitPrice - s.cogs - *req.FreightPrice
	profit := math.Max(0, margin*qty)

	predictionsTotal.Inc()
	return models.PredictionResult{PredictedQty: qty, PredictedProfit: profit}, nil
}

// Optimize scans the closed grid [minPrice, maxPrice] in steps of step
// and returns the grid point with maximum profit. Every candidate gets
// its ratios rebuilt against the candidate price and all candidates are
// scored in a single batched model invocation. Ties resolve to the
// lowest price.
func (s *PredictorService) Optimize(req models.PredictRequest, minPrice, maxPrice, step float64) (models.OptimizationResult, error) {
	start := time.Now()
	defer func() {
		optimizeDuration.Observe(time.Since(start).Seconds())
	}()

	model, meta := s.store.Get()
	if model == nil {
		return models.OptimizationResult{}, ErrModelUnavailable
	}

	grid := PriceGrid(minPrice, maxPrice, step)
	if len(grid) == 0 {
		return models.OptimizationResult{}, fmt.Errorf("%w: min_price=%g max_price=%g step=%g", ErrInvalidRange, minPrice, maxPrice, step)
	}

	rows := make([]models.FeatureRow, len(grid))
	for i, price := range grid {
		rows[i] = BuildFeatureRow(req, price, meta)
	}

	preds, err := model.Predict(rows)
	if err != nil {
		return models.OptimizationResult{}, fmt.Errorf("optimize: %w", err)
	}
	if len(preds) != len(grid) {
		return models.OptimizationResult{}, fmt.Errorf("optimize: got %d predictions for %d candidates", len(preds), len(grid))
	}

	qtys := make([]float64, len(grid))
	profits := make([]float64, len(grid))
	for i, logPred := range preds {
		qtys[i] = math.Max(0, math.Expm1(logPred))
		margin := grid[i] - s.cogs - *req.FreightPrice
		if margin > 0 {
			profits[i] = margin * qtys[i]
		}
	}

	best := floats.MaxIdx(profits)
	optimizationsTotal.Inc()
	return models.OptimizationResult{
		BestPrice:  grid[best],
		BestProfit: profits[best],
		BestQty:    qtys[best],
	}, nil
}

// PriceGrid generates the closed, evenly spaced candidate grid in
// ascending order. A degenerate range yields an empty grid.
func PriceGrid(min, max, step float64) []float64 {
	if step <= 0 || min > max {
		return nil
	}
	var grid []float64
	for p := min; p <= max+gridTolerance; p += step {
		grid = append(grid, p)
	}
	return grid
}

package metrics

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/aristath/watchtower/internal/domain"
	"github.com/aristath/watchtower/pkg/formulas"
)

// Service orchestrates per-instrument metric computation across a price
// matrix. All underlying calculators are pure functions over immutable
// inputs, so instruments are computed concurrently without coordination -
// each record depends only on its own return series and the read-only
// benchmark series.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new metrics service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("component", "metrics").Logger(),
	}
}

// ComputeAll computes one Record per instrument in the matrix, excluding the
// benchmark identifier. The benchmark return series is derived once and
// shared read-only across instruments; when the benchmark is absent or not
// in the matrix, benchmark-relative metrics come out nil. An empty matrix
// yields an empty map, not an error.
func (s *Service) ComputeAll(matrix domain.PriceMatrix, benchmark string, rfAnnual float64) map[string]Record {
	records := make(map[string]Record, len(matrix))
	if len(matrix) == 0 {
		return records
	}

	benchReturns := domain.ReturnSeries{}
	if benchmark != "" {
		if series, ok := matrix[benchmark]; ok {
			benchReturns = series.Returns()
		}
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for symbol, series := range matrix {
		if symbol == benchmark {
			continue
		}

		wg.Add(1)
		go func(symbol string, series domain.PriceSeries) {
			defer wg.Done()

			record := s.computeOne(series, benchReturns, rfAnnual)

			mu.Lock()
			records[symbol] = record
			mu.Unlock()
		}(symbol, series)
	}

	wg.Wait()

	s.log.Debug().
		Int("instruments", len(records)).
		Str("benchmark", benchmark).
		Float64("risk_free_rate", rfAnnual).
		Msg("Computed metrics")

	return records
}

// computeOne populates a single record. Every calculator call is
// independent: one missing metric never blocks the others.
func (s *Service) computeOne(series domain.PriceSeries, benchReturns domain.ReturnSeries, rfAnnual float64) Record {
	returns := series.Returns()
	returnVals := returns.Values()

	record := Record{
		AnnReturn:   formulas.AnnualizedReturn(returnVals),
		Sharpe:      formulas.SharpeRatio(returnVals, rfAnnual),
		Sortino:     formulas.SortinoRatio(returnVals, rfAnnual),
		Volatility:  formulas.AnnualizedVolatility(returnVals),
		MaxDrawdown: formulas.MaxDrawdown(series.Closes()),
	}

	assetVals, benchVals := domain.AlignReturns(returns, benchReturns)
	record.TrackingError = formulas.TrackingError(assetVals, benchVals)

	regression := formulas.BetaAlphaR2(assetVals, benchVals, rfAnnual)
	record.Beta = regression.Beta
	record.Alpha = regression.Alpha
	record.R2 = regression.R2

	return record
}

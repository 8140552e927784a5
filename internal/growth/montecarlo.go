package growth

import (
	"context"
	"math"
	"math/rand/v2"
	"slices"

	"golang.org/x/sync/errgroup"

	"paycheck-engine/internal/model"
)

const defaultChunkSize = 500

type SimulationParams struct {
	StartingBalance    float64 `json:"starting_balance"`
	AnnualContribution float64 `json:"annual_contribution"`
	Years              int     `json:"years"`
	Paths              int     `json:"paths"`
	MeanReturn         float64 `json:"mean_return"`
	Volatility         float64 `json:"volatility"`
	Seed               uint64  `json:"seed"`
	ChunkSize          int     `json:"chunk_size,omitempty"`
	Workers            int     `json:"workers,omitempty"`
}

type YearPercentiles struct {
	Year int     `json:"year"`
	P10  float64 `json:"p10"`
	P50  float64 `json:"p50"`
	P90  float64 `json:"p90"`
	Mean float64 `json:"mean"`
}

type SimulationResult struct {
	Paths int               `json:"paths"`
	Years []YearPercentiles `json:"years"`
	// ShortfallProbability is the share of paths ending below the total
	// amount put in.
	ShortfallProbability float64 `json:"shortfall_probability"`
}

// MonteCarlo simulates wealth paths with normally distributed annual
// returns. Paths are split into fixed-size chunks, each drawing from its
// own PCG stream seeded by (Seed, chunk), so results depend only on the
// parameters and not on how chunks are scheduled.
func MonteCarlo(ctx context.Context, p SimulationParams) (*SimulationResult, error) {
	switch {
	case p.Years <= 0:
		return nil, model.Invalid("years", "must be positive, got %d", p.Years)
	case p.Paths <= 0:
		return nil, model.Invalid("paths", "must be positive, got %d", p.Paths)
	case p.Volatility < 0:
		return nil, model.Invalid("volatility", "negative volatility %v", p.Volatility)
	case p.StartingBalance < 0 || p.AnnualContribution < 0:
		return nil, model.Invalid("balance", "starting balance and contribution must not be negative")
	}
	chunk := p.ChunkSize
	if chunk <= 0 {
		chunk = defaultChunkSize
	}

	// balances[y][path] is the balance at the end of year y+1.
	balances := make([][]float64, p.Years)
	for y := range balances {
		balances[y] = make([]float64, p.Paths)
	}

	g, ctx := errgroup.WithContext(ctx)
	if p.Workers > 0 {
		g.SetLimit(p.Workers)
	}
	for c, start := 0, 0; start < p.Paths; c, start = c+1, start+chunk {
		end := min(start+chunk, p.Paths)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(p.Seed, uint64(c)))
			for path := start; path < end; path++ {
				bal := p.StartingBalance
				for y := 0; y < p.Years; y++ {
					r := p.MeanReturn + p.Volatility*rng.NormFloat64()
					bal = math.Max(0, bal*(1+r)+p.AnnualContribution)
					balances[y][path] = bal
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &SimulationResult{Paths: p.Paths, Years: make([]YearPercentiles, p.Years)}
	for y, row := range balances {
		sorted := slices.Clone(row)
		slices.Sort(sorted)
		var sum float64
		for _, v := range sorted {
			sum += v
		}
		res.Years[y] = YearPercentiles{
			Year: y + 1,
			P10:  round2(percentile(sorted, 0.10)),
			P50:  round2(percentile(sorted, 0.50)),
			P90:  round2(percentile(sorted, 0.90)),
			Mean: round2(sum / float64(len(sorted))),
		}
	}

	invested := p.StartingBalance + p.AnnualContribution*float64(p.Years)
	var short int
	for _, v := range balances[p.Years-1] {
		if v < invested {
			short++
		}
	}
	res.ShortfallProbability = float64(short) / float64(p.Paths)
	return res, nil
}

// percentile uses the nearest-rank method on sorted values.
func percentile(sorted []float64, q float64) float64 {
	rank := int(math.Ceil(q*float64(len(sorted)))) - 1
	rank = max(0, min(rank, len(sorted)-1))
	return sorted[rank]
}

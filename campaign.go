package focusbench

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// CaseRunner executes one trial case through an external collaborator
// (typically a finite-element solver behind a mesh/case generator). The
// runner owns all subprocess and file concerns; the campaign only consumes
// the completed scalar outcome.
//
// Implementations must be safe for concurrent calls.
type CaseRunner interface {
	RunCase(ctx context.Context, spec CaseSpec) (TrialOutcome, error)
}

// CaseSpec describes one generated trial case. The stiffness setting and
// scale carry the manufacturing-tolerance perturbation already applied.
type CaseSpec struct {
	CaseID           string
	NominalK         float64 // Batch setting before perturbation
	StiffnessSetting float64 // Perturbed k handed to the solver
	StiffnessScale   float64 // Multiplicative support-stiffness perturbation
	BowM             float64 // Initial substrate bow [m]
	Material         string
	LoadPattern      string
	Seed             int
}

// BatchConfig describes one Monte Carlo batch: repeated cases at a nominal
// stiffness setting under manufacturing tolerance.
type BatchConfig struct {
	Name         string
	NominalK     float64
	Cases        int
	Material     string  // Registry key; default "silicon"
	LoadPattern  string  // Default "scan"
	TolerancePct float64 // Perturbation half-width; default 5 (±5%)
}

// CampaignConfig controls a full campaign run.
type CampaignConfig struct {
	Batches     []BatchConfig
	Parallelism int   // Concurrent cases; 0 = sequential execution
	Seed        int64 // Perturbation stream seed; same seed, same case specs
}

// BatchResult carries the outcomes and summary statistics of one batch.
// Failed cases are counted and skipped, never fabricated; a batch where
// every case failed has Stats.Count == 0 and aggregation of it downstream
// yields InsufficientDataError.
type BatchResult struct {
	Name     string
	NominalK float64
	Regime   Regime
	Outcomes []TrialOutcome
	Stats    TrialStatistics
	Failures int
}

// CampaignResult is the complete output of one campaign run.
type CampaignResult struct {
	RunID   string // Unique per run, for provenance tagging
	Batches []BatchResult
}

// RunCampaign generates the perturbed case specs for every batch and runs
// them through the external runner, fanning cases out across goroutines up
// to the configured parallelism. Case generation is sequential and seeded,
// so a campaign is reproducible regardless of scheduling; results keep
// generation order.
//
// Returns early only on context cancellation; individual case failures are
// recorded per batch and do not abort the campaign.
func RunCampaign(ctx context.Context, runner CaseRunner, cfg CampaignConfig) (CampaignResult, error) {
	result := CampaignResult{RunID: uuid.NewString()}
	rng := rand.New(rand.NewSource(cfg.Seed))

	for _, batch := range cfg.Batches {
		specs := generateBatch(batch, rng)

		outcomes := make([]TrialOutcome, len(specs))
		failed := make([]bool, len(specs))

		g, gctx := errgroup.WithContext(ctx)
		if cfg.Parallelism > 0 {
			g.SetLimit(cfg.Parallelism)
		} else {
			g.SetLimit(1)
		}

		for i, spec := range specs {
			i, spec := i, spec
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				outcome, err := runner.RunCase(gctx, spec)
				if err != nil {
					failed[i] = true
					return nil // Case failures are skipped, not fatal
				}
				outcomes[i] = outcome
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return CampaignResult{}, err
		}

		br := BatchResult{
			Name:     batch.Name,
			NominalK: batch.NominalK,
			Regime:   RegimeForRatio(batch.NominalK),
		}
		for i, o := range outcomes {
			if failed[i] {
				br.Failures++
				continue
			}
			br.Outcomes = append(br.Outcomes, o)
		}
		if len(br.Outcomes) > 0 {
			stats, err := Aggregate(br.Outcomes)
			if err != nil {
				return CampaignResult{}, err
			}
			br.Stats = stats
		}
		result.Batches = append(result.Batches, br)
	}

	return result, nil
}

// generateBatch produces the perturbed case specs for one batch. ±tolerance
// on the stiffness setting and support stiffness, ±5 µm initial bow,
// mirroring the manufacturing-tolerance envelope of the campaigns the model
// was fit against.
func generateBatch(batch BatchConfig, rng *rand.Rand) []CaseSpec {
	tolerance := batch.TolerancePct
	if tolerance == 0 {
		tolerance = 5
	}
	material := batch.Material
	if material == "" {
		material = Silicon.Name
	}
	pattern := batch.LoadPattern
	if pattern == "" {
		pattern = "scan"
	}

	specs := make([]CaseSpec, batch.Cases)
	for seed := range specs {
		frac := tolerance / 100
		specs[seed] = CaseSpec{
			CaseID:           fmt.Sprintf("%s_seed%d", batch.Name, seed),
			NominalK:         batch.NominalK,
			StiffnessSetting: batch.NominalK * (1 + frac*(2*rng.Float64()-1)),
			StiffnessScale:   1 + frac*(2*rng.Float64()-1),
			BowM:             -5e-6 + 10e-6*rng.Float64(),
			Material:         material,
			LoadPattern:      pattern,
			Seed:             seed,
		}
	}
	return specs
}

// CliffMappingConfig maps the cliff shape: Monte Carlo batches at seven
// stiffness settings spanning stable through cliff.
func CliffMappingConfig(casesPerBatch int) CampaignConfig {
	settings := []float64{0.60, 0.65, 0.70, 0.75, 0.80, 0.85, 0.90}
	batches := make([]BatchConfig, len(settings))
	for i, k := range settings {
		batches[i] = BatchConfig{
			Name:     fmt.Sprintf("cliff_k%03.0f", k*100),
			NominalK: k,
			Cases:    casesPerBatch,
		}
	}
	return CampaignConfig{Batches: batches, Parallelism: 4, Seed: 123}
}

// MaterialSweepConfig probes stable and cliff zones for each candidate
// substrate material, closing the material escape routes.
func MaterialSweepConfig(casesPerBatch int) CampaignConfig {
	var batches []BatchConfig
	for _, material := range []string{Silicon.Name, SiC.Name, GaAs.Name, InP.Name, GaN.Name, AlN.Name} {
		for _, k := range []float64{0.50, 0.80} {
			batches = append(batches, BatchConfig{
				Name:     fmt.Sprintf("mat_%s_k%03.0f", material, k*100),
				NominalK: k,
				Cases:    casesPerBatch,
				Material: material,
			})
		}
	}
	return CampaignConfig{Batches: batches, Parallelism: 4, Seed: 202}
}

// Package focusbench estimates thermally-induced focus drift in EUV imaging
// optics and classifies whether a thermal operating point stays inside the
// focus budget.
//
// # Overview
//
// An EUV source deposits hundreds of Watts into the optical column. The
// substrate heats, warps, and shifts the focal plane. focusbench models that
// chain analytically and renders a verdict:
//
//	thermal load → temperature rise → warpage → stiffness ratio k →
//	variance factor → effective warpage → focus margin → status
//
// The interesting part is the variance model. Substrate response is NOT
// linear in thermal load: at a critical azimuthal stiffness ratio
// (k ≥ 0.81) a mode inversion occurs and the variance amplification jumps
// to 122× over an infinitesimal change in k. That discontinuity,
// "the cliff", is a measured phenomenon, and the piecewise model here
// reproduces it verbatim rather than smoothing it away.
//
// # Quick Start
//
// Analyze a machine at its nominal thermal load:
//
//	profile := focusbench.DefaultProfile("nxe-3800e")
//	analysis, err := focusbench.Analyze(profile)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("k = %.4f, margin = %.1f nm, status = %s\n",
//	    analysis.StiffnessRatio, analysis.FocusMarginNM, analysis.Status)
//
// Compare against the actively stabilized configuration:
//
//	stabilized := focusbench.SimulateStabilized(analysis)
//	fmt.Printf("warpage reduced %.1f×, margin recovered %.1f nm\n",
//	    stabilized.Improvement.WarpageReduction,
//	    stabilized.Improvement.MarginRecoveryNM)
//
// # Trial Statistics
//
// The model is validated against externally produced Monte Carlo trials
// (manufacturing-tolerance perturbations solved by an external FEA
// collaborator). The aggregator computes sample statistics per batch and the
// cross-zone variance ratio:
//
//	stable, _ := focusbench.Aggregate(stableOutcomes)
//	cliff, _ := focusbench.Aggregate(cliffOutcomes)
//
//	ratio, err := focusbench.VarianceRatio(cliff, stable)
//	// ratio ≈ VarianceFactor(k_cliff) / VarianceFactor(k_stable)
//
// The empirical ratio validates the analytic model; it never overrides it.
//
// # Purity
//
// Every core computation is a synchronous, side-effect-free function over
// immutable inputs. There is no shared state and no I/O in the library;
// callers may fan analyses out across goroutines freely. The campaign runner
// is the one concurrent surface, and it only schedules an external
// collaborator: the core consumes completed scalar outcomes.
package focusbench

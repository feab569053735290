package focusbench

import (
	"fmt"
	"sort"
	"strings"
)

const reportRule = "────────────────────────────────────────────────────────────────"

// Report renders a plain-text focus stability report for one analysis.
// Pure string building; callers own all output concerns.
func Report(a Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "FOCUS STABILITY AUDIT: %s\n%s\n", a.Machine, reportRule)
	fmt.Fprintf(&b, "Thermal Load:        %.0f W\n", a.ThermalLoadWatts)
	fmt.Fprintf(&b, "Temperature Rise:    %.2f °C\n", a.TemperatureRiseC)
	fmt.Fprintf(&b, "Base Warpage:        %.2f nm\n", a.BaseWarpageNM)
	fmt.Fprintf(&b, "Stiffness Ratio:     k = %.4f (cliff at %.4f)\n", a.StiffnessRatio, CliffRatio)
	fmt.Fprintf(&b, "Distance to Cliff:   %.4f\n", a.CliffDistance)
	fmt.Fprintf(&b, "Variance Factor:     %.1f×\n", a.VarianceFactor)
	fmt.Fprintf(&b, "Effective Warpage:   %.1f nm\n", a.EffectiveWarpageNM)
	fmt.Fprintf(&b, "Focus Budget:        %.1f nm\n", a.FocusBudgetNM)
	fmt.Fprintf(&b, "Focus Margin:        %.1f nm\n", a.FocusMarginNM)
	fmt.Fprintf(&b, "%s\nSTATUS: %s\n  %s\n", reportRule, a.Status, a.Message)

	return b.String()
}

// ComparisonReport renders the baseline and the stabilized what-if side by
// side, with the improvement summary.
func ComparisonReport(baseline Analysis, stabilized StabilizedAnalysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "COMPARISON: BASELINE vs STABILIZED\n%s\n", reportRule)
	fmt.Fprintf(&b, "%-28s %16s %16s\n", "Metric", "Baseline", "Stabilized")
	fmt.Fprintf(&b, "%-28s %16.4f %16.4f\n", "Stiffness Ratio (k)",
		baseline.StiffnessRatio, stabilized.StiffnessRatio)
	fmt.Fprintf(&b, "%-28s %15.1f× %15.1f×\n", "Variance Factor",
		baseline.VarianceFactor, stabilized.VarianceFactor)
	fmt.Fprintf(&b, "%-28s %13.1f nm %13.2f nm\n", "Effective Warpage",
		baseline.EffectiveWarpageNM, stabilized.EffectiveWarpageNM)
	fmt.Fprintf(&b, "%-28s %13.1f nm %13.1f nm\n", "Focus Margin",
		baseline.FocusMarginNM, stabilized.FocusMarginNM)
	fmt.Fprintf(&b, "%-28s %16s %16s\n", "Status", baseline.Status, stabilized.Status)
	fmt.Fprintf(&b, "%s\n", reportRule)
	fmt.Fprintf(&b, "Warpage reduced %.1f×, margin recovered %+.1f nm\n",
		stabilized.Improvement.WarpageReduction, stabilized.Improvement.MarginRecoveryNM)

	return b.String()
}

// StatsReport renders the summary statistics of one trial batch.
func StatsReport(label string, s TrialStatistics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "TRIAL STATISTICS: %s\n%s\n", label, reportRule)
	fmt.Fprintf(&b, "%-24s %14d\n", "Sample Size (N)", s.Count)
	fmt.Fprintf(&b, "%-24s %14.2f nm\n", "Mean", s.Mean)
	fmt.Fprintf(&b, "%-24s %14.2f nm\n", "Std Dev (n−1)", s.StdDev)
	fmt.Fprintf(&b, "%-24s %14.2f %%\n", "CV", s.CVPercent)
	fmt.Fprintf(&b, "%-24s %14.2f nm\n", "Min", s.Min)
	fmt.Fprintf(&b, "%-24s %14.2f nm\n", "Max", s.Max)
	fmt.Fprintf(&b, "%-24s %14.2f nm\n", "Range", s.Range)
	fmt.Fprintf(&b, "%-24s %14.2f nm\n", "Median", s.Median)
	fmt.Fprintf(&b, "%-24s %14.2f nm\n", "Q1", s.Q1)
	fmt.Fprintf(&b, "%-24s %14.2f nm\n", "Q3", s.Q3)

	return b.String()
}

// GroupedStatsReport renders one line per group, sorted by group key.
func GroupedStatsReport(groups map[string]TrialStatistics) string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "%-16s %6s %16s %12s\n", "Group", "N", "Mean [nm]", "CV [%]")
	fmt.Fprintln(&b, reportRule)
	for _, k := range keys {
		s := groups[k]
		fmt.Fprintf(&b, "%-16s %6d %16.2f %12.2f\n", k, s.Count, s.Mean, s.CVPercent)
	}
	return b.String()
}

// CampaignReport renders per-batch campaign results.
func CampaignReport(r CampaignResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "CAMPAIGN %s\n%s\n", r.RunID, reportRule)
	fmt.Fprintf(&b, "%-20s %8s %6s %6s %14s %10s %14s\n",
		"Batch", "k", "N", "Fail", "Mean [nm]", "CV [%]", "Regime")
	for _, batch := range r.Batches {
		fmt.Fprintf(&b, "%-20s %8.2f %6d %6d %14.2f %10.2f %14s\n",
			batch.Name, batch.NominalK, batch.Stats.Count, batch.Failures,
			batch.Stats.Mean, batch.Stats.CVPercent, batch.Regime)
	}
	return b.String()
}

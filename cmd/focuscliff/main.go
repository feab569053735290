// Command focuscliff audits the thermal focus stability of EUV machine
// profiles: single-machine verdicts, stabilized what-if comparisons,
// parameter sweeps, chart generation and trial-batch statistics.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	focusbench "github.com/nharris/focusbench"
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}),
	))

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("focuscliff failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "focuscliff",
		Short:         "Focus stability audit for High-NA EUV thermal loads",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAuditCmd(), newCompareCmd(), newSweepCmd(), newChartCmd(), newTrialsCmd())
	return root
}

// loadProfiles resolves the profile set for a command: explicit config
// files, a directory of configs, or the built-in defaults.
func loadProfiles(configs []string, configDir string) ([]focusbench.MachineProfile, error) {
	if configDir != "" {
		matches, err := filepath.Glob(filepath.Join(configDir, "*.json"))
		if err != nil {
			return nil, err
		}
		yamls, _ := filepath.Glob(filepath.Join(configDir, "*.yaml"))
		configs = append(matches, yamls...)
	}
	if len(configs) == 0 {
		return []focusbench.MachineProfile{focusbench.DefaultProfile("default-euv")}, nil
	}

	var profiles []focusbench.MachineProfile
	for _, path := range configs {
		profile, err := focusbench.LoadProfile(path)
		if err != nil {
			// One unreadable profile must not abort the rest of the batch.
			slog.Warn("skipping profile", "path", path, "err", err)
			continue
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func newAuditCmd() *cobra.Command {
	var (
		configs   []string
		configDir string
		power     float64
		compare   bool
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Analyze focus stability for one or more machine profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := loadProfiles(configs, configDir)
			if err != nil {
				return err
			}

			failures := 0
			for _, profile := range profiles {
				var analysis focusbench.Analysis
				var err error
				if cmd.Flags().Changed("power") {
					analysis, err = focusbench.AnalyzeAtLoad(profile, power)
				} else {
					analysis, err = focusbench.Analyze(profile)
				}
				if err != nil {
					slog.Error("analysis failed", "machine", profile.Name, "err", err)
					failures++
					continue
				}

				fmt.Println(focusbench.Report(analysis))
				if compare {
					stabilized := focusbench.SimulateStabilized(analysis)
					fmt.Println(focusbench.ComparisonReport(analysis, stabilized))
				}
			}

			if failures == len(profiles) && failures > 0 {
				return fmt.Errorf("all %d profile analyses failed", failures)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&configs, "config", nil, "profile config file(s)")
	cmd.Flags().StringVar(&configDir, "all", "", "audit every profile config in a directory")
	cmd.Flags().Float64Var(&power, "power", 0, "thermal load override in Watts")
	cmd.Flags().BoolVar(&compare, "compare", false, "include the stabilized what-if comparison")
	return cmd
}

func newCompareCmd() *cobra.Command {
	var (
		config string
		power  float64
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a machine against its actively stabilized configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := loadProfiles(sliceIf(config), "")
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				return fmt.Errorf("no usable profile")
			}
			profile := profiles[0]

			var baseline focusbench.Analysis
			if cmd.Flags().Changed("power") {
				baseline, err = focusbench.AnalyzeAtLoad(profile, power)
			} else {
				baseline, err = focusbench.Analyze(profile)
			}
			if err != nil {
				return err
			}

			stabilized := focusbench.SimulateStabilized(baseline)
			fmt.Println(focusbench.Report(baseline))
			fmt.Println(focusbench.ComparisonReport(baseline, stabilized))
			return nil
		},
	}

	cmd.Flags().StringVar(&config, "config", "", "profile config file")
	cmd.Flags().Float64Var(&power, "power", 0, "thermal load override in Watts")
	return cmd
}

func newSweepCmd() *cobra.Command {
	var (
		config            string
		minW, maxW, stepW float64
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep thermal load and print the verdict trajectory",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := loadProfiles(sliceIf(config), "")
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				return fmt.Errorf("no usable profile")
			}
			profile := profiles[0]

			points, err := focusbench.SweepLoad(profile, minW, maxW, stepW)
			if err != nil {
				return err
			}

			fmt.Printf("%-10s %10s %10s %14s %12s %s\n",
				"Load [W]", "k", "Var ×", "Warpage [nm]", "Margin [nm]", "Status")
			for _, p := range points {
				a := p.Analysis
				fmt.Printf("%-10.0f %10.4f %10.1f %14.1f %12.1f %s\n",
					p.LoadWatts, a.StiffnessRatio, a.VarianceFactor,
					a.EffectiveWarpageNM, a.FocusMarginNM, a.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&config, "config", "", "profile config file")
	cmd.Flags().Float64Var(&minW, "min", 100, "sweep start in Watts")
	cmd.Flags().Float64Var(&maxW, "max", 800, "sweep end in Watts")
	cmd.Flags().Float64Var(&stepW, "step", 50, "sweep step in Watts")
	return cmd
}

func newChartCmd() *cobra.Command {
	var (
		config     string
		out        string
		kind       string
		minW, maxW float64
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the cliff or focus-drift chart as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			switch kind {
			case "cliff":
				err = focusbench.RenderCliffChart(f)
			case "drift":
				profiles, perr := loadProfiles(sliceIf(config), "")
				if perr != nil {
					return perr
				}
				if len(profiles) == 0 {
					return fmt.Errorf("no usable profile")
				}
				err = focusbench.RenderFocusDriftChart(profiles[0], minW, maxW, f)
			default:
				return fmt.Errorf("unknown chart type %q (want cliff or drift)", kind)
			}
			if err != nil {
				return err
			}

			slog.Info("chart written", "type", kind, "path", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&config, "config", "", "profile config file (drift chart)")
	cmd.Flags().StringVar(&out, "out", "chart.png", "output PNG path")
	cmd.Flags().StringVar(&kind, "type", "cliff", "chart type: cliff or drift")
	cmd.Flags().Float64Var(&minW, "min", 100, "drift chart load start in Watts")
	cmd.Flags().Float64Var(&maxW, "max", 800, "drift chart load end in Watts")
	return cmd
}

func newTrialsCmd() *cobra.Command {
	var (
		input   string
		groupBy string
		stable  string
		cliff   string
	)

	cmd := &cobra.Command{
		Use:   "trials",
		Short: "Aggregate externally produced trial outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(input)
			if err != nil {
				return err
			}
			var outcomes []focusbench.TrialOutcome
			if err := json.Unmarshal(raw, &outcomes); err != nil {
				return fmt.Errorf("decode %s: %w", input, err)
			}

			key := focusbench.ByStiffnessSetting
			if groupBy == "material" {
				key = focusbench.ByMaterial
			}
			groups, err := focusbench.AggregateBy(outcomes, key)
			if err != nil {
				return err
			}
			fmt.Println(focusbench.GroupedStatsReport(groups))

			if stable != "" && cliff != "" {
				stableStats, okS := groups[stable]
				cliffStats, okC := groups[cliff]
				if !okS || !okC {
					return fmt.Errorf("groups %q and %q not both present", stable, cliff)
				}
				ratio, err := focusbench.VarianceRatio(cliffStats, stableStats)
				if err != nil {
					return err
				}
				fmt.Printf("variance ratio %s / %s: %.1f×\n", cliff, stable, ratio)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "JSON file of trial outcomes")
	cmd.Flags().StringVar(&groupBy, "group-by", "stiffness", "partition key: stiffness or material")
	cmd.Flags().StringVar(&stable, "stable", "", "stable group key for the variance ratio")
	cmd.Flags().StringVar(&cliff, "cliff", "", "cliff group key for the variance ratio")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func sliceIf(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

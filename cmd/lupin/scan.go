package lupin

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/adnxy/react-native-lupin/internal/cache"
	"github.com/adnxy/react-native-lupin/internal/config"
	"github.com/adnxy/react-native-lupin/internal/discovery"
	"github.com/adnxy/react-native-lupin/internal/engine"
	"github.com/adnxy/react-native-lupin/internal/git"
	"github.com/adnxy/react-native-lupin/internal/report"
	"github.com/adnxy/react-native-lupin/internal/rules"
	"github.com/adnxy/react-native-lupin/internal/tui"
	"github.com/adnxy/react-native-lupin/internal/types"
	"github.com/adnxy/react-native-lupin/internal/update"
)

var (
	flagPath           string
	flagProjectType    string
	flagMinBundleBytes int64
	flagEnable         string
	flagDisable        string
	flagOut            string
	flagTUI            bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan [bundle...]",
		Short: "Scan JavaScript bundles for security findings",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "project root for bundle discovery")
	cmd.Flags().StringVar(&flagProjectType, "project-type", "", "override project type (react-native|expo|next|web)")
	cmd.Flags().Int64Var(&flagMinBundleBytes, "min-bundle-bytes", 0, "skip discovered bundles smaller than this")
	cmd.Flags().StringVar(&flagEnable, "enable", "", "only run these detectors (comma-separated IDs)")
	cmd.Flags().StringVar(&flagDisable, "disable", "", "disable these detectors (comma-separated IDs)")
	cmd.Flags().StringVar(&flagOut, "out", "", "also write the JSON report to this file")
	cmd.Flags().BoolVar(&flagTUI, "tui", false, "browse findings interactively")
	_ = cmd.RegisterFlagCompletionFunc("project-type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"react-native", "expo", "next", "web"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func runScan(_ *cobra.Command, args []string) error {
	abs, _ := filepath.Abs(flagPath)

	// Config precedence: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	show, err := types.ParseSeverity(orDefault(pickString(flagShow, lcfg.Show, gcfg.Show), "medium"))
	if err != nil {
		return fmt.Errorf("--show: %w", err)
	}
	fail, err := types.ParseSeverity(orDefault(pickString(flagFailOn, lcfg.FailOn, gcfg.FailOn), "medium"))
	if err != nil {
		return fmt.Errorf("--fail-on: %w", err)
	}

	registry, err := buildRegistry(
		pickString(flagEnable, lcfg.Enable, gcfg.Enable),
		pickString(flagDisable, lcfg.Disable, gcfg.Disable),
	)
	if err != nil {
		return err
	}

	if !flagJSON && !flagSARIF {
		if !flagNoUpdateCheck {
			if latest, newer, _ := update.Check(version, false); newer && latest != "" {
				fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'lupin --self-update' to upgrade\n", latest)
			}
		}
		if flagSelfUpdate {
			if err := selfUpdate(); err == nil {
				fmt.Fprintln(os.Stderr, "updated to latest; re-run command")
				return nil
			}
		}
	}

	paths, err := resolveBundles(abs, args, lcfg, gcfg)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no bundles found under %s (pass bundle paths explicitly or check --project-type)", abs)
	}

	// Per-bundle read errors are warnings: the rest of the inputs still scan.
	var inputs []engine.Input
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", p, err)
			continue
		}
		inputs = append(inputs, engine.Input{Name: p, Data: data})
	}
	if len(inputs) == 0 {
		return fmt.Errorf("none of the %d bundles could be read", len(paths))
	}

	noCache := pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache)
	db, _ := cache.Load(abs)
	if !noCache {
		if rep, savedAt, err := cache.LoadResults(abs); err == nil && allUnchanged(db, inputs) && rep.Bundles == len(inputs) {
			if !flagJSON && !flagSARIF {
				fmt.Fprintf(os.Stderr, "bundles unchanged since %s; showing cached results (use --no-cache to rescan)\n", savedAt.Format(time.RFC3339))
			}
			return emit(rep, show, fail, 0)
		}
	}

	if !flagJSON && !flagSARIF {
		fmt.Fprintf(os.Stderr, "Scanning %d bundle(s) with %d detectors...\n", len(inputs), registry.Len())
	}

	start := time.Now()
	multi, errs := engine.ScanAll(inputs, engine.Options{
		Registry:      registry,
		MaxFindings:   pickInt(flagMaxFindings, lcfg.MaxFindings, gcfg.MaxFindings),
		ShowThreshold: show,
		FailThreshold: fail,
		Threads:       pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
	})
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, "warning:", e)
	}

	if repo, commit, branch := git.RepoMetadata(abs); repo != "" || commit != "" {
		multi.Repo = &report.RepoInfo{Repo: repo, Commit: commit, Branch: branch}
	}

	if !noCache {
		for _, in := range inputs {
			db.Entries[in.Name] = cache.Hash(in.Data)
		}
		if err := cache.Save(abs, db); err != nil {
			fmt.Fprintln(os.Stderr, "warning: cache not saved:", err)
		}
		if err := cache.SaveResults(abs, multi); err != nil {
			fmt.Fprintln(os.Stderr, "warning: results not cached:", err)
		}
	}

	return emit(multi, show, fail, time.Since(start))
}

// emit writes the report to the selected sinks and applies the fail threshold.
// The --out file is written after console output so a broken disk write never
// hides findings from the terminal.
func emit(multi report.MultiReport, show, fail types.Severity, dur time.Duration) error {
	switch {
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, multi.Findings, version); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case flagJSON:
		if err := report.WriteJSON(os.Stdout, multi); err != nil {
			return err
		}
	case flagTUI:
		if err := tui.Run(multi.Displayed(show)); err != nil {
			return err
		}
	default:
		report.PrintMulti(os.Stdout, multi, report.PrintOptions{NoColor: flagNoColor, Show: show, Duration: dur})
	}

	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		werr := report.WriteJSON(f, multi)
		if cerr := f.Close(); werr == nil {
			werr = cerr
		}
		if werr != nil {
			return fmt.Errorf("write report: %w", werr)
		}
	}

	if multi.Blocking(fail) {
		os.Exit(1)
	}
	return nil
}

// resolveBundles returns explicit args as-is, or discovers bundles under root.
func resolveBundles(root string, args []string, lcfg, gcfg config.FileConfig) ([]string, error) {
	if len(args) > 0 {
		out := make([]string, 0, len(args))
		for _, a := range args {
			p, _ := filepath.Abs(a)
			out = append(out, p)
		}
		return out, nil
	}

	pt := discovery.ProjectType(pickString(flagProjectType, lcfg.ProjectType, gcfg.ProjectType))
	if pt == "" {
		pt = discovery.DetectProjectType(root)
	}
	minBytes := pickInt64(flagMinBundleBytes, lcfg.MinBundleBytes, gcfg.MinBundleBytes)
	if minBytes == 0 {
		minBytes = discovery.DefaultMinBundleBytes
	}
	bundles, err := discovery.FindBundles(root, pt, minBytes)
	if err != nil {
		return nil, fmt.Errorf("bundle discovery: %w", err)
	}
	out := make([]string, 0, len(bundles))
	for _, b := range bundles {
		out = append(out, b.Path)
	}
	return out, nil
}

// buildRegistry applies enable/disable ID lists to the built-in registry.
// Enable wins: when set, disable is ignored.
func buildRegistry(enable, disable string) (*rules.Registry, error) {
	full := rules.NewRegistry()
	if enable == "" && disable == "" {
		return full, nil
	}
	if enable != "" {
		var kept []rules.Detector
		for _, id := range splitIDs(enable) {
			d, ok := full.Lookup(id)
			if !ok {
				return nil, fmt.Errorf("unknown detector %q (see 'lupin detectors')", id)
			}
			kept = append(kept, d)
		}
		return rules.NewRegistryFrom(kept...), nil
	}
	off := map[string]bool{}
	for _, id := range splitIDs(disable) {
		if _, ok := full.Lookup(id); !ok {
			return nil, fmt.Errorf("unknown detector %q (see 'lupin detectors')", id)
		}
		off[id] = true
	}
	var kept []rules.Detector
	for _, d := range full.Detectors() {
		if !off[d.ID()] {
			kept = append(kept, d)
		}
	}
	return rules.NewRegistryFrom(kept...), nil
}

func splitIDs(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func allUnchanged(db cache.DB, inputs []engine.Input) bool {
	for _, in := range inputs {
		if !db.Unchanged(in.Name, in.Data) {
			return false
		}
	}
	return true
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

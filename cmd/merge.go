package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seshasai-1827/File-generation-proj/pkg/alarm"
	"github.com/seshasai-1827/File-generation-proj/pkg/config"
	"github.com/seshasai-1827/File-generation-proj/pkg/fsutil"
	"github.com/seshasai-1827/File-generation-proj/pkg/reconcile"
	"github.com/seshasai-1827/File-generation-proj/pkg/report"
	"github.com/seshasai-1827/File-generation-proj/pkg/scf"
)

var (
	baseFlag        string
	skeletalFlag    string
	alarmsFlag      string
	outputFlag      string
	reportFlag      string
	planVersionFlag string
	noReportFlag    bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge a deployed plan onto a newer skeletal plan",
	Long: `Merge the currently deployed site configuration plan onto the skeletal
plan of a newer schema release. This command will:
1. Flatten both plans into class and object inventories
2. Overwrite the newer defaults with the deployed values where parameters match
3. Carry over deployed objects the newer schema no longer ships
4. Write the merged plan and a CSV comparison report`,
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	// CLI flags
	mergeCmd.Flags().StringVarP(&baseFlag, "base", "b", "", "Deployed plan file (required)")
	mergeCmd.Flags().StringVarP(&skeletalFlag, "skeletal", "s", "", "Skeletal plan file of the newer release (required)")
	mergeCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Merged plan file to write (required)")
	mergeCmd.Flags().StringVarP(&alarmsFlag, "alarms", "a", "", "Alarm table CSV replacing the alarm class")
	mergeCmd.Flags().StringVarP(&reportFlag, "report", "r", "", "Report file (default derives from --output)")
	mergeCmd.Flags().StringVar(&planVersionFlag, "plan-version", "", "Version attribute of the merged plan (default detects from the inputs)")
	mergeCmd.Flags().BoolVar(&noReportFlag, "no-report", false, "Do not write the CSV report")
}

func runMerge(cmd *cobra.Command, args []string) error {
	if baseFlag == "" || skeletalFlag == "" || outputFlag == "" {
		return fmt.Errorf("flags --base, --skeletal and --output are required")
	}
	if err := fsutil.ValidateFileName(filepath.Base(outputFlag)); err != nil {
		return err
	}

	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	ctx := scf.NewRunContext()
	flattener := scf.NewFlattener(ctx, cfg.Schema.RootClass, cfg.Schema.ExcludedLeaves)

	base, err := loadInventory(flattener, baseFlag)
	if err != nil {
		return fmt.Errorf("failed to load base plan: %w", err)
	}
	skeletal, err := loadInventory(flattener, skeletalFlag)
	if err != nil {
		return fmt.Errorf("failed to load skeletal plan: %w", err)
	}
	zap.S().Infow("flattened input plans",
		"base_objects", base.TotalObjects(),
		"skeletal_objects", skeletal.TotalObjects())

	var alarms *scf.Inventory
	if alarmsFlag != "" {
		alarms, err = alarm.ImportFile(alarmsFlag, cfg.Schema.AlarmClass)
		if err != nil {
			return fmt.Errorf("failed to import alarm table: %w", err)
		}
		zap.S().Infow("imported alarm table", "file", alarmsFlag, "objects", alarms.TotalObjects())
	}

	res := reconcile.NewReconciler(cfg).Reconcile(base, skeletal, alarms)
	newPairs, deprecated := reconcile.Diff(base, res.Final, cfg.Renames.Objects)

	opts := scf.BuildOptions{
		Version:   resolvePlanVersion(cfg, ctx),
		PlanName:  resolvePlanName(cfg, outputFlag),
		RootClass: cfg.Schema.RootClass,
	}
	doc := scf.BuildPlan(res.Final, ctx, opts)
	if err := scf.WritePlan(doc, outputFlag); err != nil {
		return fmt.Errorf("failed to write merged plan: %w", err)
	}
	zap.S().Infow("wrote merged plan",
		"file", outputFlag,
		"objects", res.Final.TotalObjects(),
		"version", opts.Version)

	summary := report.BuildSummary(base, skeletal, res, newPairs, deprecated)
	if noReportFlag {
		zap.S().Infow("skipping report due to --no-report flag")
	} else {
		reportPath := reportFlag
		if reportPath == "" {
			reportPath = defaultReportPath(outputFlag)
		}
		if err := report.WriteFile(reportPath, summary, &cfg.Report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		zap.S().Infow("wrote report", "file", reportPath)
	}

	report.PrintSummary(os.Stdout, summary)
	return nil
}

// loadInventory parses one plan file and flattens it into an inventory.
func loadInventory(f *scf.Flattener, path string) (*scf.Inventory, error) {
	doc, err := scf.Load(path)
	if err != nil {
		return nil, err
	}
	return f.Flatten(doc), nil
}

// resolvePlanVersion picks the version attribute of the merged plan: the
// --plan-version flag wins, then the configured version, then the version
// detected in the input plans.
func resolvePlanVersion(cfg *config.Config, ctx *scf.RunContext) string {
	if planVersionFlag != "" {
		return planVersionFlag
	}
	if cfg.Output.Version != "" {
		return cfg.Output.Version
	}
	if v := ctx.Version(); v != "" {
		return v
	}
	return "UNKNOWN"
}

// resolvePlanName picks the plan name embedded in the output document.
func resolvePlanName(cfg *config.Config, output string) string {
	if cfg.Output.PlanName != "" {
		return cfg.Output.PlanName
	}
	return strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))
}

func defaultReportPath(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + "_report.csv"
}

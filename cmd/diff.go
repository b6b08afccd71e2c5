package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seshasai-1827/File-generation-proj/pkg/reconcile"
	"github.com/seshasai-1827/File-generation-proj/pkg/report"
	"github.com/seshasai-1827/File-generation-proj/pkg/scf"
)

var (
	diffBaseFlag     string
	diffSkeletalFlag string
	diffReportFlag   string
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare a deployed plan against a newer skeletal plan",
	Long: `Compare the currently deployed site configuration plan against the
skeletal plan of a newer schema release without writing a merged plan.
This command will:
1. Flatten both plans into class and object inventories
2. Classify every object as new, common, carried or deprecated
3. Print the classification and optionally write it as a CSV report`,
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)

	// CLI flags
	diffCmd.Flags().StringVarP(&diffBaseFlag, "base", "b", "", "Deployed plan file (required)")
	diffCmd.Flags().StringVarP(&diffSkeletalFlag, "skeletal", "s", "", "Skeletal plan file of the newer release (required)")
	diffCmd.Flags().StringVarP(&diffReportFlag, "report", "r", "", "Report file to write")
}

func runDiff(cmd *cobra.Command, args []string) error {
	if diffBaseFlag == "" || diffSkeletalFlag == "" {
		return fmt.Errorf("flags --base and --skeletal are required")
	}

	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	ctx := scf.NewRunContext()
	flattener := scf.NewFlattener(ctx, cfg.Schema.RootClass, cfg.Schema.ExcludedLeaves)

	base, err := loadInventory(flattener, diffBaseFlag)
	if err != nil {
		return fmt.Errorf("failed to load base plan: %w", err)
	}
	skeletal, err := loadInventory(flattener, diffSkeletalFlag)
	if err != nil {
		return fmt.Errorf("failed to load skeletal plan: %w", err)
	}

	res := reconcile.NewReconciler(cfg).Reconcile(base, skeletal, nil)
	newPairs, deprecated := reconcile.Diff(base, res.Final, cfg.Renames.Objects)

	summary := report.BuildSummary(base, skeletal, res, newPairs, deprecated)
	report.PrintRows(os.Stdout, summary, &cfg.Report)
	report.PrintSummary(os.Stdout, summary)

	if diffReportFlag != "" {
		if err := report.WriteFile(diffReportFlag, summary, &cfg.Report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		zap.S().Infow("wrote report", "file", diffReportFlag)
	}
	return nil
}

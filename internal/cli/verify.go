package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/libreseed/bitarith/pkg/vectors"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the primitives against known vectors",
	Long: `Run every case of a vector file through multiply, both dividers and sqrt.

Without --vectors the built-in known vectors are used. With --exhaustive the
primitives are also compared with native arithmetic across the operand domain:
every square root, every product that fits in 16 bits and a strided grid of
quotients.

Exits non-zero when any check fails.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().String("vectors", "", "YAML vector file (default: built-in vectors)")
	verifyCmd.Flags().Bool("exhaustive", false, "also sweep the operand domain")
	verifyCmd.Flags().Int("workers", 0, "concurrent sweep workers")

	_ = viper.BindPFlag("verify.vectors_file", verifyCmd.Flags().Lookup("vectors"))
	_ = viper.BindPFlag("verify.exhaustive", verifyCmd.Flags().Lookup("exhaustive"))
	_ = viper.BindPFlag("verify.workers", verifyCmd.Flags().Lookup("workers"))
}

func runVerify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	suite, err := loadSuite(cfg.Verify.VectorsFile)
	if err != nil {
		return err
	}

	logger.Info("Running vectors", zap.String("suite", suite.Name))
	report, err := suite.Run(tracer)
	if err != nil {
		return err
	}
	printReport(out, report)

	failed := !report.OK()

	if cfg.Verify.Exhaustive {
		tally, err := vectors.Sweep(cmd.Context(), vectors.SweepOptions{
			Workers:        cfg.Verify.Workers,
			DivisorStride:  cfg.Verify.DivisorStride,
			DividendStride: cfg.Verify.DividendStride,
			Logger:         logger,
		})
		if tally != nil {
			printTally(out, tally)
		}
		if err != nil {
			fmt.Fprintf(out, "sweep: %v\n", err)
			failed = true
		}
	}

	if failed {
		return errVerificationFailed
	}
	fmt.Fprintln(out, "all checks passed")
	return nil
}

func loadSuite(path string) (*vectors.Suite, error) {
	if path == "" {
		return vectors.DefaultSuite()
	}
	suite, err := vectors.LoadSuiteFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load vectors: %w", err)
	}
	return suite, nil
}

func printReport(w io.Writer, report *vectors.Report) {
	fmt.Fprintf(w, "vectors %s: %d/%d passed\n", report.Suite, report.Passed, report.Total())
	for _, f := range report.Failures {
		fmt.Fprintf(w, "  FAIL %s\n", f)
	}
}

func printTally(w io.Writer, tally *vectors.Tally) {
	fmt.Fprintf(w, "sweep: %d checks\n", tally.Total())
	for _, op := range tally.Ops() {
		fmt.Fprintf(w, "  %-18s %d\n", op, tally.Checked(op))
	}
}

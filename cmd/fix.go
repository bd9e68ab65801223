package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phpmod-labs/phpmod/internal/fixer"
	tt "github.com/phpmod-labs/phpmod/internal/types"
	"github.com/phpmod-labs/phpmod/refactor"
)

var (
	dryRun              bool
	confidenceThreshold float64
)

var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Automatically apply suggested rewrites",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := refactor.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize rewrite engine", zap.Error(err))
		}

		runAutoFix(ctx, logger, engine, args, dryRun, confidenceThreshold)
	},
}

func init() {
	fixCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run in dry-run mode (show fixes without applying them)")
	fixCmd.Flags().Float64Var(&confidenceThreshold, "confidence", 0.75, "Confidence threshold for auto-fixing (0.0 to 1.0)")
}

func runAutoFix(ctx context.Context, logger *zap.Logger, engine refactor.RewriteEngine, paths []string, dryRun bool, confidenceThreshold float64) {
	fix := fixer.New(dryRun, confidenceThreshold)

	for _, path := range paths {
		issues, err := refactor.ProcessPath(ctx, logger, engine, path, refactor.ProcessFile)
		if err != nil {
			logger.Error("error processing path", zap.String("path", path), zap.Error(err))
			continue
		}

		if err := fixByFile(fix, issues); err != nil {
			logger.Error("error fixing issues", zap.String("path", path), zap.Error(err))
		}
	}
}

// fixByFile groups issues by their file so each file is rewritten once.
func fixByFile(fix *fixer.Fixer, issues []tt.Issue) error {
	byFile := make(map[string][]tt.Issue)
	for _, issue := range issues {
		byFile[issue.Filename] = append(byFile[issue.Filename], issue)
	}

	var errs []error
	for filename, fileIssues := range byFile {
		if err := fix.Fix(filename, fileIssues); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/lenahart/ledgerlens/internal/cli"
	"github.com/lenahart/ledgerlens/internal/model"
	"github.com/lenahart/ledgerlens/internal/ofx"
)

func init() {
	importCmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import financial transactions from OFX or QFX (Quicken) files exported
from your bank.

Examples:
  # Import single file
  lens import -u alice ~/Downloads/chase_jan_2024.qfx

  # Import all QFX files in a directory
  lens import -u alice ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	importCmd.Flags().BoolP("dry-run", "d", false, "preview import without saving")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cfg, store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	userID, err := requireUserID(cfg)
	if err != nil {
		return err
	}

	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	parser := ofx.NewParser()
	seen := make(map[string]bool)
	var allTransactions []model.Transaction

	bar := progressbar.NewOptions(len(allFiles),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing files..."),
	)

	for _, filePath := range allFiles {
		f, err := os.Open(filePath)
		if err != nil {
			slog.Error("Failed to open file", "file", filePath, "error", err)
			_ = bar.Add(1)
			continue
		}

		txns, err := parser.ParseFile(f, userID)
		_ = f.Close()
		if err != nil {
			slog.Error("Failed to parse file", "file", filepath.Base(filePath), "error", err)
			_ = bar.Add(1)
			continue
		}

		for _, txn := range txns {
			if seen[txn.ID] {
				continue
			}
			seen[txn.ID] = true
			allTransactions = append(allTransactions, txn)
		}

		_ = bar.Add(1)
	}
	fmt.Fprintln(os.Stderr)

	if len(allTransactions) == 0 {
		return fmt.Errorf("no transactions found in %d file(s)", len(allFiles))
	}

	if dryRun {
		fmt.Println(cli.Warning("Dry run: %d transactions from %d file(s) not saved",
			len(allTransactions), len(allFiles)))
		return nil
	}

	if err := store.SaveTransactions(ctx, allTransactions); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}

	fmt.Println(cli.Success("Imported %d transactions from %d file(s)",
		len(allTransactions), len(allFiles)))

	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lenahart/ledgerlens/internal/cli"
)

func init() {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export a user's transactions as CSV",
		Long: `Export all stored transactions for a user as a CSV file with the
canonical column order, followed by any extra document fields.`,
		RunE: runExport,
	}

	exportCmd.Flags().StringP("output", "o", "", "write CSV to file instead of stdout")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	userID, err := requireUserID(cfg)
	if err != nil {
		return err
	}

	eng, err := buildEngine(ctx, cfg, store)
	if err != nil {
		return err
	}

	table, err := eng.Export(ctx, userID)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := table.WriteFile(output); err != nil {
			return fmt.Errorf("failed to write export file: %w", err)
		}
		fmt.Println(cli.Success("Exported %d rows to %s", len(table.Rows), output))
		return nil
	}

	csv, err := table.CSV()
	if err != nil {
		return fmt.Errorf("failed to render CSV: %w", err)
	}
	fmt.Print(csv)

	return nil
}

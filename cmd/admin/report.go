package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
	"github.com/MrJamesThe3rd/faturamento/internal/dashboard"
	"github.com/MrJamesThe3rd/faturamento/internal/document"
	"github.com/MrJamesThe3rd/faturamento/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the dashboard spreadsheet",
	Example: `  faturamento-admin report --out faturamento.xlsx
  faturamento-admin report --representative-id v1`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		out, _ := cmd.Flags().GetString("out")
		repID, _ := cmd.Flags().GetString("representative-id")

		records, db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		svc := dashboard.NewService(records)
		scope := billing.Scope{RepresentativeID: repID}

		monthly, err := svc.Monthly(ctx, scope)
		if err != nil {
			return err
		}

		clients, err := svc.MonthDetails(ctx, scope, dashboard.AllMonths)
		if err != nil {
			return err
		}

		reps, err := svc.Representatives(ctx, scope)
		if err != nil {
			return err
		}

		f, err := report.Workbook(monthly, clients, reps)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := f.SaveAs(out); err != nil {
			return fmt.Errorf("saving %s: %w", out, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)

		return nil
	},
}

var invoiceCmd = &cobra.Command{
	Use:   "invoice <id>",
	Short: "Render one invoice as JSON, HTML or PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		format, _ := cmd.Flags().GetString("format")
		dir, _ := cmd.Flags().GetString("dir")

		switch format {
		case "json", "html", "pdf":
		default:
			return fmt.Errorf("unknown format %q", format)
		}

		records, db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		inv, err := billing.NewService(records).GetInvoice(ctx, args[0])
		if err != nil {
			return fmt.Errorf("loading invoice %s: %w", args[0], err)
		}

		base := strings.TrimSuffix(document.ExportFilename(inv.Number), ".json")
		path := filepath.Join(dir, base+"."+format)

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()

		switch format {
		case "json":
			var body []byte

			body, err = document.ExportJSON(*inv, time.Now())
			if err == nil {
				_, err = f.Write(body)
			}
		case "html":
			err = document.PrintHTML(f, *inv)
		case "pdf":
			err = document.PrintPDF(f, *inv)
		}

		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

		return nil
	},
}

func init() {
	reportCmd.Flags().String("out", "faturamento.xlsx", "Output file")
	reportCmd.Flags().String("representative-id", "", "Limit the report to one representative")
	rootCmd.AddCommand(reportCmd)

	invoiceCmd.Flags().String("format", "pdf", "Output format: json, html or pdf")
	invoiceCmd.Flags().String("dir", ".", "Output directory")
	rootCmd.AddCommand(invoiceCmd)
}

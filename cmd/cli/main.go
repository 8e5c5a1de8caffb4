package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/coopfletes/backoffice/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "backoffice-cli",
		Short: "Back office CLI tool",
		Long:  `A command line interface for the freight cooperative back office API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the back office API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Migration commands
	var databaseURL, migrationsPath string
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}
	migrateCmd.PersistentFlags().StringVar(&databaseURL, "database-url",
		os.Getenv("DATABASE_URL"), "PostgreSQL connection URL")
	migrateCmd.PersistentFlags().StringVar(&migrationsPath, "path", "internal/infrastructure/postgres/migrations", "Migrations directory")

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Run: func(cmd *cobra.Command, args []string) {
			if err := postgres.RunMigrations(databaseURL, migrationsPath); err != nil {
				fmt.Printf("Migration failed: %v\n", err)
				os.Exit(1)
			}
		},
	})
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		Run: func(cmd *cobra.Command, args []string) {
			if err := postgres.RunMigrationsDown(databaseURL, migrationsPath); err != nil {
				fmt.Printf("Rollback failed: %v\n", err)
				os.Exit(1)
			}
		},
	})
	rootCmd.AddCommand(migrateCmd)

	// Company commands
	companyCmd := &cobra.Command{
		Use:   "company",
		Short: "Company configuration",
	}
	companyCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the company configuration",
		Run: func(cmd *cobra.Command, args []string) {
			showCompany()
		},
	})
	rootCmd.AddCommand(companyCmd)

	// Ledger commands
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger projections",
	}
	ledgerCmd.AddCommand(&cobra.Command{
		Use:   "diario",
		Short: "Print the Libro Diario",
		Run: func(cmd *cobra.Command, args []string) {
			printDiario()
		},
	})
	auxiliarCmd := &cobra.Command{
		Use:   "auxiliar <account-key>",
		Short: "Print the Libro Auxiliar for one account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printAuxiliar(args[0])
		},
	}
	ledgerCmd.AddCommand(auxiliarCmd)

	var exportOut string
	exportCmd := &cobra.Command{
		Use:   "export (diario|mayor)",
		Short: "Download a ledger as an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exportLedger(args[0], exportOut)
		},
	}
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (defaults to libro_<ledger>.xlsx)")
	ledgerCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(ledgerCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "health",
		Short: "Check service liveness and readiness",
		Run: func(cmd *cobra.Command, args []string) {
			checkHealth()
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func get(path string, out any) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}
	return json.Unmarshal(body, out)
}

func showCompany() {
	var company map[string]any
	if err := get("/api/v1/company/", &company); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-12s %v\n", "Name:", company["name"])
	fmt.Printf("%-12s %v\n", "RIF:", company["rif"])
	fmt.Printf("%-12s %v\n", "Cost/kg:", company["cost_per_kg"])
	fmt.Printf("%-12s %v\n", "BCV rate:", company["bcv_rate"])
}

type diarioLine struct {
	AccountName string `json:"account_name"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
}

type diarioEntry struct {
	Date        time.Time    `json:"date"`
	Description string       `json:"description"`
	Lines       []diarioLine `json:"lines"`
}

func printDiario() {
	var entries []diarioEntry
	if err := get("/api/v1/ledger/diario", &entries); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	for _, e := range entries {
		fmt.Printf("%s  %s\n", e.Date.Format("02/01/2006"), e.Description)
		for _, l := range e.Lines {
			fmt.Printf("    %-40s %12s %12s\n", truncate(l.AccountName, 40), l.Debit, l.Credit)
		}
	}
}

type movement struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Debit       string    `json:"debit"`
	Credit      string    `json:"credit"`
	Balance     string    `json:"balance"`
}

type accountLedger struct {
	AccountName string     `json:"account_name"`
	Movements   []movement `json:"movements"`
	TotalDebit  string     `json:"total_debit"`
	TotalCredit string     `json:"total_credit"`
	Balance     string     `json:"final_balance"`
}

func printAuxiliar(account string) {
	var ledger accountLedger
	if err := get("/api/v1/ledger/auxiliar?account="+url.QueryEscape(account), &ledger); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(ledger.AccountName)
	for _, m := range ledger.Movements {
		fmt.Printf("%s  %-40s %12s %12s %12s\n",
			m.Date.Format("02/01/2006"), truncate(m.Description, 40), m.Debit, m.Credit, m.Balance)
	}
	fmt.Printf("%-52s %12s %12s %12s\n", "Totales", ledger.TotalDebit, ledger.TotalCredit, ledger.Balance)
}

func exportLedger(name, out string) {
	if name != "diario" && name != "mayor" {
		fmt.Printf("Error: unknown ledger %q (expected diario or mayor)\n", name)
		os.Exit(1)
	}
	if out == "" {
		out = "libro_" + name + ".xlsx"
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/ledger/" + name + "/export")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("Error: status %d: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	f, err := os.Create(out)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	n, err := io.Copy(f, resp.Body)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", out, n)
}

func checkHealth() {
	for _, probe := range []string{"/health", "/ready"} {
		var status map[string]string
		if err := get(probe, &status); err != nil {
			fmt.Printf("%-8s FAIL: %v\n", probe, err)
			os.Exit(1)
		}
		fmt.Printf("%-8s %s\n", probe, status["status"])
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

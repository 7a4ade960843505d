package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hstraders/interestledger/internal/adapter/http/dto"
	"github.com/hstraders/interestledger/internal/domain"
	"github.com/hstraders/interestledger/internal/interest"
	"github.com/hstraders/interestledger/internal/report"
)

// ledgerFile is the on-disk shape read by calc and export.
type ledgerFile struct {
	Party    string              `json:"party"    yaml:"party"`
	Firm     string              `json:"firm"     yaml:"firm"`
	Vouchers []interest.RawEntry `json:"vouchers" yaml:"vouchers"`
}

type calcOptions struct {
	file  string
	party string
	firm  string
	asOf  string
	grace int
	rate  string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "interest-cli",
		Short:         "Interest ledger CLI tool",
		Long:          `Calculate overdue interest on a party ledger, locally or against the API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(calcCmd(), exportCmd(), remoteCmd())
	return cmd
}

func addCalcFlags(cmd *cobra.Command, opts *calcOptions) {
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Ledger file (.json, .yaml or .yml)")
	cmd.Flags().StringVar(&opts.party, "party", "", "Party name, overrides the file")
	cmd.Flags().StringVar(&opts.firm, "firm", "", "Firm name printed on the statement")
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "Calculation date (YYYY-MM-DD), defaults to today")
	cmd.Flags().IntVar(&opts.grace, "grace", domain.DefaultGracePeriodDays, "Grace period in days")
	cmd.Flags().StringVar(&opts.rate, "rate", domain.DefaultInterestRate, "Annual interest rate in percent")
	_ = cmd.MarkFlagRequired("file")
}

func calcCmd() *cobra.Command {
	var (
		opts   calcOptions
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate interest for a ledger file",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, ledger, err := calculate(opts)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), dto.CalculationFromResult(res))
			}

			st := report.BuildStatement(res, report.Options{FirmName: firmName(opts, ledger)})
			return report.WriteText(st, cmd.OutOrStdout())
		},
	}

	addCalcFlags(cmd, &opts)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full result as JSON")
	return cmd
}

func exportCmd() *cobra.Command {
	var (
		opts   calcOptions
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the interest statement of a ledger file",
		RunE: func(cmd *cobra.Command, args []string) error {
			write, ext, err := statementWriter(format)
			if err != nil {
				return err
			}

			res, ledger, err := calculate(opts)
			if err != nil {
				return err
			}
			st := report.BuildStatement(res, report.Options{FirmName: firmName(opts, ledger)})

			if out == "" {
				out = report.FileName(res.PartyName, res.AsOfDate, ext)
			}

			var buf bytes.Buffer
			if err := write(st, &buf); err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Statement written to %s\n", out)
			return nil
		},
	}

	addCalcFlags(cmd, &opts)
	cmd.Flags().StringVar(&format, "format", "xlsx", "Output format: xlsx, pdf or text")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path, derived from party and date when empty")
	return cmd
}

func remoteCmd() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Operations against a running API",
	}
	cmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the interest API")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	var (
		asOf  string
		grace int
		rate  string
	)

	calculateCmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run a calculation over the stored ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req dto.CalculateRequest

			if asOf != "" {
				d, err := domain.ParseDate(asOf)
				if err != nil {
					return domain.NewValidationError("as_of_date", err.Error())
				}
				req.AsOfDate = d
			}
			if cmd.Flags().Changed("grace") {
				req.GracePeriod = &grace
			}
			if rate != "" {
				r, err := decimal.NewFromString(rate)
				if err != nil {
					return domain.NewValidationError("interest_rate", "must be a number")
				}
				req.InterestRate = &r
			}

			client := &http.Client{Timeout: timeout}
			return remoteCalculate(cmd.OutOrStdout(), client, baseURL, req)
		},
	}
	calculateCmd.Flags().StringVar(&asOf, "as-of", "", "Calculation date (YYYY-MM-DD), defaults to today on the server")
	calculateCmd.Flags().IntVar(&grace, "grace", 0, "Grace period in days, defaults to the saved settings")
	calculateCmd.Flags().StringVar(&rate, "rate", "", "Annual interest rate in percent, defaults to the saved settings")

	cmd.AddCommand(calculateCmd)
	return cmd
}

func remoteCalculate(w io.Writer, client *http.Client, baseURL string, req dto.CalculateRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	resp, err := client.Post(strings.TrimRight(baseURL, "/")+"/api/v1/interest/calculate", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(payload, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("calculation failed (status %d): %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("calculation failed (status %d): %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var result any
	if err := json.Unmarshal(payload, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return printJSON(w, result)
}

func calculate(opts calcOptions) (*interest.Result, ledgerFile, error) {
	ledger, err := loadLedger(opts.file)
	if err != nil {
		return nil, ledgerFile{}, err
	}

	params, err := resolveParams(opts, ledger)
	if err != nil {
		return nil, ledgerFile{}, err
	}

	if len(ledger.Vouchers) == 0 {
		return nil, ledgerFile{}, domain.ErrNoVouchers
	}

	res, err := interest.CalculateRaw(ledger.Vouchers, params)
	if err != nil {
		return nil, ledgerFile{}, err
	}
	return res, ledger, nil
}

func resolveParams(opts calcOptions, ledger ledgerFile) (interest.Params, error) {
	party := strings.TrimSpace(opts.party)
	if party == "" {
		party = strings.TrimSpace(ledger.Party)
	}
	if err := domain.ValidatePartyName(party); err != nil {
		return interest.Params{}, err
	}

	asOf := domain.Today()
	if opts.asOf != "" {
		d, err := domain.ParseDate(opts.asOf)
		if err != nil {
			return interest.Params{}, domain.NewValidationError("as_of_date", err.Error())
		}
		asOf = d
	}

	rate, err := decimal.NewFromString(strings.TrimSpace(opts.rate))
	if err != nil {
		return interest.Params{}, domain.NewValidationError("interest_rate", "must be a number")
	}
	if err := domain.ValidateInterestRate(rate); err != nil {
		return interest.Params{}, err
	}
	if err := domain.ValidateGracePeriod(opts.grace); err != nil {
		return interest.Params{}, err
	}

	return interest.Params{
		PartyName:    party,
		AsOfDate:     asOf,
		GracePeriod:  opts.grace,
		InterestRate: rate,
	}, nil
}

func loadLedger(path string) (ledgerFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ledgerFile{}, fmt.Errorf("read ledger: %w", err)
	}

	var ledger ledgerFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &ledger)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &ledger)
	default:
		return ledgerFile{}, fmt.Errorf("unsupported ledger format %q", filepath.Ext(path))
	}
	if err != nil {
		return ledgerFile{}, fmt.Errorf("parse ledger %s: %w", path, err)
	}

	return ledger, nil
}

func statementWriter(format string) (func(report.Statement, io.Writer) error, string, error) {
	switch strings.ToLower(format) {
	case "xlsx":
		return report.WriteXLSX, "xlsx", nil
	case "pdf":
		return report.WritePDF, "pdf", nil
	case "text", "txt":
		return report.WriteText, "txt", nil
	default:
		return nil, "", fmt.Errorf("unsupported format %q", format)
	}
}

func firmName(opts calcOptions, ledger ledgerFile) string {
	if opts.firm != "" {
		return opts.firm
	}
	return ledger.Firm
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

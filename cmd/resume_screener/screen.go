package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/jonathan/resume-screener/internal/batch"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/fetch"
	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/requirements"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/screener"
	"github.com/jonathan/resume-screener/internal/sheets"
)

var screenCommand = &cobra.Command{
	Use:   "screen",
	Short: "Screen a batch of candidates against a job description",
	Long: `Parses the job description into a requirement set, then screens every
candidate row from the CSV: resume fetch -> text extraction -> LLM scoring ->
ranked commit. Failures are classified per row and never abort the batch.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runScreenCmd,
}

var (
	screenConfigPath  string
	screenJD          string
	screenCandidates  string
	screenCredentials string
	screenAPIKey      string
	screenConcurrency int
	screenRate        float64
	screenVerbose     bool
	screenDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	screenCommand.Flags().StringVar(&screenConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	screenCommand.Flags().StringVarP(&screenJD, "jd", "j", "", "Path to job description text file")
	screenCommand.Flags().StringVarP(&screenCandidates, "candidates", "f", "", "Path to candidate CSV file")
	screenCommand.Flags().StringVar(&screenCredentials, "credentials", "", "Path to Drive service account credentials JSON")
	screenCommand.Flags().IntVar(&screenConcurrency, "concurrency", 0, "Batch worker pool size")
	screenCommand.Flags().Float64Var(&screenRate, "oracle-rate", 0, "Oracle calls per second across the batch")
	screenCommand.Flags().BoolVarP(&screenVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	screenCommand.Flags().StringVar(&screenAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for run archiving
	screenCommand.Flags().StringVar(&screenDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(screenCommand)
}

func runScreenCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if screenConfigPath != "" {
		loadedCfg, err := config.LoadConfig(screenConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("jd") {
		cfg.JobDescription = screenJD
	}
	if cmd.Flags().Changed("candidates") {
		cfg.Candidates = screenCandidates
	}
	if cmd.Flags().Changed("credentials") {
		cfg.Credentials = screenCredentials
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = screenAPIKey
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = screenConcurrency
	}
	if cmd.Flags().Changed("oracle-rate") {
		cfg.OracleRate = screenRate
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = screenVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = screenDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Concurrency: batch.DefaultConcurrency,
	})

	// Step 4: Validate required fields
	if cfg.JobDescription == "" {
		return fmt.Errorf("--jd is required (via flag or config)")
	}
	if cfg.Candidates == "" {
		return fmt.Errorf("--candidates is required (via flag or config)")
	}
	if cfg.Credentials == "" {
		cfg.Credentials = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	}
	if cfg.Credentials == "" {
		return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable or --credentials flag is required")
	}

	// Step 5: API Key handling
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	logger, err := observability.NewLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Step 6: Read inputs
	jdText, err := os.ReadFile(cfg.JobDescription)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	csvFile, err := os.Open(cfg.Candidates)
	if err != nil {
		return fmt.Errorf("failed to open candidates file: %w", err)
	}
	rows, err := sheets.LoadCSV(csvFile)
	_ = csvFile.Close()
	if err != nil {
		return fmt.Errorf("failed to load candidates: %w", err)
	}
	logger.Info("loaded candidate rows", zap.Int("rows", len(rows)))

	// Step 7: Wire the screening stack
	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	driveFetcher, err := fetch.NewDriveFetcher(ctx, cfg.Credentials)
	if err != nil {
		return fmt.Errorf("failed to create Drive fetcher: %w", err)
	}

	oracle := scoring.NewGeminiOracle(client)
	pipe := pipeline.New(
		fetch.NewCachedFetcher(driveFetcher, fetch.DefaultCacheTTL),
		extraction.NewTextExtractor(),
		oracle,
		pipeline.WithRateLimiter(rate.NewLimiter(rate.Limit(cfg.OracleRate), 1)),
		pipeline.WithTimeouts(cfg.FetchTimeoutDuration(), cfg.ScoringTimeoutDuration()),
	)
	svc := screener.New(requirements.NewExtractor(oracle), pipe, logger, cfg.Concurrency)

	// Step 8: Parse requirements and run the batch
	reqs, err := svc.SetRequirements(ctx, string(jdText))
	if err != nil {
		return fmt.Errorf("failed to set requirements: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintRequirements(reqs)
	}

	result, err := svc.RunBatch(ctx, rows)
	if err != nil {
		return fmt.Errorf("batch run failed: %w", err)
	}

	ranked := svc.ListCandidates()
	printer.PrintBatchResult(result)
	printer.PrintRankedCandidates(ranked)
	if cfg.Verbose {
		printer.PrintStats(svc.Stats())
	}

	// Step 9: Archive the run when a database is configured
	if cfg.DatabaseURL != "" {
		archive, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer archive.Close()

		if err := archive.SaveBatchRun(ctx, result, string(jdText), ranked); err != nil {
			return fmt.Errorf("failed to archive batch run: %w", err)
		}
		logger.Info("batch run archived", zap.String("run_id", result.RunID.String()))
	}

	return nil
}

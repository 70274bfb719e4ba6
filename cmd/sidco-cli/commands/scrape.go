package commands

import (
	"context"
	"log/slog"
	"os"
	"sidco-backend/lib/configutil"
	"sidco-backend/lib/restyutil"
	"sidco-backend/lib/scrapers/sidco/core"
	"sidco-backend/lib/serviceutil"
	"sidco-backend/lib/telemetry"
	"sidco-backend/services/sidco/scraper"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type Config struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var scrapeOut *string
var scrapeVerbose *bool

func init() {
	scrapeOut = scrapeCmd.Flags().String("out", "incendios.csv", "The CSV file to write scrape results to.")
	scrapeVerbose = scrapeCmd.Flags().Bool("verbose", false, "Log debug output and dump http transcripts to .dev/resty.")
	rootCmd.AddCommand(scrapeCmd)
}

// readCredentials prefers config.json5 and falls back on the
// SIDCO_USER/SIDCO_PASS environment variables, .env included.
func readCredentials() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err == nil && cfg.Username != "" && cfg.Password != "" {
		return cfg
	}

	godotenv.Load()
	return Config{
		Username: os.Getenv("SIDCO_USER"),
		Password: os.Getenv("SIDCO_PASS"),
	}
}

func createClient(username, password string) *core.Client {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	client, err := core.NewClient(ctx, core.ClientOptions{})
	if err != nil {
		serviceutil.Fatal("failed to initialize sidco client", err)
	}
	if *scrapeVerbose {
		core.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/scraper"))
	}

	err = client.LoginUsernamePassword(ctx, username, password)
	if err != nil {
		serviceutil.Fatal("failed to login to sidco", err)
	}
	return client
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--out <path/to/output.csv>] [--verbose]",
	Short: "Logs into SIDCO, scrapes the active fires and writes a CSV.",
	Run: func(cmd *cobra.Command, args []string) {
		if *scrapeVerbose {
			telemetry.InitSlog(true)
		}
		telemetry.InstrumentPerfStats(cmd.Context())

		cfg := readCredentials()
		slog.Info("scraping using user", "username", cfg.Username)
		client := createClient(cfg.Username, cfg.Password)

		t1 := time.Now()
		records, err := scraper.Scrape(cmd.Context(), client)
		if err != nil {
			serviceutil.Fatal("failed to scrape", err)
		}
		t2 := time.Now()

		out, err := os.Create(*scrapeOut)
		if err != nil {
			serviceutil.Fatal("failed to create output file", err)
		}
		defer out.Close()

		err = scraper.WriteCSV(out, records)
		if err != nil {
			serviceutil.Fatal("failed to write csv", err)
		}

		renderPreview(records)
		slog.Info("scraping time", "seconds", t2.Sub(t1).Seconds())
		slog.Info("wrote csv", "path", *scrapeOut, "records", len(records))
	},
}

package commands

import (
	"os"
	"sidco-backend/lib/scrapers/sidco/incendios"
	"sidco-backend/lib/serviceutil"
	"sidco-backend/services/sidco/scraper"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var parseFicha *string
var parseOut *string

func init() {
	parseFicha = parseCmd.Flags().String("ficha", "", "An optional ficha HTML file to enrich every record with.")
	parseOut = parseCmd.Flags().String("out", "", "Write the parsed records to a CSV instead of only previewing them.")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <listado.html> [--ficha <ficha.html>] [--out <path/to/output.csv>]",
	Short: "Parses saved SIDCO pages offline, useful for validating markup drift.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		listing, err := os.ReadFile(args[0])
		if err != nil {
			serviceutil.Fatal("failed to read listing file", err)
		}
		records, err := incendios.ParseListing(string(listing))
		if err != nil {
			serviceutil.Fatal("failed to parse listing", err)
		}

		if *parseFicha != "" {
			raw, err := os.ReadFile(*parseFicha)
			if err != nil {
				serviceutil.Fatal("failed to read ficha file", err)
			}
			ficha, err := incendios.ParseFicha(string(raw))
			if err != nil {
				serviceutil.Fatal("failed to parse ficha", err)
			}
			for i := range records {
				records[i].ApplyFicha(ficha)
			}
		}

		if *parseOut != "" {
			out, err := os.Create(*parseOut)
			if err != nil {
				serviceutil.Fatal("failed to create output file", err)
			}
			defer out.Close()
			err = scraper.WriteCSV(out, records)
			if err != nil {
				serviceutil.Fatal("failed to write csv", err)
			}
		}

		renderPreview(records)
	},
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func renderPreview(records []incendios.FireRecord) {
	t := newTable()
	t.AppendHeader(table.Row{"Alerta", "Fecha", "Región", "Nombre", "Comuna", "Estado", "Superficie (ha)", "Lat", "Lon"})

	for _, r := range records {
		t.AppendRow(table.Row{
			r.AlertaCodigo, r.FechaRaw, r.Region, r.Nombre,
			r.Comuna, r.Estado,
			formatFloat(r.SuperficieHa),
			formatFloat(r.Ficha.LatOperativa),
			formatFloat(r.Ficha.LonOperativa),
		})
	}
	t.Render()
}

package scraper

import (
	"bytes"
	"encoding/csv"
	"sidco-backend/lib/scrapers/sidco/incendios"
	"sidco-backend/lib/timezone"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	fecha := time.Date(2025, time.November, 16, 18, 36, 0, 0, timezone.Location)
	area := 1234.5
	lat := -33.45
	lon := -70.66

	records := []incendios.FireRecord{
		{
			AlertaTitulo: "Alerta Roja",
			AlertaCodigo: "roja",
			FechaRaw:     "16-nov-2025 18:36",
			Fecha:        &fecha,
			Region:       "Valparaíso",
			Nombre:       "LOS MAITENES",
			Ambito:       "Rural",
			Comuna:       "Quilpué",
			Estado:       "En Combate",
			SuperficieHa: &area,
			UrlPoligono:  "https://sidco.conaf.cl/descarga/poligono/9041",
			UrlFicha:     "https://sidco.conaf.cl/incendio/ficha/9041",
			UrlArchivos:  "https://sidco.conaf.cl/incendio/archivos/9041",
			Ficha: incendios.Ficha{
				UtmOperativas: "E 270588 N 6345881",
				LatOperativa:  &lat,
				LonOperativa:  &lon,
				Meteo: map[string]string{
					"meteo_temperatura": "28 °C",
					"meteo_fecha":       "16-nov-2025",
				},
			},
		},
		{Nombre: "SANTA ELENA", FechaRaw: "sin fecha"},
	}

	var buf bytes.Buffer
	err := WriteCSV(&buf, records)
	require.NoError(t, err)

	// utf-8 without a byte order mark
	require.False(t, strings.HasPrefix(buf.String(), "\ufeff"))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, "alerta_titulo", rows[0][0])
	require.Equal(t, "superficie_ha", rows[0][9])
	require.Equal(t, "meteo_fecha", rows[0][len(rows[0])-1])
	for _, header := range rows[0] {
		for _, r := range header {
			require.Less(t, r, rune(128))
		}
	}

	full := rows[1]
	require.Equal(t, "Alerta Roja", full[0])
	require.Equal(t, "2025-11-16 18:36:00", full[3])
	require.Equal(t, "1234.5", full[9])
	require.Equal(t, "E 270588 N 6345881", full[13])
	require.Equal(t, "-33.45", full[17])
	require.Equal(t, "-70.66", full[18])
	require.Equal(t, "28 °C", full[19])
	require.Equal(t, "16-nov-2025", full[len(full)-1])

	sparse := rows[2]
	require.Equal(t, "SANTA ELENA", sparse[5])
	require.Equal(t, "", sparse[3])
	require.Equal(t, "", sparse[9])
	require.Equal(t, "", sparse[17])
}

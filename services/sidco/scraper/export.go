package scraper

import (
	"encoding/csv"
	"io"
	"sidco-backend/lib/scrapers/sidco/incendios"
	"sidco-backend/lib/textutil"
	"strconv"
)

const exportTimeFormat = "2006-01-02 15:04:05"

// Columns is the export order. The meteo_* names double as the keys of
// Ficha.Meteo.
var Columns = []string{
	"alerta_titulo",
	"alerta_codigo",
	"fecha_raw",
	"fecha",
	"region",
	"nombre",
	"ambito",
	"comuna",
	"estado",
	"superficie_ha",
	"url_poligono",
	"url_ficha",
	"url_archivos",
	"utm_operativas",
	"utm_investigadas",
	"geo_operativas",
	"geo_investigadas",
	"lat_operativa",
	"lon_operativa",
	"meteo_temperatura",
	"meteo_nubosidad",
	"meteo_hum_relativa",
	"meteo_vel_viento",
	"meteo_pendiente",
	"meteo_exposicion",
	"meteo_dir_viento",
	"meteo_topografia",
	"meteo_estacion",
	"meteo_fecha",
}

// WriteCSV renders records in Columns order, UTF-8 without a byte order
// mark. Headers pass through textutil.SanitizeColumn so downstream GIS
// tooling accepts them.
func WriteCSV(w io.Writer, records []incendios.FireRecord) error {
	cw := csv.NewWriter(w)

	headers := make([]string, len(Columns))
	for i, c := range Columns {
		headers[i] = textutil.SanitizeColumn(c)
	}
	if err := cw.Write(headers); err != nil {
		return err
	}

	for _, r := range records {
		if err := cw.Write(Row(r)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Row flattens a record into Columns order.
func Row(r incendios.FireRecord) []string {
	fecha := ""
	if r.Fecha != nil {
		fecha = r.Fecha.Format(exportTimeFormat)
	}

	row := []string{
		r.AlertaTitulo,
		r.AlertaCodigo,
		r.FechaRaw,
		fecha,
		r.Region,
		r.Nombre,
		r.Ambito,
		r.Comuna,
		r.Estado,
		formatFloat(r.SuperficieHa),
		r.UrlPoligono,
		r.UrlFicha,
		r.UrlArchivos,
		r.Ficha.UtmOperativas,
		r.Ficha.UtmInvestigadas,
		r.Ficha.GeoOperativas,
		r.Ficha.GeoInvestigadas,
		formatFloat(r.Ficha.LatOperativa),
		formatFloat(r.Ficha.LonOperativa),
	}
	for _, c := range Columns[len(row):] {
		row = append(row, r.Ficha.Meteo[c])
	}
	return row
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

package incendios

import "time"

// FireRecord is one row of the "Incendios forestales vigentes" table,
// later enriched in place with the fields of its ficha. Field-level
// absence is a zero value, never an error: the portal's markup varies
// row to row and partial data beats no data.
type FireRecord struct {
	// tooltip text and css-encoded severity tier of the alert indicator,
	// both empty when the row carries no indicator
	AlertaTitulo string
	AlertaCodigo string

	FechaRaw string
	// nil when FechaRaw did not parse
	Fecha *time.Time

	Region string
	Nombre string
	Ambito string
	Comuna string
	Estado string

	// hectares, nil when the cell was empty or not numeric
	SuperficieHa *float64

	// absolute urls, empty when the row has no such link
	UrlPoligono string
	UrlFicha    string
	UrlArchivos string

	Ficha Ficha
}

// ApplyFicha merges detail-page fields into the record.
func (r *FireRecord) ApplyFicha(f Ficha) {
	r.Ficha = f
}

// Ficha holds everything extracted from a fire's detail page. Every
// field is best-effort: a sub-table missing from the page simply leaves
// its fields at their zero value.
type Ficha struct {
	UtmOperativas   string
	UtmInvestigadas string
	GeoOperativas   string
	GeoInvestigadas string

	// decoded from the linkMapa(this, lat, lon) onclick handler of the
	// operative geographic coordinate link
	LatOperativa *float64
	LonOperativa *float64

	// initial meteorological/topographic readings keyed by export column
	// name (meteo_temperatura, meteo_nubosidad, ...)
	Meteo map[string]string
}

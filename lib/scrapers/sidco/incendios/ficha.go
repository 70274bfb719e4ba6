package incendios

import (
	"regexp"
	"sidco-backend/lib/htmlutil"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const coordMarker = "Coordenadas operativas"
const meteoMarker = "CONDICIONES METEOROLOGICAS Y TOPOGRAFICAS INICIALES"

const labelUtm = "Coordenadas UTM"
const labelGeo = "Coordenadas geográficas"

// the map link encodes the coordinates as arguments of an inline
// onclick call; they are extracted textually, never by running script
var linkMapaRegex = regexp.MustCompile(`linkMapa\(this,\s*(-?[0-9.]+),\s*(-?[0-9.]+)\)`)

// exact-match labels of the initial conditions table, keyed to their
// export column. unknown labels are ignored so extra rows on newer
// fichas don't break the parse.
var meteoLabels = map[string]string{
	"Temperatura:":            "meteo_temperatura",
	"Nubosidad:":              "meteo_nubosidad",
	"Hum. relativa:":          "meteo_hum_relativa",
	"Velocidad viento:":       "meteo_vel_viento",
	"Pendiente:":              "meteo_pendiente",
	"Exposición:":             "meteo_exposicion",
	"Direccion viento:":       "meteo_dir_viento",
	"Topografia:":             "meteo_topografia",
	"Estacion Meteorológica:": "meteo_estacion",
	"Fecha:":                  "meteo_fecha",
}

// ParseFicha extracts the coordinate pairs and the initial
// meteorological/topographic readings from a fire's detail page. Both
// passes are best-effort: a page lacking either sub-table yields a zero
// Ficha, never an error.
func ParseFicha(html string) (Ficha, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Ficha{}, err
	}

	var ficha Ficha
	parseCoordinates(doc, &ficha)
	parseMeteo(doc, &ficha)
	return ficha, nil
}

// coordinate rows have the label in cell 0, the operative value in
// cell 1 and the investigated value in cell 3; cell 2 is a spacer
func parseCoordinates(doc *goquery.Document, ficha *Ficha) {
	cell, ok := htmlutil.FindByMarker(doc, "td", coordMarker)
	if !ok {
		return
	}
	tbody := cell.Closest("table").Find("tbody").First()
	if tbody.Length() == 0 {
		return
	}

	tbody.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 4 {
			return
		}

		label := htmlutil.Text(cells.Eq(0))
		operative := htmlutil.Text(cells.Eq(1))
		investigated := htmlutil.Text(cells.Eq(3))

		switch {
		case strings.Contains(label, labelUtm):
			ficha.UtmOperativas = operative
			ficha.UtmInvestigadas = investigated
		case strings.Contains(label, labelGeo):
			ficha.GeoOperativas = operative
			ficha.GeoInvestigadas = investigated
			lat, lon := linkMapaCoords(cells.Eq(1))
			if lat != nil && lon != nil {
				ficha.LatOperativa = lat
				ficha.LonOperativa = lon
			}
		}
	})
}

// linkMapaCoords pulls the two numeric arguments out of the first
// anchor's onclick handler. Any other shape is absence, not a failure.
func linkMapaCoords(cell *goquery.Selection) (*float64, *float64) {
	onclick := cell.Find("a").First().AttrOr("onclick", "")
	m := linkMapaRegex.FindStringSubmatch(onclick)
	if m == nil {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, nil
	}
	lon, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil, nil
	}
	return &lat, &lon
}

func parseMeteo(doc *goquery.Document, ficha *Ficha) {
	cell, ok := htmlutil.FindByMarker(doc, "td", meteoMarker)
	if !ok {
		return
	}
	tbody := cell.Closest("table").Find("tbody").First()
	if tbody.Length() == 0 {
		return
	}

	tbody.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 2 {
			return
		}

		column, ok := meteoLabels[htmlutil.Text(cells.Eq(0))]
		if !ok {
			return
		}
		if ficha.Meteo == nil {
			ficha.Meteo = map[string]string{}
		}
		ficha.Meteo[column] = htmlutil.Text(cells.Eq(1))
	})
}

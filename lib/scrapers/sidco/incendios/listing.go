package incendios

import (
	"fmt"
	"sidco-backend/lib/htmlutil"
	"sidco-backend/lib/scrapers/sidco/core"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const listingHeadingMarker = "Incendios forestales vigentes"

// several tables on the page carry class="tabla"; only the one whose
// header row has both of these labels is the fires table
const headerFecha = "Fecha"
const headerRegion = "Región"

// rows with fewer cells are spacer/footer rows, not data
const minListingCells = 12

const alertCodePrefix = "incendio-estado-alerta-"

// ParseListing extracts one FireRecord per data row of the active fires
// table, in document order. It fails with ErrNotFound when the marker
// heading or a table with the expected headers is missing, and with
// ErrMalformedDocument when the table has no body.
func ParseListing(html string) ([]FireRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	heading, ok := htmlutil.FindByMarker(doc, "h1", listingHeadingMarker)
	if !ok {
		return nil, fmt.Errorf("%w: heading %q", ErrNotFound, listingHeadingMarker)
	}

	tables := htmlutil.Following(doc, heading, "table.tabla")
	table, ok := htmlutil.TableWithHeaders(tables, headerFecha, headerRegion)
	if !ok {
		return nil, fmt.Errorf(
			"%w: no table after the heading has both %q and %q headers",
			ErrNotFound, headerFecha, headerRegion,
		)
	}

	tbody := table.Find("tbody").First()
	if tbody.Length() == 0 {
		return nil, fmt.Errorf("%w: fires table has no tbody", ErrMalformedDocument)
	}

	var records []FireRecord
	tbody.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < minListingCells {
			return
		}
		records = append(records, parseListingRow(cells))
	})

	return records, nil
}

// column layout of the fires table; index 10 is an unused spacer column
func parseListingRow(cells *goquery.Selection) FireRecord {
	rec := FireRecord{}

	indicator := cells.Eq(0).Find("span").First()
	if indicator.Length() > 0 {
		rec.AlertaTitulo = indicator.AttrOr("title", "")
		rec.AlertaCodigo = alertCode(indicator)
	}

	rec.FechaRaw = htmlutil.Text(cells.Eq(1))
	rec.Fecha = ParseFecha(rec.FechaRaw)
	rec.Region = htmlutil.Text(cells.Eq(2))
	rec.Nombre = htmlutil.Text(cells.Eq(3))
	rec.Ambito = htmlutil.Text(cells.Eq(4))
	rec.Comuna = htmlutil.Text(cells.Eq(5))
	// the estado cell nests its words in separate elements
	rec.Estado = htmlutil.SeparatedText(cells.Eq(6), " ")
	rec.SuperficieHa = ParseArea(htmlutil.Text(cells.Eq(7)))
	rec.UrlPoligono = absoluteHref(cells.Eq(8))
	rec.UrlFicha = absoluteHref(cells.Eq(9))
	rec.UrlArchivos = absoluteHref(cells.Eq(11))

	return rec
}

// the severity tier is encoded as a css class on the indicator span,
// e.g. "incendio-estado-alerta-roja"
func alertCode(indicator *goquery.Selection) string {
	for _, class := range strings.Fields(indicator.AttrOr("class", "")) {
		if strings.HasPrefix(class, alertCodePrefix) {
			return class
		}
	}
	return ""
}

// hrefs on the portal are relative; resolve against the fixed origin.
// a cell without an anchor yields "".
func absoluteHref(cell *goquery.Selection) string {
	href, ok := cell.Find("a").First().Attr("href")
	if !ok {
		return ""
	}
	return core.BaseUrl + href
}

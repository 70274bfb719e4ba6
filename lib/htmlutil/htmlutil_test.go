package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const markerDoc = `
<html><body>
<table class="tabla" id="before"><thead><tr><td>Fecha</td><td>Región</td></tr></thead></table>
<h1>Incendios forestales vigentes</h1>
<p>intro</p>
<table class="tabla" id="summary"><thead><tr><td>Total</td></tr></thead></table>
<div>
  <table class="tabla" id="target">
    <thead><tr><th>Fecha</th><th>Región</th><th>Nombre</th></tr></thead>
    <tbody><tr><td>x</td></tr></tbody>
  </table>
</div>
<table id="unclassed"><thead><tr><td>Fecha</td><td>Región</td></tr></thead></table>
</body></html>`

func parseDoc(t *testing.T, raw string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	require.NoError(t, err)
	return doc
}

func TestFindByMarker(t *testing.T) {
	doc := parseDoc(t, markerDoc)

	heading, ok := FindByMarker(doc, "h1", "Incendios forestales vigentes")
	require.True(t, ok)
	require.Equal(t, "Incendios forestales vigentes", Text(heading))

	_, ok = FindByMarker(doc, "h1", "no such phrase")
	require.False(t, ok)
}

func TestFollowingSkipsEarlierTables(t *testing.T) {
	doc := parseDoc(t, markerDoc)
	heading, ok := FindByMarker(doc, "h1", "Incendios forestales vigentes")
	require.True(t, ok)

	tables := Following(doc, heading, "table.tabla")
	require.Len(t, tables, 2)
	id, _ := tables[0].Attr("id")
	require.Equal(t, "summary", id)
	id, _ = tables[1].Attr("id")
	require.Equal(t, "target", id)
}

func TestTableWithHeaders(t *testing.T) {
	doc := parseDoc(t, markerDoc)
	heading, _ := FindByMarker(doc, "h1", "Incendios forestales vigentes")
	tables := Following(doc, heading, "table.tabla")

	table, ok := TableWithHeaders(tables, "Fecha", "Región")
	require.True(t, ok)
	id, _ := table.Attr("id")
	require.Equal(t, "target", id)

	_, ok = TableWithHeaders(tables, "Fecha", "Provincia")
	require.False(t, ok)
}

func TestSeparatedText(t *testing.T) {
	doc := parseDoc(t, `<html><body><table><tbody><tr><td id="estado"><span>En Combate</span><span>(2)</span></td></tr></tbody></table></body></html>`)
	cell := doc.Find("#estado")
	require.Equal(t, "En Combate (2)", SeparatedText(cell, " "))
}

package incendios

import (
	"sidco-backend/lib/timezone"
	"testing"
	"time"

	_ "embed"

	"github.com/stretchr/testify/require"
)

//go:embed listado_test.html
var listadoTest string

func TestParseListing(t *testing.T) {
	records, err := ParseListing(listadoTest)
	require.NoError(t, err)
	// the footer row has fewer than 12 cells and must be skipped
	require.Len(t, records, 2)

	first := records[0]
	require.Equal(t, "Alerta Roja", first.AlertaTitulo)
	require.Equal(t, "incendio-estado-alerta-roja", first.AlertaCodigo)
	require.Equal(t, "16-nov-2025 18:36", first.FechaRaw)
	require.NotNil(t, first.Fecha)
	require.Equal(
		t,
		time.Date(2025, time.November, 16, 18, 36, 0, 0, timezone.Location),
		*first.Fecha,
	)
	require.Equal(t, "Valparaíso", first.Region)
	require.Equal(t, "LOS MAITENES", first.Nombre)
	require.Equal(t, "Rural", first.Ambito)
	require.Equal(t, "Quilpué", first.Comuna)
	require.Equal(t, "En Combate", first.Estado)
	require.NotNil(t, first.SuperficieHa)
	require.Equal(t, 1234.5, *first.SuperficieHa)
	require.Equal(t, "https://sidco.conaf.cl/descarga/poligono/9041", first.UrlPoligono)
	require.Equal(t, "https://sidco.conaf.cl/incendio/ficha/9041", first.UrlFicha)
	require.Equal(t, "https://sidco.conaf.cl/incendio/archivos/9041", first.UrlArchivos)

	second := records[1]
	require.Empty(t, second.AlertaTitulo)
	require.Empty(t, second.AlertaCodigo)
	require.Equal(t, "sin fecha", second.FechaRaw)
	require.Nil(t, second.Fecha)
	require.Nil(t, second.SuperficieHa)
	require.Empty(t, second.UrlPoligono)
	require.Equal(t, "https://sidco.conaf.cl/incendio/ficha/9042", second.UrlFicha)
	require.Empty(t, second.UrlArchivos)
}

func TestParseListingMissingHeading(t *testing.T) {
	_, err := ParseListing(`<html><body><h1>Otra página</h1></body></html>`)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestParseListingNoMatchingTable(t *testing.T) {
	_, err := ParseListing(`
		<html><body>
		<h1>Incendios forestales vigentes</h1>
		<table class="tabla">
			<thead><tr><td>Total</td></tr></thead>
			<tbody><tr><td>0</td></tr></tbody>
		</table>
		</body></html>`)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestParseListingNoBody(t *testing.T) {
	_, err := ParseListing(`
		<html><body>
		<h1>Incendios forestales vigentes</h1>
		<table class="tabla">
			<thead><tr><td>Fecha</td><td>Región</td></tr></thead>
		</table>
		</body></html>`)
	require.ErrorIs(t, err, ErrMalformedDocument)
}

func TestAlertCodeRequiresPrefix(t *testing.T) {
	records, err := ParseListing(`
		<html><body>
		<h1>Incendios forestales vigentes</h1>
		<table class="tabla">
			<thead><tr><td>Fecha</td><td>Región</td></tr></thead>
			<tbody><tr>
				<td><span class="foo icono" title="Sin alerta"></span></td>
				<td>16-nov-2025 18:36</td>
				<td>Maule</td><td>X</td><td>Rural</td><td>Talca</td><td>Activo</td>
				<td>0,75</td><td></td><td></td><td></td><td></td>
			</tr></tbody>
		</table>
		</body></html>`)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Sin alerta", records[0].AlertaTitulo)
	require.Empty(t, records[0].AlertaCodigo)
	require.NotNil(t, records[0].SuperficieHa)
	require.Equal(t, 0.75, *records[0].SuperficieHa)
}

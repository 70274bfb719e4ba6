package incendios

import (
	"sidco-backend/lib/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseArea(t *testing.T) {
	area := ParseArea("1.234,5")
	require.NotNil(t, area)
	require.Equal(t, 1234.5, *area)

	area = ParseArea("0,75")
	require.NotNil(t, area)
	require.Equal(t, 0.75, *area)

	area = ParseArea("12")
	require.NotNil(t, area)
	require.Equal(t, 12.0, *area)

	require.Nil(t, ParseArea(""))
	require.Nil(t, ParseArea("n/d"))
}

func TestParseFecha(t *testing.T) {
	fecha := ParseFecha("16-nov-2025 18:36")
	require.NotNil(t, fecha)
	require.Equal(t, time.Date(2025, time.November, 16, 18, 36, 0, 0, timezone.Location), *fecha)

	fecha = ParseFecha("1-Ene-2026 0:05")
	require.NotNil(t, fecha)
	require.Equal(t, time.Date(2026, time.January, 1, 0, 5, 0, 0, timezone.Location), *fecha)

	fecha = ParseFecha("3-sept-2025 09:00")
	require.NotNil(t, fecha)
	require.Equal(t, time.Date(2025, time.September, 3, 9, 0, 0, 0, timezone.Location), *fecha)
}

func TestParseFechaRejectsGarbage(t *testing.T) {
	require.Nil(t, ParseFecha(""))
	require.Nil(t, ParseFecha("sin fecha"))
	require.Nil(t, ParseFecha("16-noviembre-2025 18:36"))
	require.Nil(t, ParseFecha("32-nov-2025 18:36"))
	require.Nil(t, ParseFecha("16-nov-2025 25:00"))
	// dates that only exist through overflow normalization
	require.Nil(t, ParseFecha("31-feb-2026 10:00"))
	require.Nil(t, ParseFecha("29-feb-2025 10:00"))
	require.Nil(t, ParseFecha("31-abr-2025 10:00"))
}

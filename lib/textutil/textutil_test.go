package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "incendiosvigentes", NormalizeName("  Incendios \t Vigentes\n"))
}

func TestCollapseSpace(t *testing.T) {
	require.Equal(t, "En Combate (2)", CollapseSpace("  En \n\t Combate  (2) "))
}

func TestSanitizeColumn(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"\ufeffalerta_titulo", "alerta_titulo"},
		{" región ", "regin"},
		{"superficie_ha", "superficie_ha"},
		{"  meteo_exposición\t", "meteo_exposicin"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, SanitizeColumn(c.in))
	}
}

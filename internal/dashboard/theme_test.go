package dashboard_test

import (
	"errors"
	"popdash/internal/dashboard"
	"popdash/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	cases := []struct {
		in   string
		want dashboard.Theme
		ok   bool
	}{
		{in: "light", want: dashboard.ThemeLight, ok: true},
		{in: "dark", want: dashboard.ThemeDark, ok: true},
		{in: " DARK ", want: dashboard.ThemeDark, ok: true},
		{in: "", ok: false},
		{in: "sepia", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := dashboard.ParseTheme(tc.in)
			if !tc.ok {
				require.Error(t, err)
				require.True(t, errors.Is(err, serrors.ErrBadRequest))

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestTheme_Style(t *testing.T) {
	require.Equal(t, dashboard.Style{Color: "black", Background: "white"}, dashboard.ThemeLight.Style())
	require.Equal(t, dashboard.Style{Color: "white", Background: "black"}, dashboard.ThemeDark.Style())
	require.Equal(t, "light", dashboard.ThemeLight.ChartTheme())
	require.Equal(t, "dark", dashboard.ThemeDark.ChartTheme())
}

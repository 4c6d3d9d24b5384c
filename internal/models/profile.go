// ABOUTME: UserProfile singleton and Theme models.
// ABOUTME: Themes are a fixed set of keys with display names and colors.
package models

// UserProfile is the single profile stored per device. It is always saved
// wholesale; there is no partial update.
type UserProfile struct {
	Age           NumericString `json:"age" yaml:"age"`
	Height        NumericString `json:"height" yaml:"height"`
	InitialWeight NumericString `json:"initialWeight" yaml:"initial_weight"`
}

// ThemeKey identifies one of the app's accent themes.
type ThemeKey string

const (
	ThemeAzul    ThemeKey = "azul"
	ThemeNaranja ThemeKey = "naranja"
	ThemeVerde   ThemeKey = "verde"
	ThemeMorado  ThemeKey = "morado"
	ThemeRojo    ThemeKey = "rojo"

	DefaultTheme = ThemeAzul
)

// Theme is the display information for a ThemeKey.
type Theme struct {
	Key   ThemeKey `json:"key"`
	Name  string   `json:"name"`
	Color string   `json:"color"`
}

// Themes maps every valid key to its display information.
var Themes = map[ThemeKey]Theme{
	ThemeAzul:    {Key: ThemeAzul, Name: "Azul Eléctrico", Color: "#2F80ED"},
	ThemeNaranja: {Key: ThemeNaranja, Name: "Naranja Sunset", Color: "#F2994A"},
	ThemeVerde:   {Key: ThemeVerde, Name: "Verde Éxito", Color: "#27AE60"},
	ThemeMorado:  {Key: ThemeMorado, Name: "Morado Real", Color: "#9B51E0"},
	ThemeRojo:    {Key: ThemeRojo, Name: "Rojo Pasión", Color: "#EB5757"},
}

// AllThemeKeys returns the theme keys in menu order.
var AllThemeKeys = []ThemeKey{ThemeAzul, ThemeNaranja, ThemeVerde, ThemeMorado, ThemeRojo}

// IsValidTheme checks if a string is a known theme key.
func IsValidTheme(s string) bool {
	_, ok := Themes[ThemeKey(s)]
	return ok
}

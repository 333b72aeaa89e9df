package view

// IconNotFound is rendered for weather codes missing from the icon table
const IconNotFound = "NOT FOUND"

// weatherIcons groups WMO weather codes by the glyph that represents them
var weatherIcons = []struct {
	codes []int
	icon  string
}{
	{codes: []int{0}, icon: "☀️"},
	{codes: []int{1}, icon: "🌤"},
	{codes: []int{2}, icon: "⛅️"},
	{codes: []int{3}, icon: "☁️"},
	{codes: []int{45, 48}, icon: "🌫"},
	{codes: []int{51, 56, 61, 66, 80}, icon: "🌦"},
	{codes: []int{53, 55, 63, 65, 57, 67, 81, 82}, icon: "🌧"},
	{codes: []int{71, 73, 75, 77, 85, 86}, icon: "🌨"},
	{codes: []int{95}, icon: "🌩"},
	{codes: []int{96, 99}, icon: "⛈"},
}

var iconByCode = func() map[int]string {
	m := make(map[int]string)
	for _, group := range weatherIcons {
		for _, code := range group.codes {
			m[code] = group.icon
		}
	}
	return m
}()

// WeatherIcon maps a WMO weather code to its display glyph
func WeatherIcon(code int) string {
	if icon, ok := iconByCode[code]; ok {
		return icon
	}
	return IconNotFound
}

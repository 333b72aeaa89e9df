package view

import (
	"fmt"
	"io"
	"strconv"

	"classy-weather/internal/domain/entity"
)

const title = "Classy Weather"

// RenderTerminal writes the widget for state: a loading line while a lookup is
// running, then the forecast cards if there is one.
func RenderTerminal(w io.Writer, state entity.SearchState) error {
	if _, err := fmt.Fprintf(w, "%s\n> %s\n", title, state.Query); err != nil {
		return err
	}

	if state.IsLoading {
		if _, err := fmt.Fprintln(w, "Loading..."); err != nil {
			return err
		}
	}

	if !state.HasForecast() {
		return nil
	}

	if _, err := fmt.Fprintf(w, "Weather %s\n", state.DisplayLocation); err != nil {
		return err
	}
	for _, card := range BuildCards(state.Forecast) {
		line := fmt.Sprintf("  %s  %-5s %d° — %d°  Wind: %s km/h\n",
			card.Icon, card.Label, card.Min, card.Max,
			strconv.FormatFloat(card.WindSpeed, 'f', -1, 64))
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

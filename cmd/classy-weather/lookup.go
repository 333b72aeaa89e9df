package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"classy-weather/internal/application/view"
	"classy-weather/internal/domain/entity"
	"classy-weather/internal/domain/model"
	"classy-weather/pkg/log"
	"classy-weather/pkg/msg"
)

const (
	outputText = "text"
	outputJSON = "json"
)

func newLookupCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "lookup <location>",
		Short: "Print the forecast of a location once",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputText && output != outputJSON {
				return fmt.Errorf("unknown output format %q, use %s or %s", output, outputText, outputJSON)
			}

			app, err := newApplication()
			if err != nil {
				return err
			}
			defer app.Close()

			query := strings.Join(args, " ")
			result, err := app.lookupUseCase.ResolveWeather(cmd.Context(), query)
			if err != nil {
				log.Error(msg.GetMessage("lookup.failed", query, err))
				return err
			}
			return printLookup(cmd.OutOrStdout(), output, query, result)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text, json)")
	return cmd
}

func printLookup(out io.Writer, output string, query string, result *model.LookupResult) error {
	if output == outputJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(view.BuildWeatherResponse(query, result))
	}

	state := entity.SearchState{Query: query}
	if !result.TooShort {
		forecast := result.Forecast
		state.DisplayLocation = result.DisplayLocation
		state.Forecast = &forecast
	}
	return view.RenderTerminal(out, state)
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"classy-weather/internal/application/view"
	"classy-weather/internal/domain/entity"
	"classy-weather/internal/domain/usecase/search"
	"classy-weather/pkg/log"
)

func newSearchCommand() *cobra.Command {
	var cancelSuperseded bool

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Interactive search widget, every input line replaces the query",
		RunE: func(cmd *cobra.Command, args []string) error {
			// keep log entries out of the rendered widget
			log.SetOutput(os.Stderr)

			app, err := newApplication()
			if err != nil {
				return err
			}
			defer app.Close()

			options := searchOptions()
			if cmd.Flags().Changed("cancel-superseded") {
				options.CancelSuperseded = cancelSuperseded
			}

			controller := search.NewSearchController(uuid.New().String(), app.lookupUseCase, options)
			return runSearch(cmd.InOrStdin(), cmd.OutOrStdout(), controller)
		},
	}
	cmd.Flags().BoolVar(&cancelSuperseded, "cancel-superseded", true, "drop the result of a lookup once a newer query arrives")
	return cmd
}

// runSearch feeds each input line to controller as the new query and renders
// every state change to out. It returns once input ends and pending lookups finish.
func runSearch(in io.Reader, out io.Writer, controller *search.SearchController) error {
	if err := renderFrame(out, controller.State()); err != nil {
		return err
	}

	updates := controller.Subscribe()
	rendered := make(chan error, 1)
	go func() {
		var renderErr error
		for state := range updates {
			if renderErr == nil {
				renderErr = renderFrame(out, state)
			}
		}
		rendered <- renderErr
	}()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		controller.SetQuery(strings.TrimRight(scanner.Text(), "\r"))
	}

	controller.Wait()
	controller.Close()

	renderErr := <-rendered
	if err := scanner.Err(); err != nil {
		return err
	}
	return renderErr
}

func renderFrame(out io.Writer, state entity.SearchState) error {
	if err := view.RenderTerminal(out, state); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out)
	return err
}

package controller

import (
	"net/http"

	"classy-weather/internal/application/view"
	"classy-weather/internal/domain/entity"
	"classy-weather/internal/domain/model"
	"classy-weather/internal/domain/usecase/search"
	"classy-weather/pkg/msg"

	"github.com/labstack/echo/v4"
)

type SearchController struct {
	api     *echo.Group
	useCase search.UseCase
}

func NewSearchController(api *echo.Group, useCase search.UseCase) *SearchController {
	return &SearchController{api: api, useCase: useCase}
}

// InitSearchRoutes initializes search session routes
func (controller *SearchController) InitSearchRoutes() {
	controller.api.POST("/search", controller.CreateSession)
	controller.api.GET("/search/:id", controller.FindState)
	controller.api.PUT("/search/:id", controller.SetQuery)
	controller.api.DELETE("/search/:id", controller.CloseSession)
}

// CreateSession godoc
// @Summary Open a search session
// @Description Create a search widget session with an empty state
// @Tags search
// @Produce json
// @Success 201 {object} model.SearchSessionDTO "Created session"
// @Router /search [post]
func (controller *SearchController) CreateSession(c echo.Context) error {
	session := controller.useCase.CreateSession()
	return c.JSON(http.StatusCreated, model.SearchSessionDTO{ID: session.ID()})
}

// FindState godoc
// @Summary Get a search session state
// @Description Return the query, loading flag and forecast cards of a session
// @Tags search
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} model.SearchStateResponse "Session state"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /search/{id} [get]
func (controller *SearchController) FindState(c echo.Context) error {
	session, ok := controller.useCase.FindSession(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("search.not-found")})
	}
	return c.JSON(http.StatusOK, toStateResponse(session.ID(), session.State()))
}

// SetQuery godoc
// @Summary Change the query of a search session
// @Description Record the new query. Queries of two or more characters start a lookup in the background;
// @Description poll the session state to see the result.
// @Tags search
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param query body model.SearchQueryDTO true "New query"
// @Success 202 {object} model.SearchStateResponse "State right after the change"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /search/{id} [put]
func (controller *SearchController) SetQuery(c echo.Context) error {
	session, ok := controller.useCase.FindSession(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("search.not-found")})
	}

	var dto model.SearchQueryDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("search.invalid-body")})
	}

	session.SetQuery(dto.Query)
	return c.JSON(http.StatusAccepted, toStateResponse(session.ID(), session.State()))
}

// CloseSession godoc
// @Summary Close a search session
// @Description Cancel the session's lookups and forget it
// @Tags search
// @Param id path string true "Session id"
// @Success 204 "Session closed"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /search/{id} [delete]
func (controller *SearchController) CloseSession(c echo.Context) error {
	if !controller.useCase.CloseSession(c.Param("id")) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("search.not-found")})
	}
	return c.NoContent(http.StatusNoContent)
}

func toStateResponse(id string, state entity.SearchState) model.SearchStateResponse {
	return model.SearchStateResponse{
		ID:              id,
		Query:           state.Query,
		IsLoading:       state.IsLoading,
		DisplayLocation: state.DisplayLocation,
		Cards:           view.BuildCards(state.Forecast),
	}
}

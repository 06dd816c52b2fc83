package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"gamelog/internal/model"
	"gamelog/internal/service"
	"gamelog/internal/view"
)

const maxImportSize = 5 << 20

type GameHandler struct {
	service service.GameService
}

type gameRequest struct {
	Name   rawField `json:"name" form:"name"`
	Rating rawField `json:"rating" form:"rating"`
	Date   rawField `json:"date" form:"date"`
	Review rawField `json:"review" form:"review"`
}

type gameResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Date   string  `json:"date"`
	Review string  `json:"review"`
}

type gameRowResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	RatingLabel string  `json:"ratingLabel"`
	Date        string  `json:"date"`
	DateLabel   string  `json:"dateLabel"`
	Review      string  `json:"review"`
}

func NewGameHandler(service service.GameService) *GameHandler {
	return &GameHandler{service: service}
}

func (h *GameHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/games", h.List)
	g.GET("/games/export", h.Export)
	g.POST("/games/import", h.Import)
	g.GET("/games/:id", h.Get)
	g.POST("/games", h.Create)
	g.PUT("/games/:id", h.Update)
	g.DELETE("/games/:id", h.Delete)
}

// List returns the games as display rows in the requested order.
// @Summary List games
// @Description Get all games as display rows, sorted by name, rating or start date
// @Tags games
// @Produce json
// @Param sort query string false "Sort order (name, rating, date)" default(name)
// @Success 200 {array} gameRowResponse
// @Failure 400 {object} errorResponse
// @Router /games [get]
func (h *GameHandler) List(c echo.Context) error {
	mode, err := service.ParseSortMode(c.QueryParam("sort"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid sort mode"})
	}
	rows := view.Rows(h.service.List(c.Request().Context(), mode))
	response := make([]gameRowResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, gameRowResponse(row))
	}
	return c.JSON(http.StatusOK, response)
}

// Get returns one game, e.g. to prefill the edit form.
// @Summary Get a game
// @Description Get a single game by ID
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} gameResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /games/{id} [get]
func (h *GameHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	game, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toGameResponse(game))
}

// Create validates the submitted form and appends a new game.
// @Summary Create a game
// @Description Add a game entry with name, rating (0-10), start date and optional review
// @Tags games
// @Accept json
// @Produce json
// @Param game body gameRequest true "Game form"
// @Success 201 {object} gameResponse
// @Failure 400 {object} errorResponse
// @Failure 422 {object} validationErrorResponse
// @Failure 429 {object} errorResponse
// @Router /games [post]
func (h *GameHandler) Create(c echo.Context) error {
	var req gameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	game, err := h.service.Create(c.Request().Context(), req.form())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toGameResponse(game))
}

// Update validates the submitted form and replaces the game with that id.
// @Summary Update a game
// @Description Replace an existing game, keeping its ID
// @Tags games
// @Accept json
// @Produce json
// @Param id path int true "Game ID"
// @Param game body gameRequest true "Game form"
// @Success 200 {object} gameResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 422 {object} validationErrorResponse
// @Failure 429 {object} errorResponse
// @Router /games/{id} [put]
func (h *GameHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req gameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	game, err := h.service.Update(c.Request().Context(), id, req.form())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toGameResponse(game))
}

// Delete removes a game. Unknown ids succeed too.
// @Summary Delete a game
// @Description Delete a game by ID; deleting an unknown ID also succeeds
// @Tags games
// @Param id path int true "Game ID"
// @Success 204 "No Content"
// @Failure 400 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Router /games/{id} [delete]
func (h *GameHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Export downloads the whole collection in its stored JSON layout.
// @Summary Export games
// @Description Download all games as a JSON file
// @Tags games
// @Produce json
// @Success 200 {file} file "games.json"
// @Failure 500 {object} errorResponse
// @Router /games/export [get]
func (h *GameHandler) Export(c echo.Context) error {
	payload, err := h.service.Export(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	c.Response().Header().Set("Content-Disposition", `attachment; filename="games.json"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, payload)
}

// Import replaces the collection from a JSON array, sent either as the body
// or as a multipart "file" field.
// @Summary Import games
// @Description Replace all games with a JSON array; nothing changes unless every game is valid
// @Tags games
// @Accept json,mpfd
// @Produce json
// @Param file formData file false "Exported games.json"
// @Success 200 {object} service.ImportResult
// @Failure 400 {object} errorResponse
// @Failure 413 {object} errorResponse
// @Failure 422 {object} validationErrorResponse
// @Router /games/import [post]
func (h *GameHandler) Import(c echo.Context) error {
	req := c.Request()
	req.Body = http.MaxBytesReader(c.Response().Writer, req.Body, maxImportSize)

	var reader io.Reader
	if strings.HasPrefix(req.Header.Get(echo.HeaderContentType), "multipart/") {
		file, err := c.FormFile("file")
		if err != nil {
			if err == http.ErrMissingFile {
				return c.JSON(http.StatusBadRequest, errorResponse{Error: "missing file"})
			}
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
		}
		if file.Size > maxImportSize {
			return c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "file too large"})
		}
		src, err := file.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
		}
		defer src.Close()
		reader = io.LimitReader(src, maxImportSize)
	} else {
		reader = io.LimitReader(req.Body, maxImportSize)
	}

	result, err := h.service.Import(req.Context(), reader)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (r gameRequest) form() service.GameForm {
	return service.GameForm{
		Name:   string(r.Name),
		Rating: string(r.Rating),
		Date:   string(r.Date),
		Review: string(r.Review),
	}
}

func toGameResponse(g model.Game) gameResponse {
	return gameResponse{
		ID:     idToString(g.ID),
		Name:   g.Name,
		Rating: g.Rating,
		Date:   g.Date,
		Review: g.Review,
	}
}

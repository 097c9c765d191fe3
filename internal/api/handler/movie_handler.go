package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/watchlist/internal/api/dto"
	"github.com/martijn/watchlist/internal/api/session"
	"github.com/martijn/watchlist/internal/api/util"
	"github.com/martijn/watchlist/internal/core/domain"
	"github.com/martijn/watchlist/internal/core/service"
	"github.com/martijn/watchlist/internal/web"
)

type MovieHandler struct {
	movieService *service.MovieService
}

func NewMovieHandler(movieService *service.MovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

// Index handles GET /
func (h *MovieHandler) Index(c *gin.Context) {
	movies, err := h.movieService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	web.Render(c, http.StatusOK, web.PageIndex, gin.H{
		"Movies": movies,
	})
}

// Create handles POST /
func (h *MovieHandler) Create(c *gin.Context) {
	// Visitors are sent back to the listing without a message
	if !session.IsAuthenticated(c) {
		session.Redirect(c, "/")
		return
	}

	var form dto.MovieForm
	if err := c.ShouldBind(&form); err != nil {
		web.RenderError(c, http.StatusBadRequest)
		return
	}

	_, err := h.movieService.Create(c.Request.Context(), form.Title, form.Year)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		session.Redirect(c, "/", MsgInvalidInput)
	case err != nil:
		_ = c.Error(err)
	default:
		session.Redirect(c, "/", MsgItemCreated)
	}
}

// Edit handles GET /movie/edit/:id
func (h *MovieHandler) Edit(c *gin.Context) {
	movie, ok := h.lookup(c)
	if !ok {
		return
	}

	web.Render(c, http.StatusOK, web.PageEdit, gin.H{
		"Movie": movie,
	})
}

// Update handles POST /movie/edit/:id
func (h *MovieHandler) Update(c *gin.Context) {
	movie, ok := h.lookup(c)
	if !ok {
		return
	}

	var form dto.MovieForm
	if err := c.ShouldBind(&form); err != nil {
		web.RenderError(c, http.StatusBadRequest)
		return
	}

	_, err := h.movieService.Update(c.Request.Context(), movie.ID, form.Title, form.Year)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		session.Redirect(c, fmt.Sprintf("/movie/edit/%d", movie.ID), MsgInvalidInput)
	case errors.Is(err, domain.ErrNotFound):
		web.RenderError(c, http.StatusNotFound)
	case err != nil:
		_ = c.Error(err)
	default:
		session.Redirect(c, "/", MsgItemUpdated)
	}
}

// Delete handles POST /movie/delete/:id
func (h *MovieHandler) Delete(c *gin.Context) {
	id, ok := util.ParseID(c, "id")
	if !ok {
		web.RenderError(c, http.StatusNotFound)
		return
	}

	err := h.movieService.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		web.RenderError(c, http.StatusNotFound)
	case err != nil:
		_ = c.Error(err)
	default:
		session.Redirect(c, "/", MsgItemDeleted)
	}
}

// lookup loads the movie named by the id parameter. It writes the 404 page
// or records the error itself and reports false when there is none.
func (h *MovieHandler) lookup(c *gin.Context) (*domain.Movie, bool) {
	id, ok := util.ParseID(c, "id")
	if !ok {
		web.RenderError(c, http.StatusNotFound)
		return nil, false
	}

	movie, err := h.movieService.Get(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		web.RenderError(c, http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		_ = c.Error(err)
		return nil, false
	}
	return movie, true
}

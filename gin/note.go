package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/mock"
)

type NoteHandler struct {
	Backend *mock.Backend
}

type noteBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *NoteHandler) RegisterRoutes(router gin.IRouter, authenticated gin.HandlerFunc) {
	notes := router.Group("/notes", authenticated)
	notes.GET("", JSONFormatter(http.StatusOK, h.List))
	notes.GET("/:id", JSONFormatter(http.StatusOK, h.Get))
	notes.POST("", JSONFormatter(http.StatusCreated, h.Create))
	notes.PUT("/:id", JSONFormatter(http.StatusOK, h.Update))
	notes.DELETE("/:id", JSONFormatter(http.StatusOK, h.Delete))
}

func (h *NoteHandler) List(c *gin.Context) (interface{}, error) {
	return gin.H{"notes": h.Backend.Notes(currentUser(c).Tenant.Slug)}, nil
}

func (h *NoteHandler) Get(c *gin.Context) (interface{}, error) {
	note, err := h.Backend.Note(currentUser(c).Tenant.Slug, c.Param("id"))
	if err != nil {
		return nil, err
	}

	return gin.H{"note": note}, nil
}

func (h *NoteHandler) Create(c *gin.Context) (interface{}, error) {
	var body noteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, errors.New("Invalid request body", errors.BadRequest())
	}

	note, err := h.Backend.CreateNote(currentUser(c).Tenant.Slug, body.Title, body.Content)
	if err != nil {
		return nil, err
	}

	return gin.H{"note": note}, nil
}

func (h *NoteHandler) Update(c *gin.Context) (interface{}, error) {
	var body noteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, errors.New("Invalid request body", errors.BadRequest())
	}

	note, err := h.Backend.UpdateNote(currentUser(c).Tenant.Slug, c.Param("id"), body.Title, body.Content)
	if err != nil {
		return nil, err
	}

	return gin.H{"note": note}, nil
}

func (h *NoteHandler) Delete(c *gin.Context) (interface{}, error) {
	if err := h.Backend.DeleteNote(currentUser(c).Tenant.Slug, c.Param("id")); err != nil {
		return nil, err
	}

	return gin.H{"message": "Note deleted"}, nil
}

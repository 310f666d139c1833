package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/notes-server/internal/api/http/response"
	"github.com/dtroode/notes-server/internal/apierrors"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
)

// Note serves the /api/notes and /api/search endpoints.
type Note struct {
	noteService    NoteService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewNote(noteService NoteService, contextManager model.ContextManager, logger *logger.Logger) *Note {
	return &Note{
		noteService:    noteService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Archived bool     `json:"archived"`
}

type updateNoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Tags     *[]string `json:"tags"`
	Archived *bool     `json:"archived"`
}

type shareNoteRequest struct {
	UserIDToShareWith string `json:"userIdToShareWith"`
}

// caller returns the authenticated user and the :noteId path parameter.
func (h *Note) caller(c *gin.Context, withNote bool) (model.Profile, uuid.UUID, bool) {
	user, ok := h.contextManager.GetUserFromContext(c.Request.Context())
	if !ok {
		response.Error(c, h.logger, apierrors.NewErrMissingAuthorizationToken())
		return model.Profile{}, uuid.Nil, false
	}
	if !withNote {
		return user, uuid.Nil, true
	}

	noteID, err := uuid.Parse(c.Param("noteId"))
	if err != nil {
		response.Error(c, h.logger, apierrors.NewErrBadRequest("Invalid note ID"))
		return model.Profile{}, uuid.Nil, false
	}

	return user, noteID, true
}

// List handles GET /api/notes. ?shared=true lists notes shared with the caller.
func (h *Note) List(c *gin.Context) {
	user, _, ok := h.caller(c, false)
	if !ok {
		return
	}

	shared, _ := strconv.ParseBool(c.Query("shared"))

	notes, err := h.noteService.List(c.Request.Context(), user.ID, model.ListNotesFilter{Shared: shared})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, notes, "Notes retrieved successfully")
}

// Create handles POST /api/notes.
func (h *Note) Create(c *gin.Context) {
	user, _, ok := h.caller(c, false)
	if !ok {
		return
	}

	var req createNoteRequest
	if err := bind(c, &req); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	note, err := h.noteService.Create(c.Request.Context(), user.ID, model.CreateNoteParams{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		Archived: req.Archived,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, note, "Note created successfully")
}

// Get handles GET /api/notes/:noteId.
func (h *Note) Get(c *gin.Context) {
	user, noteID, ok := h.caller(c, true)
	if !ok {
		return
	}

	note, err := h.noteService.Get(c.Request.Context(), user.ID, noteID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, note, "Note retrieved successfully")
}

// Update handles PUT /api/notes/:noteId.
func (h *Note) Update(c *gin.Context) {
	user, noteID, ok := h.caller(c, true)
	if !ok {
		return
	}

	var req updateNoteRequest
	if err := bind(c, &req); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	note, err := h.noteService.Update(c.Request.Context(), user.ID, noteID, model.NoteUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		Archived: req.Archived,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, note, "Note updated successfully")
}

// Delete handles DELETE /api/notes/:noteId.
func (h *Note) Delete(c *gin.Context) {
	user, noteID, ok := h.caller(c, true)
	if !ok {
		return
	}

	if err := h.noteService.Delete(c.Request.Context(), user.ID, noteID); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, nil, "Note deleted successfully")
}

// Share handles POST /api/notes/:noteId/share.
func (h *Note) Share(c *gin.Context) {
	user, noteID, ok := h.caller(c, true)
	if !ok {
		return
	}

	var req shareNoteRequest
	if err := bind(c, &req); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	if req.UserIDToShareWith == "" {
		response.Error(c, h.logger, apierrors.NewErrBadRequest("User ID to share with is required"))
		return
	}
	targetID, err := uuid.Parse(req.UserIDToShareWith)
	if err != nil {
		response.Error(c, h.logger, apierrors.NewErrBadRequest("Invalid user ID"))
		return
	}

	if err := h.noteService.Share(c.Request.Context(), user.ID, noteID, targetID); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, nil, "Note shared successfully")
}

// Search handles GET /api/search?q=.
func (h *Note) Search(c *gin.Context) {
	user, _, ok := h.caller(c, false)
	if !ok {
		return
	}

	notes, err := h.noteService.Search(c.Request.Context(), user.ID, c.Query("q"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, notes, "Search results")
}

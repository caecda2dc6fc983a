package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tuitionhub/tuition-backend/internal/model"
	"github.com/tuitionhub/tuition-backend/internal/response"
	"github.com/tuitionhub/tuition-backend/internal/service"
	"github.com/tuitionhub/tuition-backend/internal/validator"
)

// ClassHandler handles tuition-class CRUD. None of the class fields are
// validated here; the frontend sends free-form values and existing callers
// expect them to be stored verbatim.
type ClassHandler struct {
	classService *service.ClassService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(classService *service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// List godoc
// GET /api/classes
// Lists all classes. Public. No pagination, storage order.
func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.classService.List(c.Request.Context())
	if err != nil {
		response.Empty(c, http.StatusInternalServerError)
		return
	}

	response.JSON(c, http.StatusOK, classes)
}

// Create godoc
// POST /api/classes
// Persists a new class; the store assigns the id.
func (h *ClassHandler) Create(c *gin.Context) {
	var class model.TuitionClass
	if fields := validator.Bind(c, &class); fields != nil {
		response.JSON(c, http.StatusBadRequest, fields)
		return
	}

	created, err := h.classService.Add(c.Request.Context(), &class)
	if err != nil {
		response.Empty(c, http.StatusInternalServerError)
		return
	}

	response.JSON(c, http.StatusOK, created)
}

// Get godoc
// GET /api/classes/:id
// Returns the class or an empty 404.
func (h *ClassHandler) Get(c *gin.Context) {
	class, err := h.classService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Empty(c, http.StatusInternalServerError)
		return
	}
	if class == nil {
		response.Empty(c, http.StatusNotFound)
		return
	}

	response.JSON(c, http.StatusOK, class)
}

// Update godoc
// PUT /api/classes/:id
// Full replacement: the path id overwrites any id in the body, and fields
// omitted from the body reset to their zero values.
func (h *ClassHandler) Update(c *gin.Context) {
	var class model.TuitionClass
	if fields := validator.Bind(c, &class); fields != nil {
		response.JSON(c, http.StatusBadRequest, fields)
		return
	}

	updated, err := h.classService.Update(c.Request.Context(), c.Param("id"), &class)
	if err != nil {
		response.Empty(c, http.StatusInternalServerError)
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// Delete godoc
// DELETE /api/classes/:id
// Removes the class. Reports success whether or not the id existed.
func (h *ClassHandler) Delete(c *gin.Context) {
	if err := h.classService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Empty(c, http.StatusInternalServerError)
		return
	}

	response.Empty(c, http.StatusOK)
}

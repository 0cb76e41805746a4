package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type categoryNameRequest struct {
	Name string `json:"name"`
}

type rawCategoryRequest struct {
	RawCategory string `json:"rawCategory"`
}

type relocateCategoryRequest struct {
	ParentID *string `json:"parentId"`
	Index    int     `json:"index"`
}

type moveRawCategoryRequest struct {
	RawCategory string `json:"rawCategory"`
	ToID        string `json:"toId"`
}

func (s *Server) listCategories(c *gin.Context) {
	nodes, err := s.categories.Nested(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": nodes})
}

// getSubtree returns flat category subtree in pre-order, the requested category first.
func (s *Server) getSubtree(c *gin.Context) {
	categories, err := s.categories.Subtree(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// reloadCategories drops in-memory category tree and responds with the stored one.
func (s *Server) reloadCategories(c *gin.Context) {
	if err := s.categories.Reload(c.Request.Context()); err != nil {
		abort(c, err)
		return
	}

	s.listCategories(c)
}

func (s *Server) createCategory(c *gin.Context) {
	var req categoryNameRequest
	if !bind(c, &req) {
		return
	}

	category, err := s.categories.Create(c.Request.Context(), req.Name)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (s *Server) renameCategory(c *gin.Context) {
	var req categoryNameRequest
	if !bind(c, &req) {
		return
	}

	respond(c, s.categories.Rename(c.Request.Context(), c.Param("id"), req.Name))
}

// deleteCategory removes category. Its children move up to its parent.
func (s *Server) deleteCategory(c *gin.Context) {
	respond(c, s.categories.Delete(c.Request.Context(), c.Param("id")))
}

func (s *Server) assignRawCategory(c *gin.Context) {
	var req rawCategoryRequest
	if !bind(c, &req) {
		return
	}

	respond(c, s.categories.Assign(c.Request.Context(), c.Param("id"), req.RawCategory))
}

func (s *Server) unassignRawCategory(c *gin.Context) {
	var req rawCategoryRequest
	if !bind(c, &req) {
		return
	}

	respond(c, s.categories.Unassign(c.Request.Context(), c.Param("id"), req.RawCategory))
}

func (s *Server) relocateCategory(c *gin.Context) {
	var req relocateCategoryRequest
	if !bind(c, &req) {
		return
	}

	respond(c, s.categories.Relocate(c.Request.Context(), c.Param("id"), req.ParentID, req.Index))
}

func (s *Server) moveRawCategory(c *gin.Context) {
	var req moveRawCategoryRequest
	if !bind(c, &req) {
		return
	}

	respond(c, s.categories.MoveRaw(c.Request.Context(), req.RawCategory, req.ToID))
}

// bind decodes JSON body into req. It aborts the request and returns false on failure.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		abort(c, fmt.Errorf("%w: %s", ErrBadRequest, err))
		return false
	}
	return true
}

// respond finishes request without body on success.
func respond(c *gin.Context, err error) {
	if err != nil {
		abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package api

import (
	"net/http"

	"github.com/MichalMitros/supplier-feed-sync/internal/feed"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/gin-gonic/gin"
)

type createSupplierRequest struct {
	ID             string              `json:"id"`
	Name           string              `json:"name" binding:"required"`
	URL            string              `json:"url" binding:"required,url"`
	Dialect        string              `json:"dialect" binding:"required"`
	MarkupRules    []models.MarkupRule `json:"markupRules"`
	ConversionRate float64             `json:"conversionRate" binding:"gte=0"`
	Profitability  float64             `json:"profitability"`
}

func (s *Server) createSupplier(c *gin.Context) {
	var req createSupplierRequest
	if !bind(c, &req) {
		return
	}

	dialect, err := feed.ParseDialect(req.Dialect)
	if err != nil {
		abort(c, err)
		return
	}

	supplier, err := s.suppliers.CreateSupplier(c.Request.Context(), &models.Supplier{
		ID:             req.ID,
		Name:           req.Name,
		URL:            req.URL,
		Dialect:        string(dialect),
		MarkupRules:    req.MarkupRules,
		ConversionRate: req.ConversionRate,
		Profitability:  req.Profitability,
	})
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, supplier)
}

func (s *Server) getSupplier(c *gin.Context) {
	supplier, err := s.suppliers.GetSupplier(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, supplier)
}

func (s *Server) listSuppliers(c *gin.Context) {
	suppliers, err := s.suppliers.ListSuppliers(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
}

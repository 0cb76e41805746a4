package api

import (
	"net/http"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/MichalMitros/supplier-feed-sync/internal/syncer"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type quickSyncAllResponse struct {
	Synced []string          `json:"synced"`
	Failed map[string]string `json:"failed"`
}

func (s *Server) syncFeed(c *gin.Context) {
	var req syncer.FeedRequest
	if !bind(c, &req) {
		return
	}

	products, err := s.syncer.SyncFeed(c.Request.Context(), req)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// prepareSync runs the first stage of full sync and keeps its preview until confirmation.
func (s *Server) prepareSync(c *gin.Context) {
	preview, err := s.syncer.Prepare(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}

	s.previews.put(preview)
	c.JSON(http.StatusOK, preview)
}

func (s *Server) confirmSync(c *gin.Context) {
	var selection models.Selection
	if !bind(c, &selection) {
		return
	}

	if selection.IsEmpty() {
		abort(c, syncer.ErrEmptySelection)
		return
	}

	preview, err := s.previews.take(c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}

	run, err := s.syncer.Commit(c.Request.Context(), preview, selection)
	if err != nil {
		// without a run nothing was written, the preview can still be confirmed
		if run == nil {
			s.previews.restore(preview)
		}
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, run)
}

// quickSync syncs supplier with its last selection. With commander configured
// the sync is only enqueued.
func (s *Server) quickSync(c *gin.Context) {
	supplierID := c.Param("id")

	if s.commander != nil {
		if err := s.commander.SendQuickSyncCommand(c.Request.Context(), supplierID); err != nil {
			abort(c, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"supplierId": supplierID})
		return
	}

	run, err := s.syncer.QuickSync(c.Request.Context(), supplierID)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, run)
}

// quickSyncAll quick syncs all suppliers at once.
func (s *Server) quickSyncAll(c *gin.Context) {
	suppliers, err := s.suppliers.ListSuppliers(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	ids := lo.Map(suppliers, func(supplier models.Supplier, _ int) string {
		return supplier.ID
	})
	failures := s.syncer.QuickSyncAll(c.Request.Context(), ids)

	resp := quickSyncAllResponse{
		Synced: lo.Filter(ids, func(id string, _ int) bool {
			_, failed := failures[id]
			return !failed
		}),
		Failed: lo.MapValues(failures, func(err error, _ string) string {
			return err.Error()
		}),
	}

	c.JSON(http.StatusOK, resp)
}

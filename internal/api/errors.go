package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/MichalMitros/supplier-feed-sync/internal/categorytree"
	"github.com/MichalMitros/supplier-feed-sync/internal/feed"
	"github.com/MichalMitros/supplier-feed-sync/internal/fetcher"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform"
	"github.com/MichalMitros/supplier-feed-sync/internal/syncer"
	"github.com/MichalMitros/supplier-feed-sync/pkg/v1/commander"
	"github.com/gin-gonic/gin"
)

// ErrBadRequest is returned for requests which can't be decoded.
var ErrBadRequest = errors.New("bad request")

var statuses = []struct {
	err    error
	status int
}{
	{ErrBadRequest, http.StatusBadRequest},
	{syncer.ErrMissingInput, http.StatusBadRequest},
	{syncer.ErrEmptySelection, http.StatusBadRequest},
	{feed.ErrUnknownDialect, http.StatusBadRequest},
	{commander.ErrEmptySupplierID, http.StatusBadRequest},
	{categorytree.ErrEmptyName, http.StatusBadRequest},
	{categorytree.ErrEmptyRawCategory, http.StatusBadRequest},
	{categorytree.ErrCycle, http.StatusBadRequest},
	{platform.ErrSupplierNotFound, http.StatusNotFound},
	{categorytree.ErrCategoryNotFound, http.StatusNotFound},
	{platform.ErrAlreadyRunning, http.StatusConflict},
	{platform.ErrNoSelection, http.StatusConflict},
	{platform.ErrSupplierExists, http.StatusConflict},
	{syncer.ErrPreviewOutdated, http.StatusConflict},
	{fetcher.ErrTimeout, http.StatusGatewayTimeout},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// statusOf returns HTTP status code of error.
func statusOf(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// abort responds with error body and status code of error.
func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusOf(err), gin.H{"error": err.Error()})
}

package helpers

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models/modelstesting"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/storage"
	pgmodels "github.com/MichalMitros/supplier-feed-sync/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/storage/storagetesting"
	"github.com/go-jet/jet/v2/qrm"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

const (
	contentType = "Content-Type"
	waitTimeout = 30 * time.Second
)

// SelectedCategory is raw category of generated products which are selected for syncing.
const SelectedCategory = "Furniture > Desks"

// SkippedCategory is raw category of every fifth generated product.
const SkippedCategory = "Home > Lamps"

// WaitForRunsToBeFinished is blocking helper function, returns latest run after n runs of supplier are finished.
func WaitForRunsToBeFinished(t *testing.T, queryable qrm.Queryable, supplierID string, n int) *models.Run {
	t.Helper()

	deadline := time.After(waitTimeout)
	for {
		select {
		case <-deadline:
			require.FailNow(t, "runs weren't finished in time", "supplier %s", supplierID)
		case <-time.After(250 * time.Millisecond):
		}

		runs := storagetesting.GetRuns(t, queryable, supplierID)
		finished := lo.Filter(runs, func(run pgmodels.Run, _ int) bool { return run.FinishedAt != nil })
		if len(finished) >= n {
			return storage.FromDBRun(&finished[len(finished)-1])
		}
	}
}

// PrepareMockedHTTPServer is helper function for mocking http srv and client.
// Returns function for setting feed file to return, feed number is from 0 to len(feedFiles) exclusive.
func PrepareMockedHTTPServer(t *testing.T, feedFiles [][]byte, statusCode int) (*httptest.Server, func(int)) {
	t.Helper()

	var feedFileToReturnIx atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Add(contentType, "application/xml")
		wrt.WriteHeader(statusCode)
		_, _ = wrt.Write(feedFiles[feedFileToReturnIx.Load()])
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, func(i int) { feedFileToReturnIx.Store(int32(i)) }
}

// DeleteRMQQueue is helper function for deleting RMQ queue after test is finished.
func DeleteRMQQueue(t *testing.T, channel *amqp.Channel, queueName string) {
	t.Helper()

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// GenerateTestData generates n feed records with IDs in [1;n]. Every fifth record has SkippedCategory.
func GenerateTestData(t *testing.T, n int) []models.FeedRecord {
	t.Helper()

	results := make([]models.FeedRecord, n)

	for ix := range n {
		id := ix + 1
		results[ix] = modelstesting.FakeFeedRecord(func(r *models.FeedRecord) {
			r.ID = fmt.Sprint(id)
			r.Name = fmt.Sprintf("Product %d", id)
			r.RawCategory = SelectedCategory
			if id%5 == 0 {
				r.RawCategory = SkippedCategory
			}
			r.RetailPrice = fmt.Sprintf("%d.00", 10+id)
			r.WebOfferPrice = fmt.Sprintf("%d.50", 5+id)
			r.Attributes = nil
		})
	}

	return results
}

type standardFeed struct {
	XMLName  xml.Name          `xml:"products"`
	Products []standardProduct `xml:"product"`
}

type standardProduct struct {
	ID           string   `xml:"id"`
	Name         string   `xml:"name"`
	Description  string   `xml:"description"`
	Category     string   `xml:"category"`
	Quantity     int      `xml:"quantity"`
	Price        string   `xml:"price"`
	OfferPrice   string   `xml:"offer_price"`
	Images       []string `xml:"images>image"`
	SKU          *string  `xml:"sku"`
	Model        *string  `xml:"model"`
	EAN          *string  `xml:"ean"`
	Manufacturer *string  `xml:"manufacturer"`
	URL          *string  `xml:"url"`
}

// RecordsToXML is helper function which converts records to standard dialect feed and returns it as byte slice.
func RecordsToXML(t *testing.T, records []models.FeedRecord) []byte {
	t.Helper()

	feed := standardFeed{
		Products: lo.Map(records, func(r models.FeedRecord, _ int) standardProduct {
			return standardProduct{
				ID:           r.ID,
				Name:         r.Name,
				Description:  r.Description,
				Category:     r.RawCategory,
				Quantity:     r.Stock,
				Price:        r.RetailPrice,
				OfferPrice:   r.WebOfferPrice,
				Images:       r.Images,
				SKU:          r.SKU,
				Model:        r.Model,
				EAN:          r.EAN,
				Manufacturer: r.Manufacturer,
				URL:          r.URL,
			}
		}),
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	encoder := xml.NewEncoder(&buf)

	if err := encoder.Encode(feed); err != nil {
		require.FailNow(t, "can't encode feed to xml", err)
	}

	if err := encoder.Close(); err != nil {
		require.FailNow(t, "can't close xml encoder", err)
	}

	return buf.Bytes()
}

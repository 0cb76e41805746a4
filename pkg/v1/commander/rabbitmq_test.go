package commander_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/MichalMitros/supplier-feed-sync/pkg/v1/commander"
	"github.com/MichalMitros/supplier-feed-sync/pkg/v1/commander/mocks"
	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitRabbitMQSenderSend(t *testing.T) {
	supplierID := faker.UUIDHyphenated()
	body := []byte(fmt.Sprintf(`{"supplierId":"%s"}`, supplierID))
	routingKey := faker.Word()

	tests := map[string]struct {
		publisherError error
		wantErr        error
	}{
		"ok": {},
		"publisher error": {
			publisherError: assert.AnError,
			wantErr:        assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			publisher := mocks.NewRabbitMQPublisher(t)
			publisher.On("Publish", mock.Anything, routingKey, body).
				Run(func(args mock.Arguments) {
					_, ok := args.Get(0).(context.Context).Deadline()
					assert.True(t, ok, "should publish with deadline")
				}).
				Return(tt.publisherError)

			sender := commander.NewRabbitMQSender(publisher, routingKey)
			err := sender.Send(context.TODO(), body)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}

package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/rabbitmq"
	"github.com/MichalMitros/supplier-feed-sync/pkg/v1/commander"
	"github.com/rs/zerolog"
)

//go:generate mockery --name QuickSyncer --filename quick_syncer.go
//go:generate mockery --name Consumer --filename consumer.go

// QuickSyncer replays supplier's last category selection.
type QuickSyncer interface {
	QuickSync(ctx context.Context, supplierID string) (*models.Run, error)
}

// Consumer consumes queue messages.
type Consumer interface {
	Consume(ctx context.Context, queue string, handler rabbitmq.HandlerFunc) (<-chan error, error)
}

// RMQHandler handles RMQ quick sync commands.
type RMQHandler struct {
	consumer Consumer
	syncer   QuickSyncer
	logger   *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(consumer Consumer, syncer QuickSyncer, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		consumer: consumer,
		syncer:   syncer,
		logger:   logger,
	}
}

// Start starts consuming and handling quick sync commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.consumer.Consume(ctx, queue, h.Handle)
	if err != nil {
		return fmt.Errorf("can't consume queue %s: %w", queue, err)
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

// Handle runs quick sync requested by message.
func (h *RMQHandler) Handle(ctx context.Context, message []byte) error {
	cmd, err := decodeMessage(message)
	if err != nil {
		return err
	}

	h.logger.Debug().
		Str("supplierId", cmd.SupplierID).
		Msg("quick sync started")

	run, err := h.syncer.QuickSync(ctx, cmd.SupplierID)
	if err != nil {
		return fmt.Errorf("quick sync failed: %w", err)
	}

	h.logger.Debug().
		Str("supplierId", cmd.SupplierID).
		Int("runId", run.ID).
		Msg("quick sync finished")

	return nil
}

func decodeMessage(msg []byte) (*commander.QuickSyncCommand, error) {
	var cmd commander.QuickSyncCommand
	if err := json.Unmarshal(msg, &cmd); err != nil {
		return nil, fmt.Errorf("can't decode quick sync command: %w", err)
	}

	if strings.TrimSpace(cmd.SupplierID) == "" {
		return nil, fmt.Errorf("can't decode quick sync command: %w", commander.ErrEmptySupplierID)
	}

	return &cmd, nil
}

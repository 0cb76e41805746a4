package commander

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

//go:generate mockery --name Sender --filename sender.go

// ErrEmptySupplierID is returned when command is sent without supplier id.
var ErrEmptySupplierID = errors.New("empty supplier id")

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// QuickSyncCommand is command requesting quick sync of supplier's feed.
type QuickSyncCommand struct {
	SupplierID string `json:"supplierId"`
}

// QuickSyncCommander sends quick sync commands.
type QuickSyncCommander struct {
	sender Sender
}

// NewQuickSyncCommander returns new QuickSyncCommander using provided sender for sending messages.
func NewQuickSyncCommander(sender Sender) QuickSyncCommander {
	return QuickSyncCommander{
		sender: sender,
	}
}

// SendQuickSyncCommand sends quick sync command for supplier with provided id.
func (c QuickSyncCommander) SendQuickSyncCommand(ctx context.Context, supplierID string) error {
	if strings.TrimSpace(supplierID) == "" {
		return ErrEmptySupplierID
	}

	cmdMsg, err := json.Marshal(QuickSyncCommand{SupplierID: supplierID})
	if err != nil {
		return fmt.Errorf("can't marshal quick sync command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}

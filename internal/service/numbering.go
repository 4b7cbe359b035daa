package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Mouhib912/Event-Management-Platform/internal/model"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"

	"gorm.io/gorm"
)

func nextPurchaseNumber(ctx context.Context, seq repository.SequenceRepository, tx *gorm.DB, now time.Time) (string, error) {
	n, err := seq.Next(ctx, tx, model.SequencePurchase, "purchases")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("BC-%d-%03d", now.Year(), n), nil
}

func nextInvoiceNumber(ctx context.Context, seq repository.SequenceRepository, tx *gorm.DB, now time.Time) (string, error) {
	n, err := seq.Next(ctx, tx, model.SequenceInvoice, "invoices")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d-%04d", model.DevisPrefix, now.Year(), n), nil
}

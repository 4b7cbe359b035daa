package repository

import (
	"context"
	"errors"

	"github.com/Mouhib912/Event-Management-Platform/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SequenceRepository hands out per-name monotonic numbers. Next must run
// inside the transaction that persists the numbered document, so a rolled
// back document also gives its number back.
type SequenceRepository interface {
	Next(ctx context.Context, tx *gorm.DB, name, seedTable string) (int64, error)
}

type sequenceRepo struct{ db *gorm.DB }

func NewSequenceRepository(db *gorm.DB) SequenceRepository { return &sequenceRepo{db: db} }

// Next increments and returns the counter called name. The first call for a
// name seeds the counter with the row count of seedTable so numbering
// continues from documents created before the counter existed.
func (r *sequenceRepo) Next(ctx context.Context, tx *gorm.DB, name, seedTable string) (int64, error) {
	db := session(ctx, r.db, tx)

	var seq model.DocumentSequence
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("name = ?", name).Take(&seq).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		var existing int64
		if seedTable != "" {
			if err := db.Table(seedTable).Count(&existing).Error; err != nil {
				return 0, err
			}
		}
		seed := model.DocumentSequence{Name: name, Value: existing}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
			return 0, err
		}
	case err != nil:
		return 0, err
	}

	// The UPDATE holds the row lock until the surrounding transaction ends.
	if err := db.Model(&model.DocumentSequence{}).
		Where("name = ?", name).
		UpdateColumn("value", gorm.Expr("value + ?", 1)).Error; err != nil {
		return 0, err
	}
	if err := db.Where("name = ?", name).Take(&seq).Error; err != nil {
		return 0, err
	}
	return seq.Value, nil
}

package repository

import (
	"context"

	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"

	"gorm.io/gorm"
)

type ContactRepository interface {
	DB() *gorm.DB
	Create(ctx context.Context, tx *gorm.DB, c *model.Contact) error
	FindByID(ctx context.Context, id uint) (*model.Contact, error)
	FindByName(ctx context.Context, tx *gorm.DB, name string) (*model.Contact, error)
	List(ctx context.Context, filter dto.ContactFilter) ([]model.Contact, error)
	ListEnterprises(ctx context.Context) ([]model.Contact, error)
	ListEmployees(ctx context.Context, enterpriseID uint) ([]model.Contact, error)
	CountEmployees(ctx context.Context, enterpriseIDs []uint) (map[uint]int64, error)
	Update(ctx context.Context, c *model.Contact) error
	Delete(ctx context.Context, id uint) error
}

type contactRepo struct{ db *gorm.DB }

func NewContactRepository(db *gorm.DB) ContactRepository { return &contactRepo{db: db} }

func (r *contactRepo) DB() *gorm.DB { return r.db }

func (r *contactRepo) Create(ctx context.Context, tx *gorm.DB, c *model.Contact) error {
	return translateError(session(ctx, r.db, tx).Omit("Enterprise").Create(c).Error)
}

func (r *contactRepo) FindByID(ctx context.Context, id uint) (*model.Contact, error) {
	var c model.Contact
	if err := r.db.WithContext(ctx).Preload("Enterprise").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contactRepo) FindByName(ctx context.Context, tx *gorm.DB, name string) (*model.Contact, error) {
	var c model.Contact
	if err := session(ctx, r.db, tx).Where("name = ?", name).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contactRepo) List(ctx context.Context, filter dto.ContactFilter) ([]model.Contact, error) {
	q := r.db.WithContext(ctx).Preload("Enterprise")
	if filter.Type != "" && filter.Type != "all" {
		q = q.Where("contact_type = ?", filter.Type)
	}
	if filter.Nature != "" && filter.Nature != "all" {
		q = q.Where("contact_nature = ?", filter.Nature)
	}
	var list []model.Contact
	err := q.Order("id asc").Find(&list).Error
	return list, err
}

func (r *contactRepo) ListEnterprises(ctx context.Context) ([]model.Contact, error) {
	var list []model.Contact
	err := r.db.WithContext(ctx).
		Where("contact_nature = ?", model.ContactNatureEnterprise).
		Order("name asc").
		Find(&list).Error
	return list, err
}

func (r *contactRepo) ListEmployees(ctx context.Context, enterpriseID uint) ([]model.Contact, error) {
	var list []model.Contact
	err := r.db.WithContext(ctx).Where("enterprise_id = ?", enterpriseID).Order("name asc").Find(&list).Error
	return list, err
}

func (r *contactRepo) CountEmployees(ctx context.Context, enterpriseIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(enterpriseIDs))
	if len(enterpriseIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		EnterpriseID uint
		Total        int64
	}
	err := r.db.WithContext(ctx).Model(&model.Contact{}).
		Select("enterprise_id, count(*) as total").
		Where("enterprise_id IN ?", enterpriseIDs).
		Group("enterprise_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.EnterpriseID] = row.Total
	}
	return counts, nil
}

func (r *contactRepo) Update(ctx context.Context, c *model.Contact) error {
	return translateError(r.db.WithContext(ctx).Omit("Enterprise").Save(c).Error)
}

// Delete detaches the enterprise's employees before removing the contact.
func (r *contactRepo) Delete(ctx context.Context, id uint) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Contact{}).Where("enterprise_id = ?", id).
			Update("enterprise_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Contact{}, id).Error
	}))
}

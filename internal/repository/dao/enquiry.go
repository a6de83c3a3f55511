package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrEnquiryNotFound      = errors.New("enquiry not found")
	ErrEnquiryFieldNotFound = errors.New("enquiry field not found")
	ErrEnquiryMobileExists  = errors.New("an enquiry with this mobile number already exists")
)

type StallEnquiryField struct {
	ID uint `gorm:"primaryKey"`

	FieldLabel        string `gorm:"not null"`
	FieldType         string `gorm:"not null"`
	Options           string `gorm:"type:jsonb"`
	IsRequired        bool   `gorm:"not null;default:false"`
	IsActive          bool   `gorm:"not null;default:true"`
	DisplayOrder      int    `gorm:"not null;default:0"`
	ShowConditionalOn *uint
	ConditionalValue  string

	CreatedAt time.Time `gorm:"not null"`
}

type StallEnquiry struct {
	ID uint `gorm:"primaryKey"`

	Name         string `gorm:"not null"`
	Mobile       string `gorm:"not null;uniqueIndex:uni_stall_enquiries_mobile"`
	PanchayathID *uint  `gorm:"index"`
	WardID       *uint
	Responses    string `gorm:"type:jsonb;not null"`
	Products     string `gorm:"type:jsonb;not null"`
	Status       string `gorm:"not null;default:pending"`

	CreatedAt time.Time `gorm:"not null"`
}

type EnquiryDAO struct {
	db *gorm.DB
}

func NewEnquiryDAO(db *gorm.DB) *EnquiryDAO {
	return &EnquiryDAO{
		db: db,
	}
}

func (d *EnquiryDAO) InsertField(ctx context.Context, field StallEnquiryField) (StallEnquiryField, error) {
	result := d.db.WithContext(ctx).Create(&field)
	if result.Error != nil {
		return StallEnquiryField{}, result.Error
	}

	return field, nil
}

func (d *EnquiryDAO) FindFields(ctx context.Context, activeOnly bool) ([]StallEnquiryField, error) {
	var fields []StallEnquiryField

	query := d.db.WithContext(ctx).Order("display_order")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	result := query.Find(&fields)
	if result.Error != nil {
		return nil, result.Error
	}

	return fields, nil
}

func (d *EnquiryDAO) UpdateField(ctx context.Context, field StallEnquiryField) (StallEnquiryField, error) {
	result := d.db.WithContext(ctx).Save(&field)
	if result.Error != nil {
		return StallEnquiryField{}, result.Error
	}

	return field, nil
}

func (d *EnquiryDAO) DeleteField(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Delete(&StallEnquiryField{}, id).Error
}

func (d *EnquiryDAO) Insert(ctx context.Context, enquiry StallEnquiry) (StallEnquiry, error) {
	result := d.db.WithContext(ctx).Create(&enquiry)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "uni_stall_enquiries_mobile") {
			return StallEnquiry{}, ErrEnquiryMobileExists
		}

		return StallEnquiry{}, result.Error
	}

	return enquiry, nil
}

func (d *EnquiryDAO) FindByID(ctx context.Context, id uint) (StallEnquiry, error) {
	var enquiry StallEnquiry

	result := d.db.WithContext(ctx).First(&enquiry, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StallEnquiry{}, ErrEnquiryNotFound
		}

		return StallEnquiry{}, result.Error
	}

	return enquiry, nil
}

func (d *EnquiryDAO) FindByMobile(ctx context.Context, mobile string) (StallEnquiry, error) {
	var enquiry StallEnquiry

	result := d.db.WithContext(ctx).Where("mobile = ?", mobile).First(&enquiry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StallEnquiry{}, ErrEnquiryNotFound
		}

		return StallEnquiry{}, result.Error
	}

	return enquiry, nil
}

func (d *EnquiryDAO) FindAll(ctx context.Context) ([]StallEnquiry, error) {
	var enquiries []StallEnquiry

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&enquiries)
	if result.Error != nil {
		return nil, result.Error
	}

	return enquiries, nil
}

func (d *EnquiryDAO) Update(ctx context.Context, enquiry StallEnquiry) (StallEnquiry, error) {
	result := d.db.WithContext(ctx).Save(&enquiry)
	if result.Error != nil {
		return StallEnquiry{}, result.Error
	}

	return enquiry, nil
}

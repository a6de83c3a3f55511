package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrPanchayathNotFound = errors.New("panchayath not found")
	ErrWardNotFound       = errors.New("ward not found")
)

type Panchayath struct {
	ID uint `gorm:"primaryKey"`

	Name string `gorm:"not null;unique"`

	CreatedAt time.Time `gorm:"not null"`
}

type Ward struct {
	ID uint `gorm:"primaryKey"`

	PanchayathID uint `gorm:"not null;index"`
	WardNumber   int  `gorm:"not null"`
	WardName     string

	CreatedAt time.Time `gorm:"not null"`
}

type SurveyDAO struct {
	db *gorm.DB
}

func NewSurveyDAO(db *gorm.DB) *SurveyDAO {
	return &SurveyDAO{
		db: db,
	}
}

// InsertPanchayath creates the panchayath row and its ward batch. Wards
// are numbered 1..wardCount with no gaps.
func (d *SurveyDAO) InsertPanchayath(ctx context.Context, panchayath Panchayath, wardCount int) (Panchayath, error) {
	result := d.db.WithContext(ctx).Create(&panchayath)
	if result.Error != nil {
		return Panchayath{}, result.Error
	}

	wards := make([]Ward, 0, wardCount)
	for n := 1; n <= wardCount; n++ {
		wards = append(wards, Ward{
			PanchayathID: panchayath.ID,
			WardNumber:   n,
		})
	}

	if err := d.db.WithContext(ctx).Create(&wards).Error; err != nil {
		return Panchayath{}, err
	}

	return panchayath, nil
}

func (d *SurveyDAO) FindPanchayaths(ctx context.Context) ([]Panchayath, error) {
	var panchayaths []Panchayath

	result := d.db.WithContext(ctx).Order("name").Find(&panchayaths)
	if result.Error != nil {
		return nil, result.Error
	}

	return panchayaths, nil
}

func (d *SurveyDAO) FindPanchayathByID(ctx context.Context, id uint) (Panchayath, error) {
	var panchayath Panchayath

	result := d.db.WithContext(ctx).First(&panchayath, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Panchayath{}, ErrPanchayathNotFound
		}

		return Panchayath{}, result.Error
	}

	return panchayath, nil
}

func (d *SurveyDAO) DeletePanchayath(ctx context.Context, id uint) error {
	if err := d.db.WithContext(ctx).Where("panchayath_id = ?", id).Delete(&Ward{}).Error; err != nil {
		return err
	}

	return d.db.WithContext(ctx).Delete(&Panchayath{}, id).Error
}

func (d *SurveyDAO) FindWardsByPanchayathID(ctx context.Context, panchayathID uint) ([]Ward, error) {
	var wards []Ward

	result := d.db.WithContext(ctx).
		Where("panchayath_id = ?", panchayathID).
		Order("ward_number").
		Find(&wards)
	if result.Error != nil {
		return nil, result.Error
	}

	return wards, nil
}

func (d *SurveyDAO) UpdateWard(ctx context.Context, ward Ward) (Ward, error) {
	result := d.db.WithContext(ctx).Save(&ward)
	if result.Error != nil {
		return Ward{}, result.Error
	}

	return ward, nil
}

func (d *SurveyDAO) FindWardByID(ctx context.Context, id uint) (Ward, error) {
	var ward Ward

	result := d.db.WithContext(ctx).First(&ward, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Ward{}, ErrWardNotFound
		}

		return Ward{}, result.Error
	}

	return ward, nil
}

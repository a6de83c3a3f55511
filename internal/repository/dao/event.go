package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrProgramNotFound    = errors.New("program not found")
)

type TeamMember struct {
	ID uint `gorm:"primaryKey"`

	Name   string `gorm:"not null"`
	Email  string
	Phone  string
	Role   string `gorm:"not null"`
	Type   string `gorm:"not null"` // "official" or "volunteer"
	Shift  string
	Duties string

	CreatedAt time.Time `gorm:"not null"`
}

type Program struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Date        string `gorm:"not null"`
	Time        string `gorm:"not null"`
	Venue       string `gorm:"not null"`
	Description string

	CreatedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) InsertTeamMember(ctx context.Context, member TeamMember) (TeamMember, error) {
	result := d.db.WithContext(ctx).Create(&member)
	if result.Error != nil {
		return TeamMember{}, result.Error
	}

	return member, nil
}

func (d *EventDAO) FindTeamMembers(ctx context.Context) ([]TeamMember, error) {
	var members []TeamMember

	result := d.db.WithContext(ctx).Order("name").Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}

	return members, nil
}

func (d *EventDAO) DeleteTeamMember(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Delete(&TeamMember{}, id).Error
}

func (d *EventDAO) InsertProgram(ctx context.Context, program Program) (Program, error) {
	result := d.db.WithContext(ctx).Create(&program)
	if result.Error != nil {
		return Program{}, result.Error
	}

	return program, nil
}

func (d *EventDAO) FindPrograms(ctx context.Context) ([]Program, error) {
	var programs []Program

	result := d.db.WithContext(ctx).Order("date, time").Find(&programs)
	if result.Error != nil {
		return nil, result.Error
	}

	return programs, nil
}

func (d *EventDAO) FindProgramByID(ctx context.Context, id uint) (Program, error) {
	var program Program

	result := d.db.WithContext(ctx).First(&program, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Program{}, ErrProgramNotFound
		}

		return Program{}, result.Error
	}

	return program, nil
}

func (d *EventDAO) UpdateProgram(ctx context.Context, program Program) (Program, error) {
	result := d.db.WithContext(ctx).Save(&program)
	if result.Error != nil {
		return Program{}, result.Error
	}

	return program, nil
}

func (d *EventDAO) DeleteProgram(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Delete(&Program{}, id).Error
}

package userprofile

import (
	"context"

	"investments-api/src/database"
	"investments-api/src/model"
)

type Repository interface {
	Create(ctx context.Context, profile *model.UserProfile) error
	GetById(ctx context.Context, id int64) (*model.UserProfile, error)
	List(ctx context.Context, limit, offset int) ([]model.UserProfile, error)
	Update(ctx context.Context, profile *model.UserProfile) error
	Delete(ctx context.Context, id int64) error
}

type gormRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, profile *model.UserProfile) error {
	db, cancel := r.db.Session(ctx)
	defer cancel()

	return database.TranslateError(db.Omit("Investments").Create(profile).Error)
}

func (r *gormRepository) GetById(ctx context.Context, id int64) (*model.UserProfile, error) {
	db, cancel := r.db.Session(ctx)
	defer cancel()

	var profile model.UserProfile
	if err := db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &profile, nil
}

func (r *gormRepository) List(ctx context.Context, limit, offset int) ([]model.UserProfile, error) {
	db, cancel := r.db.Session(ctx)
	defer cancel()

	var profiles []model.UserProfile
	err := db.Order("id").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, database.TranslateError(err)
}

func (r *gormRepository) Update(ctx context.Context, profile *model.UserProfile) error {
	db, cancel := r.db.Session(ctx)
	defer cancel()

	result := db.Model(profile).
		Select("Email", "Cpf", "Data", "UpdatedAt").
		Updates(profile)
	if result.Error != nil {
		return database.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// Delete removes the profile; the foreign key cascades to its investments.
func (r *gormRepository) Delete(ctx context.Context, id int64) error {
	db, cancel := r.db.Session(ctx)
	defer cancel()

	result := db.Delete(&model.UserProfile{}, id)
	if result.Error != nil {
		return database.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

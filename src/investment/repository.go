package investment

import (
	"context"

	"investments-api/src/database"
	"investments-api/src/model"
)

type Repository interface {
	Create(ctx context.Context, investment *model.Investment) error
	GetById(ctx context.Context, id int64) (*model.Investment, error)
	List(ctx context.Context, filter Filter) ([]model.Investment, error)
	Update(ctx context.Context, investment *model.Investment) error
	Delete(ctx context.Context, id int64) error
	OwnerExists(ctx context.Context, userId int64) (bool, error)
}

// Filter narrows List. A zero UserId lists every owner.
type Filter struct {
	UserId int64
	Limit  int
	Offset int
}

type gormRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, investment *model.Investment) error {
	db, cancel := r.db.Session(ctx)
	defer cancel()

	return database.TranslateError(db.Create(investment).Error)
}

func (r *gormRepository) GetById(ctx context.Context, id int64) (*model.Investment, error) {
	db, cancel := r.db.Session(ctx)
	defer cancel()

	var investment model.Investment
	if err := db.First(&investment, "id = ?", id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &investment, nil
}

func (r *gormRepository) List(ctx context.Context, filter Filter) ([]model.Investment, error) {
	db, cancel := r.db.Session(ctx)
	defer cancel()

	query := db.Order("id")
	if filter.UserId != 0 {
		query = query.Where("user_id = ?", filter.UserId)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var investments []model.Investment
	err := query.Find(&investments).Error
	return investments, database.TranslateError(err)
}

func (r *gormRepository) Update(ctx context.Context, investment *model.Investment) error {
	db, cancel := r.db.Session(ctx)
	defer cancel()

	result := db.Model(investment).
		Select("UserId", "UserCpf", "Type", "Code", "Amount", "Operation", "UpdatedAt").
		Updates(investment)
	if result.Error != nil {
		return database.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *gormRepository) Delete(ctx context.Context, id int64) error {
	db, cancel := r.db.Session(ctx)
	defer cancel()

	result := db.Delete(&model.Investment{}, id)
	if result.Error != nil {
		return database.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *gormRepository) OwnerExists(ctx context.Context, userId int64) (bool, error) {
	db, cancel := r.db.Session(ctx)
	defer cancel()

	var count int64
	err := db.Model(&model.UserProfile{}).Where("id = ?", userId).Count(&count).Error
	return count > 0, database.TranslateError(err)
}

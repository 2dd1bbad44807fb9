package bowl

import (
	"Bowl-Builder-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	BowlRepository interface {
		CreateBowl(ctx context.Context, bowl *entities.Bowl) error
		GetBowlByID(ctx context.Context, id string) (*entities.Bowl, error)
		UpdateBowl(ctx context.Context, bowl *entities.Bowl) error
		DeleteBowl(ctx context.Context, id string) error
		GetWorkingBowl(ctx context.Context, userID string) (*entities.Bowl, error)
		GetSavedBowls(ctx context.Context, userID string) ([]*entities.Bowl, error)

		GetLines(ctx context.Context, bowlID string) ([]*entities.BowlIngredient, error)
		UpsertLine(ctx context.Context, line *entities.BowlIngredient) error
		DeleteLine(ctx context.Context, bowlID, ingredientID string) error
	}

	bowlRepository struct {
		db *gorm.DB
	}
)

func NewBowlRepository(db *gorm.DB) BowlRepository {
	return &bowlRepository{db: db}
}

func (r *bowlRepository) CreateBowl(ctx context.Context, bowl *entities.Bowl) error {
	return r.db.WithContext(ctx).Create(bowl).Error
}

func (r *bowlRepository) GetBowlByID(ctx context.Context, id string) (*entities.Bowl, error) {
	var bowl entities.Bowl
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&bowl).Error; err != nil {
		return nil, err
	}
	return &bowl, nil
}

func (r *bowlRepository) UpdateBowl(ctx context.Context, bowl *entities.Bowl) error {
	return r.db.WithContext(ctx).Save(bowl).Error
}

// DeleteBowl removes the bowl and its lines in one transaction so no
// orphaned lines survive a partial failure.
func (r *bowlRepository) DeleteBowl(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bowl_id = ?", id).Delete(&entities.BowlIngredient{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Bowl{}).Error
	})
}

func (r *bowlRepository) GetWorkingBowl(ctx context.Context, userID string) (*entities.Bowl, error) {
	var bowl entities.Bowl
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND saved = ?", userID, false).
		First(&bowl).Error; err != nil {
		return nil, err
	}
	return &bowl, nil
}

func (r *bowlRepository) GetSavedBowls(ctx context.Context, userID string) ([]*entities.Bowl, error) {
	var bowls []*entities.Bowl
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND saved = ?", userID, true).
		Order("created_at asc").
		Find(&bowls).Error; err != nil {
		return nil, err
	}
	return bowls, nil
}

func (r *bowlRepository) GetLines(ctx context.Context, bowlID string) ([]*entities.BowlIngredient, error) {
	var lines []*entities.BowlIngredient
	if err := r.db.WithContext(ctx).
		Where("bowl_id = ?", bowlID).
		Order("created_at asc").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// UpsertLine keeps at most one line per (bowl, ingredient): an existing line
// gets the new quantity instead of a duplicate row.
func (r *bowlRepository) UpsertLine(ctx context.Context, line *entities.BowlIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entities.BowlIngredient
		err := tx.Where("bowl_id = ? AND ingredient_id = ?", line.BowlID, line.IngredientID).
			First(&existing).Error
		if err == nil {
			existing.Quantity = line.Quantity
			return tx.Save(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(line).Error
	})
}

func (r *bowlRepository) DeleteLine(ctx context.Context, bowlID, ingredientID string) error {
	result := r.db.WithContext(ctx).
		Where("bowl_id = ? AND ingredient_id = ?", bowlID, ingredientID).
		Delete(&entities.BowlIngredient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

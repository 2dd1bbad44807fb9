package bowl

import (
	"Bowl-Builder-Backend/domain"
	"Bowl-Builder-Backend/entities"
	"Bowl-Builder-Backend/pkg/ingredient"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	BowlService interface {
		AuthorizeBowl(ctx context.Context, bowlID, userID string) (*entities.Bowl, error)
		CreateBowl(ctx context.Context, req domain.CreateBowlRequest, userID string) (domain.BowlResponse, error)
		GetSavedBowls(ctx context.Context, userID string) ([]domain.BowlResponse, error)
		GetOrCreateWorkingBowl(ctx context.Context, userID string) (domain.BowlResponse, error)
		ResetWorkingBowl(ctx context.Context, userID string) error
		SaveBowl(ctx context.Context, bowlID, userID string) (domain.BowlResponse, error)
		RenameBowl(ctx context.Context, bowlID string, req domain.RenameBowlRequest, userID string) (domain.BowlResponse, error)
		DeleteBowl(ctx context.Context, bowlID, userID string) error
		AddIngredient(ctx context.Context, bowlID string, req domain.UpsertLineRequest, userID string) error
		RemoveIngredient(ctx context.Context, bowlID, ingredientID, userID string) error
	}

	bowlService struct {
		bowlRepository       BowlRepository
		ingredientRepository ingredient.IngredientRepository
	}
)

func NewBowlService(bowlRepository BowlRepository, ingredientRepository ingredient.IngredientRepository) BowlService {
	return &bowlService{
		bowlRepository:       bowlRepository,
		ingredientRepository: ingredientRepository,
	}
}

// AuthorizeBowl is the single ownership gate: every bowl-scoped operation
// resolves the bowl through here before reading or mutating anything.
func (s *bowlService) AuthorizeBowl(ctx context.Context, bowlID, userID string) (*entities.Bowl, error) {
	bowl, err := s.bowlRepository.GetBowlByID(ctx, bowlID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBowlNotFound
		}
		return nil, err
	}

	if bowl.UserID.String() != userID {
		return nil, domain.ErrForbidden
	}

	return bowl, nil
}

func (s *bowlService) CreateBowl(ctx context.Context, req domain.CreateBowlRequest, userID string) (domain.BowlResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.BowlResponse{}, domain.ErrEmptyBowlName
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.BowlResponse{}, domain.ErrParseUUID
	}

	bowl := &entities.Bowl{
		ID:     uuid.New(),
		Name:   name,
		UserID: userUUID,
		Saved:  false,
	}

	if err := s.bowlRepository.CreateBowl(ctx, bowl); err != nil {
		return domain.BowlResponse{}, err
	}

	return toBowlResponse(bowl), nil
}

func (s *bowlService) GetSavedBowls(ctx context.Context, userID string) ([]domain.BowlResponse, error) {
	bowls, err := s.bowlRepository.GetSavedBowls(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.BowlResponse, 0, len(bowls))
	for _, b := range bowls {
		response = append(response, toBowlResponse(b))
	}
	return response, nil
}

// GetOrCreateWorkingBowl returns the user's single unsaved bowl, creating it
// lazily on first use. Repeated calls without an intervening save always
// yield the same bowl.
func (s *bowlService) GetOrCreateWorkingBowl(ctx context.Context, userID string) (domain.BowlResponse, error) {
	bowl, err := s.bowlRepository.GetWorkingBowl(ctx, userID)
	if err == nil {
		return toBowlResponse(bowl), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.BowlResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.BowlResponse{}, domain.ErrParseUUID
	}

	bowl = &entities.Bowl{
		ID:     uuid.New(),
		Name:   domain.DefaultBowlName,
		UserID: userUUID,
		Saved:  false,
	}
	if err := s.bowlRepository.CreateBowl(ctx, bowl); err != nil {
		return domain.BowlResponse{}, err
	}

	return toBowlResponse(bowl), nil
}

func (s *bowlService) ResetWorkingBowl(ctx context.Context, userID string) error {
	bowl, err := s.bowlRepository.GetWorkingBowl(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.bowlRepository.DeleteBowl(ctx, bowl.ID.String())
}

// SaveBowl marks a bowl saved. Saving an already-saved bowl is a no-op.
func (s *bowlService) SaveBowl(ctx context.Context, bowlID, userID string) (domain.BowlResponse, error) {
	bowl, err := s.AuthorizeBowl(ctx, bowlID, userID)
	if err != nil {
		return domain.BowlResponse{}, err
	}

	if bowl.Saved {
		return toBowlResponse(bowl), nil
	}

	bowl.Saved = true
	if err := s.bowlRepository.UpdateBowl(ctx, bowl); err != nil {
		return domain.BowlResponse{}, err
	}

	return toBowlResponse(bowl), nil
}

func (s *bowlService) RenameBowl(ctx context.Context, bowlID string, req domain.RenameBowlRequest, userID string) (domain.BowlResponse, error) {
	bowl, err := s.AuthorizeBowl(ctx, bowlID, userID)
	if err != nil {
		return domain.BowlResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = domain.DefaultBowlName
	}

	bowl.Name = name
	if err := s.bowlRepository.UpdateBowl(ctx, bowl); err != nil {
		return domain.BowlResponse{}, err
	}

	return toBowlResponse(bowl), nil
}

func (s *bowlService) DeleteBowl(ctx context.Context, bowlID, userID string) error {
	bowl, err := s.AuthorizeBowl(ctx, bowlID, userID)
	if err != nil {
		return err
	}
	return s.bowlRepository.DeleteBowl(ctx, bowl.ID.String())
}

func (s *bowlService) AddIngredient(ctx context.Context, bowlID string, req domain.UpsertLineRequest, userID string) error {
	bowl, err := s.AuthorizeBowl(ctx, bowlID, userID)
	if err != nil {
		return err
	}

	if req.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	ing, err := s.ingredientRepository.GetIngredientByID(ctx, req.IngredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	line := &entities.BowlIngredient{
		ID:           uuid.New(),
		BowlID:       bowl.ID,
		IngredientID: ing.ID,
		Quantity:     req.Quantity,
	}
	return s.bowlRepository.UpsertLine(ctx, line)
}

func (s *bowlService) RemoveIngredient(ctx context.Context, bowlID, ingredientID, userID string) error {
	bowl, err := s.AuthorizeBowl(ctx, bowlID, userID)
	if err != nil {
		return err
	}

	if err := s.bowlRepository.DeleteLine(ctx, bowl.ID.String(), ingredientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLineNotFound
		}
		return err
	}
	return nil
}

func toBowlResponse(bowl *entities.Bowl) domain.BowlResponse {
	return domain.BowlResponse{
		ID:     bowl.ID.String(),
		Name:   bowl.Name,
		UserID: bowl.UserID.String(),
		Saved:  bowl.Saved,
	}
}

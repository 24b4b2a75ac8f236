package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/daianstore/tienda-api/internal/application/dto"
	"github.com/daianstore/tienda-api/internal/domain"
	"github.com/daianstore/tienda-api/internal/domain/entity"
	"github.com/daianstore/tienda-api/internal/domain/repository"
)

// SlideUseCase casos de uso CRUD para los slides del carrusel de portada.
type SlideUseCase struct {
	repo repository.HeroSlideRepository
}

// NewSlideUseCase construye el caso de uso.
func NewSlideUseCase(repo repository.HeroSlideRepository) *SlideUseCase {
	return &SlideUseCase{repo: repo}
}

// Create crea un slide. IsActive por defecto true si no se envía.
func (uc *SlideUseCase) Create(ctx context.Context, in dto.CreateSlideRequest) (*dto.SlideResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	slide := &entity.HeroSlide{
		ID:         uuid.New().String(),
		Title:      in.Title,
		Subtitle:   in.Subtitle,
		ButtonText: in.ButtonText,
		ButtonLink: in.ButtonLink,
		Image:      in.Image,
		Badge:      in.Badge,
		IsActive:   isActive,
		SortOrder:  in.SortOrder,
	}
	if err := uc.repo.Create(ctx, slide); err != nil {
		return nil, err
	}
	return toSlideResponse(slide), nil
}

// List lista los slides por sort_order; activeOnly filtra los inactivos (portada).
func (uc *SlideUseCase) List(ctx context.Context, activeOnly bool) ([]dto.SlideResponse, error) {
	list, err := uc.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SlideResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSlideResponse(s))
	}
	return out, nil
}

// Update actualiza un slide (campos opcionales), incluido el toggle is_active.
func (uc *SlideUseCase) Update(ctx context.Context, id string, in dto.UpdateSlideRequest) (*dto.SlideResponse, error) {
	slide, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if slide == nil {
		return nil, domain.ErrSlideNotFound
	}
	if in.Title != nil {
		slide.Title = *in.Title
	}
	if in.Subtitle != nil {
		slide.Subtitle = *in.Subtitle
	}
	if in.ButtonText != nil {
		slide.ButtonText = *in.ButtonText
	}
	if in.ButtonLink != nil {
		slide.ButtonLink = *in.ButtonLink
	}
	if in.Image != nil {
		slide.Image = *in.Image
	}
	if in.Badge != nil {
		slide.Badge = *in.Badge
	}
	if in.IsActive != nil {
		slide.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		slide.SortOrder = *in.SortOrder
	}
	if err := uc.repo.Update(ctx, slide); err != nil {
		return nil, err
	}
	return toSlideResponse(slide), nil
}

// Delete elimina un slide por ID.
func (uc *SlideUseCase) Delete(ctx context.Context, id string) error {
	slide, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if slide == nil {
		return domain.ErrSlideNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toSlideResponse(s *entity.HeroSlide) *dto.SlideResponse {
	return &dto.SlideResponse{
		ID:         s.ID,
		Title:      s.Title,
		Subtitle:   s.Subtitle,
		ButtonText: s.ButtonText,
		ButtonLink: s.ButtonLink,
		Image:      s.Image,
		Badge:      s.Badge,
		IsActive:   s.IsActive,
		SortOrder:  s.SortOrder,
	}
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/daianstore/tienda-api/internal/domain/entity"
	"github.com/daianstore/tienda-api/internal/domain/repository"
)

var _ repository.HeroSlideRepository = (*HeroSlideRepo)(nil)

// HeroSlideRepo implementación de HeroSlideRepository sobre PostgreSQL.
type HeroSlideRepo struct {
	q Querier
}

// NewHeroSlideRepository construye el adaptador de persistencia para slides.
func NewHeroSlideRepository(q Querier) *HeroSlideRepo {
	return &HeroSlideRepo{q: q}
}

// Create persiste un nuevo slide.
func (r *HeroSlideRepo) Create(ctx context.Context, slide *entity.HeroSlide) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO hero_slides (id, title, subtitle, button_text, button_link, image, badge, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)`,
		slide.ID, slide.Title, slide.Subtitle, slide.ButtonText, slide.ButtonLink,
		slide.Image, slide.Badge, slide.IsActive, slide.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("insert slide: %w", err)
	}
	return nil
}

// GetByID obtiene un slide por ID.
func (r *HeroSlideRepo) GetByID(ctx context.Context, id string) (*entity.HeroSlide, error) {
	var s entity.HeroSlide
	var badge *string
	err := r.q.QueryRow(ctx, `
		SELECT id, title, subtitle, button_text, button_link, image, badge, is_active, sort_order
		FROM hero_slides WHERE id = $1`, id,
	).Scan(&s.ID, &s.Title, &s.Subtitle, &s.ButtonText, &s.ButtonLink,
		&s.Image, &badge, &s.IsActive, &s.SortOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get slide: %w", err)
	}
	if badge != nil {
		s.Badge = *badge
	}
	return &s, nil
}

// List lista los slides ordenados por sort_order; activeOnly filtra los inactivos.
func (r *HeroSlideRepo) List(ctx context.Context, activeOnly bool) ([]*entity.HeroSlide, error) {
	query := `
		SELECT id, title, subtitle, button_text, button_link, image, badge, is_active, sort_order
		FROM hero_slides`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order ASC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}
	defer rows.Close()
	var list []*entity.HeroSlide
	for rows.Next() {
		var s entity.HeroSlide
		var badge *string
		if err := rows.Scan(&s.ID, &s.Title, &s.Subtitle, &s.ButtonText, &s.ButtonLink,
			&s.Image, &badge, &s.IsActive, &s.SortOrder); err != nil {
			return nil, fmt.Errorf("scan slide: %w", err)
		}
		if badge != nil {
			s.Badge = *badge
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un slide existente.
func (r *HeroSlideRepo) Update(ctx context.Context, slide *entity.HeroSlide) error {
	_, err := r.q.Exec(ctx, `
		UPDATE hero_slides
		SET title = $2, subtitle = $3, button_text = $4, button_link = $5,
		    image = $6, badge = NULLIF($7, ''), is_active = $8, sort_order = $9
		WHERE id = $1`,
		slide.ID, slide.Title, slide.Subtitle, slide.ButtonText, slide.ButtonLink,
		slide.Image, slide.Badge, slide.IsActive, slide.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("update slide: %w", err)
	}
	return nil
}

// Delete elimina un slide por ID.
func (r *HeroSlideRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM hero_slides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete slide: %w", err)
	}
	return nil
}

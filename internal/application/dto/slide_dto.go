package dto

// CreateSlideRequest entrada para crear un slide del carrusel.
type CreateSlideRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=200"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"button_text"`
	ButtonLink string `json:"button_link"`
	Image      string `json:"image"`
	Badge      string `json:"badge"`
	IsActive   *bool  `json:"is_active"`
	SortOrder  int    `json:"sort_order"`
}

// UpdateSlideRequest entrada para actualizar un slide (campos opcionales).
type UpdateSlideRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=1,max=200"`
	Subtitle   *string `json:"subtitle"`
	ButtonText *string `json:"button_text"`
	ButtonLink *string `json:"button_link"`
	Image      *string `json:"image"`
	Badge      *string `json:"badge"`
	IsActive   *bool   `json:"is_active"`
	SortOrder  *int    `json:"sort_order"`
}

// SlideResponse salida de un slide.
type SlideResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"button_text"`
	ButtonLink string `json:"button_link"`
	Image      string `json:"image"`
	Badge      string `json:"badge,omitempty"`
	IsActive   bool   `json:"is_active"`
	SortOrder  int    `json:"sort_order"`
}

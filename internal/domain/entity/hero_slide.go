package entity

// HeroSlide representa un slide del carrusel de la portada.
// SortOrder define el orden de aparición; solo los activos se muestran
// en la vitrina.
type HeroSlide struct {
	ID         string
	Title      string
	Subtitle   string
	ButtonText string
	ButtonLink string
	Image      string
	Badge      string
	IsActive   bool
	SortOrder  int
}

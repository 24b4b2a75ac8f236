package entity

import "time"

// Category representa una categoría de productos (nombre único elegido por el operador).
// Solo puede eliminarse cuando ningún producto la referencia.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

package repository

// Page paginación 1-based. Size ya validado por la capa HTTP (1..100).
type Page struct {
	Number int
	Size   int
}

// Offset desplazamiento SQL de la página.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

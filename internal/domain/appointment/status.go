package appointment

// Status es una etiqueta libre: el PUT de cita acepta cualquier cadena y no
// se valida ninguna tabla de transiciones. Las constantes cubren los valores
// que escribe el propio servidor.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusScheduled
}

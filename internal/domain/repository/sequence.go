package repository

// Sequence asigna identificadores opacos desde el secuenciador central
// (todas las entidades del motor comparten el mismo).
type Sequence interface {
	NextID() (int64, error)
}

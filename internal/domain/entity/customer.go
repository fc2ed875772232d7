package entity

// Tipos de cliente.
const (
	CustomerKindNatural = "NATURAL"
	CustomerKindCompany = "EMPRESA"
)

// Customer representa un cliente de la cadena.
type Customer struct {
	ID      int64
	Kind    string // NATURAL | EMPRESA
	Name    string
	Email   string
	Address string // obligatorio para empresas
}

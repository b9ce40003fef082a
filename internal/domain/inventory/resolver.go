package inventory

import "github.com/jhoicas/carry-ledger-api/internal/domain/entity"

// InternalName nombre mostrado para movimientos sin cliente.
const InternalName = "INTERNAL"

// NameResolver resuelve customer_id → nombre visible.
// Id vacío ⇒ INTERNAL; id desconocido (cliente eliminado) ⇒ el id tal cual.
type NameResolver map[string]string

// NewNameResolver construye el resolver a partir del directorio de clientes.
func NewNameResolver(customers []*entity.Customer) NameResolver {
	r := make(NameResolver, len(customers))
	for _, c := range customers {
		r[c.ID] = c.Name
	}
	return r
}

// Name devuelve el nombre visible del cliente.
func (r NameResolver) Name(customerID string) string {
	if customerID == "" {
		return InternalName
	}
	if name, ok := r[customerID]; ok && name != "" {
		return name
	}
	return customerID
}

package stock

import "github.com/labtrack/labstock-api/internal/domain/entity"

// Capabilities predicado de capacidades sobre las operaciones del ledger.
// Se consume desde el middleware HTTP; el motor no consulta roles.
type Capabilities struct {
	CanInward  bool
	CanOutward bool
	CanAdjust  bool
}

// CapabilitiesFor devuelve las capacidades del rol:
//   - Admin: todas.
//   - Lab Technician: entradas y salidas.
//   - Engineer: solo salidas.
//   - Researcher: solo lectura.
func CapabilitiesFor(role string) Capabilities {
	switch role {
	case entity.RoleAdmin:
		return Capabilities{CanInward: true, CanOutward: true, CanAdjust: true}
	case entity.RoleLabTechnician:
		return Capabilities{CanInward: true, CanOutward: true}
	case entity.RoleEngineer:
		return Capabilities{CanOutward: true}
	default:
		return Capabilities{}
	}
}

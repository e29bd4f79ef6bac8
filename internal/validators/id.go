package validators

import (
	"strings"

	"github.com/google/uuid"
)

// IsUUID valida formato RFC de UUID. Id malformado é erro de validação
// antes de qualquer consulta; NotFound só depois de um id bem formado.
func IsUUID(id string) bool {
	if strings.TrimSpace(id) == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

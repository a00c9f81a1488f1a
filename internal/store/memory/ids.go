package memory

import (
	"github.com/Gunvolt24/grubdash/internal/ports"
	"github.com/google/uuid"
)

var _ ports.IDSupplier = UUIDSupplier{}

// UUIDSupplier выдаёт UUIDv7 (упорядочены по времени); при ошибке генератора — UUIDv4.
type UUIDSupplier struct{}

func (UUIDSupplier) NextID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

package domain

import "github.com/provora/SchedulingService/pkg/types"

// Slot кандидат на бронирование: транзиентная сущность, не персистится.
// Производится генератором слотов, фильтруется резолвером конфликтов
// и отбрасывается после ответа клиенту.
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}

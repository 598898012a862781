// Протокол drag-and-drop холста: вычисление точки вставки из положения
// указателя относительно рамки блока-кандидата и применение сброса.
package editor

import (
	"github.com/gofrs/uuid"
)

// Side - сторона блока-кандидата, в которую разрешается точка вставки.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// DropTarget - текущая цель перетаскивания: блок и его сторона.
// Пересчитывается при каждом движении указателя и сбрасывается, когда
// указатель покидает холст или перетаскивание завершается.
type DropTarget struct {
	BlockId uuid.UUID `json:"block_id"`
	Side    Side      `json:"side"`
}

// SideFor определяет сторону по вертикальной позиции указателя и рамке
// блока: верхняя половина - top, нижняя - bottom.
func SideFor(pointerY, boxTop, boxHeight float64) Side {
	if pointerY < boxTop+boxHeight/2 {
		return SideTop
	}
	return SideBottom
}

// DragPayload - полезная нагрузка перетаскивания. Заполнено максимум одно
// осмысленное поле; при нескольких приоритет у ReorderId, затем PresetId,
// затем BlockType.
type DragPayload struct {
	ReorderId uuid.UUID `json:"reorder_id,omitempty"`
	PresetId  string    `json:"preset_id,omitempty"`
	BlockType BlockType `json:"block_type,omitempty"`
}

func (p DragPayload) empty() bool {
	return p.ReorderId == uuid.Nil && p.PresetId == "" && p.BlockType == ""
}

// PresetExpander разворачивает пресет в свежие блоки. Реализуется
// библиотекой пресетов; для неизвестного идентификатора возвращает пустую
// последовательность.
type PresetExpander interface {
	ExpandPreset(id string) []Block
}

// DropIndex разрешает цель перетаскивания в плоский индекс вставки:
// top - перед целевым блоком, bottom - после. Без цели вставка идет в конец
// последовательности.
func (s *State) DropIndex(target *DropTarget) int {
	if target == nil {
		return len(s.Blocks)
	}
	i := s.indexOf(target.BlockId)
	if i < 0 {
		return len(s.Blocks)
	}
	if target.Side == SideBottom {
		return i + 1
	}
	return i
}

// Drop применяет завершение перетаскивания: перестановка существующего
// блока, разворачивание пресета или вставка нового блока - по приоритету
// полезной нагрузки. Сброс без распознанной нагрузки и без цели - no-op.
func (s *State) Drop(payload DragPayload, target *DropTarget, presets PresetExpander) {
	if payload.empty() {
		return
	}
	index := s.DropIndex(target)

	switch {
	case payload.ReorderId != uuid.Nil:
		s.ReorderBlock(payload.ReorderId, index)
	case payload.PresetId != "":
		if presets == nil {
			return
		}
		s.InsertBlocks(presets.ExpandPreset(payload.PresetId), index)
	case payload.BlockType != "":
		s.InsertNewBlock(payload.BlockType, index)
	}
}

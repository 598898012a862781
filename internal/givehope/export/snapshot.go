// Пакет экспорта документов конструктора в статические артефакты.
// Вход - сериализуемый снимок (blocks, bodyStyles), единственная обязанность
// ядра редактора на этой границе. Выход - HTML-документ письма или PDF.
//
// Основные возможности:
//   - Генерация email-совместимого HTML с инлайновыми стилями (html.go).
//   - Генерация PDF из той же последовательности блоков (pdf.go).
//   - Санитизация пользовательских html-блоков.
package export

import (
	"github.com/givehope/givehope.go/internal/givehope/editor"
)

// Snapshot - стабильный сериализуемый снимок документа для внешних
// коллабораторов сохранения и экспорта.
type Snapshot struct {
	Blocks     []editor.Block    `json:"blocks"`
	BodyStyles editor.BodyStyles `json:"body_styles"`
}

// TakeSnapshot снимает снимок с состояния редактирования.
func TakeSnapshot(s *editor.State) Snapshot {
	blocks, bodyStyles := s.Snapshot()
	return Snapshot{Blocks: blocks, BodyStyles: bodyStyles}
}

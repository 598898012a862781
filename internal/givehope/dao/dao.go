// DAO (Data Access Object) - предоставляет интерфейс для взаимодействия с базой данных.  Содержит модели сущностей приложения: документы студии, рассылки, обращения, пожертвования и публикации.  Обеспечивает абстракцию от конкретной реализации базы данных и упрощает доступ к данным приложения.
//
// Основные возможности:
//   - Хранение документов студии вместе со снимком дерева блоков (JSONB).
//   - Управление email-кампаниями и их получателями.
//   - Работа с обращениями сторонников и ответами на них.
//   - Учет пожертвований и их платежного статуса.
//   - Хранение публикаций полевых сотрудников.
package dao

import (
	"github.com/givehope/givehope.go/internal/givehope/config"
	"github.com/gofrs/uuid"
)

var Config *config.Config

// GenID генерирует уникальный идентификатор в формате UUID.
// Не принимает параметров и возвращает строку, представляющую собой UUID.
func GenID() string {
	u2, _ := uuid.NewV4()
	return u2.String()
}

// GenUUID генерирует уникальный идентификатор в формате UUID.
func GenUUID() uuid.UUID {
	u2, _ := uuid.NewV4()
	return u2
}

// Пакет содержит определения ошибок, используемых в приложении GiveHope для обработки ситуаций, возникающих при работе с базой данных, платежным провайдером и пользовательским интерфейсом.  Каждая ошибка имеет код, статус HTTP и описание, что позволяет удобно обрабатывать исключения и предоставлять информативные сообщения пользователю.
//
// Основные возможности:
//   - Определение типов ошибок, связанных со студией документов, кампаниями, тикетами, пожертвованиями и контентом.
//   - Предоставление кодов ошибок, соответствующих кодам HTTP статусов.
//   - Функция для форматирования сообщений об ошибках с использованием аргументов.
package apierrors

import (
	"fmt"
	"net/http"
	"strings"
)

type DefinedError struct {
	Code       int    `json:"code"`
	StatusCode int    `json:"-"`
	Err        string `json:"error"`
	RuErr      string `json:"ru_error,omitempty"`
}

func (e DefinedError) Error() string {
	return e.Err
}

var (
	// 1*** - studio errors
	ErrDocumentNotFound      = DefinedError{Code: 1001, StatusCode: http.StatusNotFound, Err: "document not found", RuErr: "Документ не найден"}
	ErrBlockNotFound         = DefinedError{Code: 1002, StatusCode: http.StatusNotFound, Err: "block not found", RuErr: "Блок не найден"}
	ErrUnknownBlockType      = DefinedError{Code: 1003, StatusCode: http.StatusBadRequest, Err: "unknown block type", RuErr: "Неизвестный тип блока"}
	ErrUnknownPreset         = DefinedError{Code: 1004, StatusCode: http.StatusNotFound, Err: "preset not found", RuErr: "Пресет не найден"}
	ErrUnknownTemplate       = DefinedError{Code: 1005, StatusCode: http.StatusNotFound, Err: "template not found", RuErr: "Шаблон не найден"}
	ErrTemplateLoadConfirm   = DefinedError{Code: 1006, StatusCode: http.StatusConflict, Err: "loading a template replaces the current document, confirmation required", RuErr: "Загрузка шаблона заменит текущий документ, требуется подтверждение"}
	ErrUnknownContentField   = DefinedError{Code: 1007, StatusCode: http.StatusBadRequest, Err: "unknown content field for block type", RuErr: "Недопустимое поле содержимого для данного типа блока"}
	ErrUnknownMergeTag       = DefinedError{Code: 1008, StatusCode: http.StatusBadRequest, Err: "unknown merge tag", RuErr: "Неизвестный тег подстановки"}
	ErrDocumentNameRequired  = DefinedError{Code: 1009, StatusCode: http.StatusBadRequest, Err: "document must have a name", RuErr: "Поле Имя документа не может быть пустым"}
	ErrBadDropTarget         = DefinedError{Code: 1010, StatusCode: http.StatusBadRequest, Err: "invalid drop target", RuErr: "Некорректная цель переноса"}
	ErrExportFailed          = DefinedError{Code: 1011, Err: "document export failed", RuErr: "Не удалось экспортировать документ"}
	ErrUnknownExportFormat   = DefinedError{Code: 1012, StatusCode: http.StatusBadRequest, Err: "unknown export format", RuErr: "Неизвестный формат экспорта"}
	ErrBadRichTextPayload    = DefinedError{Code: 1013, StatusCode: http.StatusBadRequest, Err: "malformed rich text payload", RuErr: "Некорректное содержимое текстового редактора"}
	ErrUnknownDevice         = DefinedError{Code: 1014, StatusCode: http.StatusBadRequest, Err: "unknown preview device", RuErr: "Неизвестное устройство предпросмотра"}
	ErrMergeTagNotApplicable = DefinedError{Code: 1015, StatusCode: http.StatusBadRequest, Err: "merge tags can be inserted only into text-bearing blocks", RuErr: "Теги подстановки доступны только для текстовых блоков"}

	// 2*** - campaign errors
	ErrCampaignNotFound      = DefinedError{Code: 2001, StatusCode: http.StatusNotFound, Err: "campaign not found", RuErr: "Кампания не найдена"}
	ErrCampaignAlreadySent   = DefinedError{Code: 2002, StatusCode: http.StatusConflict, Err: "campaign already sent", RuErr: "Кампания уже отправлена"}
	ErrCampaignEmptyAudience = DefinedError{Code: 2003, StatusCode: http.StatusBadRequest, Err: "campaign has no recipients", RuErr: "У кампании нет получателей"}
	ErrCampaignNoDocument    = DefinedError{Code: 2004, StatusCode: http.StatusBadRequest, Err: "campaign has no document attached", RuErr: "К кампании не привязан документ"}
	ErrBadSchedule           = DefinedError{Code: 2005, StatusCode: http.StatusBadRequest, Err: "invalid schedule expression", RuErr: "Некорректное расписание отправки"}
	ErrCampaignMailFailed    = DefinedError{Code: 2006, Err: "failed to deliver campaign email", RuErr: "Не удалось отправить письмо кампании"}

	// 3*** - ticket errors
	ErrTicketNotFound     = DefinedError{Code: 3001, StatusCode: http.StatusNotFound, Err: "ticket not found", RuErr: "Обращение не найдено"}
	ErrTicketClosed       = DefinedError{Code: 3002, StatusCode: http.StatusConflict, Err: "ticket is closed", RuErr: "Обращение закрыто"}
	ErrTicketBodyRequired = DefinedError{Code: 3003, StatusCode: http.StatusBadRequest, Err: "ticket body cannot be empty", RuErr: "Текст обращения не может быть пустым"}
	ErrAssistBusy         = DefinedError{Code: 3004, StatusCode: http.StatusTooManyRequests, Err: "assistant is busy with another request", RuErr: "Помощник занят другим запросом"}
	ErrAssistUnavailable  = DefinedError{Code: 3005, Err: "assistant is unavailable", RuErr: "Помощник временно недоступен"}

	// 4*** - donation errors
	ErrDonationNotFound      = DefinedError{Code: 4001, StatusCode: http.StatusNotFound, Err: "donation not found", RuErr: "Пожертвование не найдено"}
	ErrBadDonationAmount     = DefinedError{Code: 4002, StatusCode: http.StatusBadRequest, Err: "donation amount must be positive", RuErr: "Сумма пожертвования должна быть положительной"}
	ErrDonationConfirmed     = DefinedError{Code: 4003, StatusCode: http.StatusConflict, Err: "donation already confirmed", RuErr: "Пожертвование уже подтверждено"}
	ErrPaymentProviderFailed = DefinedError{Code: 4004, StatusCode: http.StatusBadGateway, Err: "payment provider request failed", RuErr: "Платежный провайдер недоступен"}
	ErrPaymentDeclined       = DefinedError{Code: 4005, StatusCode: http.StatusPaymentRequired, Err: "payment declined", RuErr: "Платеж отклонен"}

	// 5*** - content errors
	ErrPostNotFound       = DefinedError{Code: 5001, StatusCode: http.StatusNotFound, Err: "post not found", RuErr: "Публикация не найдена"}
	ErrPostBodyRequired   = DefinedError{Code: 5002, StatusCode: http.StatusBadRequest, Err: "post body cannot be empty", RuErr: "Текст публикации не может быть пустым"}
	ErrPostAlreadyPublic  = DefinedError{Code: 5003, StatusCode: http.StatusConflict, Err: "post already published", RuErr: "Публикация уже опубликована"}
	ErrPostPolishFailed   = DefinedError{Code: 5004, Err: "failed to polish post text", RuErr: "Не удалось улучшить текст публикации"}

	// 9*** - generic errors
	ErrGeneric    = DefinedError{Code: 9001, StatusCode: http.StatusInternalServerError, Err: "internal server error", RuErr: "Внутренняя ошибка сервера"}
	ErrBadRequest = DefinedError{Code: 9002, StatusCode: http.StatusBadRequest, Err: "malformed request", RuErr: "Некорректный запрос"}
)

func (e DefinedError) WithFormattedMessage(args ...interface{}) DefinedError {
	if len(args) > 0 {
		e.Err = fmt.Sprintf(e.Err, args...)
		e.RuErr = fmt.Sprintf(e.RuErr, args...)
	} else {
		e.Err = strings.Replace(e.Err, "%s", "", -1)
		e.RuErr = strings.Replace(e.RuErr, "%s", "", -1)
	}
	return e
}

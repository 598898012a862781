// Помощник на основе языковой модели: черновики ответов на обращения и улучшение текстов публикаций.
//
// Основные возможности:
//   - Генерация черновика ответа на обращение сторонника.
//   - Улучшение текста публикации полевого сотрудника.
//   - Одновременно обрабатывается только один запрос, остальные отклоняются.
package assist

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/givehope/givehope.go/internal/givehope/apierrors"
	"github.com/givehope/givehope.go/internal/givehope/config"
	"github.com/givehope/givehope.go/internal/givehope/dao"
	"github.com/ollama/ollama/api"
)

type Assistant struct {
	client *api.Client
	model  string

	busy atomic.Bool
}

func NewAssistant(cfg *config.Config) (*Assistant, error) {
	var client *api.Client
	if cfg.AssistURL != "" {
		u, err := url.Parse(cfg.AssistURL)
		if err != nil {
			return nil, err
		}
		client = api.NewClient(u, http.DefaultClient)
	} else {
		var err error
		client, err = api.ClientFromEnvironment()
		if err != nil {
			return nil, err
		}
	}

	return &Assistant{client: client, model: cfg.AssistModel}, nil
}

// Busy возвращает true, если помощник обрабатывает запрос.
func (a *Assistant) Busy() bool { return a.busy.Load() }

// SuggestReply генерирует черновик ответа на обращение. Пока запрос не завершен,
// повторные вызовы возвращают ErrAssistBusy.
func (a *Assistant) SuggestReply(ctx context.Context, ticket dao.Ticket) (string, error) {
	prompt := "You are a support agent for a nonprofit organization. " +
		"Write a short, warm reply to the following supporter request. " +
		"Do not promise anything beyond acknowledging the request.\n\n" +
		"Subject: " + ticket.Subject + "\n\n" + ticket.Body

	return a.generate(ctx, prompt)
}

// PolishPost улучшает текст публикации, сохраняя смысл и факты.
func (a *Assistant) PolishPost(ctx context.Context, body string) (string, error) {
	prompt := "Improve the grammar and flow of the following field report. " +
		"Keep every fact unchanged and keep roughly the same length.\n\n" + body

	return a.generate(ctx, prompt)
}

func (a *Assistant) generate(ctx context.Context, prompt string) (string, error) {
	if !a.busy.CompareAndSwap(false, true) {
		return "", apierrors.ErrAssistBusy
	}
	defer a.busy.Store(false)

	var fullResponse strings.Builder
	stream := false
	req := api.ChatRequest{
		Model: a.model,
		Messages: []api.Message{
			{
				Role:    "user",
				Content: prompt,
			},
		},
		Stream: &stream,
	}

	err := a.client.Chat(ctx, &req, func(resp api.ChatResponse) error {
		if len(resp.Message.Content) > 0 {
			fullResponse.WriteString(resp.Message.Content)
		}
		return nil
	})
	if err != nil {
		return "", apierrors.ErrAssistUnavailable
	}

	return strings.TrimSpace(fullResponse.String()), nil
}

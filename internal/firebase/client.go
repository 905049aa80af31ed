package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// WriteError — ошибка обновления документа во внешнем хранилище.
// Несёт путь документа и исходную причину: этого достаточно, чтобы
// ревьюер или задача сверки повторили проекцию вручную.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("firebase: не удалось обновить документ %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Client — REST клиент для live-хранилища контента (Firebase Realtime
// Database). Документы адресуются иерархическим путём
// Posts/{id}/Comments/{id}/Replies/{id}; обновление — частичный PATCH
// только нужных полей.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// NewClient создаёт экземпляр клиента. Таймаут распространяется на все
// запросы; его истечение клиент отдаёт как WriteError.
func NewClient(baseURL, authToken string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// UpdateVisibility обновляет ровно два поля документа по указанному пути.
// Отсутствующий документ — ошибка: проектор никогда не создаёт документы
// в чужом хранилище. Операция идемпотентна, повтор с теми же аргументами
// даёт то же внешнее состояние.
func (c *Client) UpdateVisibility(ctx context.Context, path string, visible, reviewed bool) error {
	if c.baseURL == "" {
		return &WriteError{Path: path, Cause: errors.New("baseURL не задан")}
	}

	exists, err := c.documentExists(ctx, path)
	if err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	if !exists {
		return &WriteError{Path: path, Cause: errors.New("документ не существует")}
	}

	payload := map[string]bool{
		"is_visible": visible,
		"reviewed":   reviewed,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return &WriteError{Path: path, Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.documentURL(path), bytes.NewReader(body))
	if err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errorBody map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errorBody)
		return &WriteError{
			Path:  path,
			Cause: fmt.Errorf("код ответа %d: %v", resp.StatusCode, errorBody),
		}
	}

	return nil
}

// documentExists проверяет наличие документа неглубоким чтением.
// Это не чтение состояния как источника истины, а только проверка
// адресуемости пути перед записью.
func (c *Client) documentExists(ctx context.Context, path string) (bool, error) {
	u := c.documentURL(path)
	if strings.Contains(u, "?") {
		u += "&shallow=true"
	} else {
		u += "?shallow=true"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return false, fmt.Errorf("код ответа %d при проверке документа", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	// RTDB возвращает literal null для несуществующего пути.
	return strings.TrimSpace(string(raw)) != "null", nil
}

// documentURL собирает URL документа: {base}/{path}.json[?auth=token].
func (c *Client) documentURL(path string) string {
	u := c.baseURL + "/" + strings.Trim(path, "/") + ".json"
	if c.authToken != "" {
		u += "?auth=" + url.QueryEscape(c.authToken)
	}
	return u
}

// Package qrencoder клиент внешнего сервиса рендеринга QR-изображений.
// Сервис принимает содержимое кода и имя файла, рендерит PNG и кладет его
// в хранилище, возвращая публичный URL. Рендеринг детерминирован для
// одинакового содержимого.
package qrencoder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом рендеринга QR
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента QR-рендеринга
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// encodeRequest тело запроса на рендеринг
type encodeRequest struct {
	Content  string `json:"content"`
	FileName string `json:"file_name"`
}

// encodeResponse тело ответа сервиса рендеринга
type encodeResponse struct {
	ImageURL string `json:"image_url"`
}

// Encode рендерит содержимое в QR-изображение и возвращает URL картинки.
// Вызывающие стороны обязаны переживать ошибку рендеринга: выдача учётных
// данных не должна падать из-за недоступности рендера (см. service/credentials).
func (c *Client) Encode(ctx context.Context, content string, fileName string) (string, error) {
	url := fmt.Sprintf("%s/internal/qr/encode", c.baseURL)

	body, err := json.Marshal(encodeRequest{Content: content, FileName: fileName})
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnprocessableEntity:
		return "", ErrEncodingFailed
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var result encodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return result.ImageURL, nil
}

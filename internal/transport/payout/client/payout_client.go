package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const RoutePayouts = "/api/payouts"

// Константы минимального и максимального значения в заголовке Retry-After.
const (
	minRetryAfter = 1
	maxRetryAfter = 120
)

type StatusType string

const (
	StatusAccepted StatusType = "ACCEPTED"
	StatusSettled  StatusType = "SETTLED"
	StatusRejected StatusType = "REJECTED"
)

type Request struct {
	Reference string `json:"reference"`
	AccountID int64  `json:"account_id"`
	Amount    int64  `json:"amount"`
}

type Response struct {
	Status    StatusType `json:"status"`
	Reference string     `json:"reference"`
}

// HTTPClient является реализацией интерфейса Client для HTTP запросов к провайдеру выплат.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// SendPayout отправляет распоряжение о выплате провайдеру. Запросы идемпотентны
// по reference: повторная отправка той же выплаты не задвоит перевод.
// При ответе сервера со статусом отличным от http.StatusOK возвращает ошибку
// StatusCodeError, или TooManyRequestError в случае http.StatusTooManyRequests.
//
//nolint:nonamedreturns
func (c HTTPClient) SendPayout(ctx context.Context, payoutReq Request) (response *Response, err error) {
	payload, marshalErr := json.Marshal(payoutReq)
	if marshalErr != nil {
		return nil, fmt.Errorf("marshal request: %s", marshalErr.Error())
	}

	url := c.baseURL + RoutePayouts

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		minValue := decimal.NewFromInt(minRetryAfter)
		maxValue := decimal.NewFromInt(maxRetryAfter)

		retryAfterStr := resp.Header.Get("Retry-After")

		retryAfter, parseErr := decimal.NewFromString(retryAfterStr)
		if parseErr != nil || retryAfter.LessThan(minValue) || retryAfter.GreaterThan(maxValue) {
			// в случае ошибки или неверных данных ставим 60 секунд
			retryAfter = decimal.NewFromInt(60) //nolint:mnd
		}

		ra := time.Duration(retryAfter.IntPart()) * time.Second
		return nil, NewTooManyRequestError(ra)
	}

	if resp.StatusCode != http.StatusOK {
		err = NewStatusCodeError(resp.StatusCode)
		return nil, err
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("read response: %s", readErr.Error())
		return nil, err
	}

	if jsonErr := json.Unmarshal(body, &response); jsonErr != nil {
		err = fmt.Errorf("parse response: %s", jsonErr.Error())
		return nil, err
	}

	return response, nil
}

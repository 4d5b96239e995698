// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

var (
	ErrMissingAPIKey = errors.New("llm: api key not configured")
	ErrEmptyAbstract = errors.New("llm: abstract is empty")
	ErrUnauthorized  = errors.New("llm: unauthorized")
	ErrRateLimited   = errors.New("llm: rate limited")
	ErrTimeout       = errors.New("llm: request timed out")
	ErrConnection    = errors.New("llm: cannot connect to endpoint")
	ErrEmptyResponse = errors.New("llm: empty response")
)

// Transient reports whether err is worth retrying.
func Transient(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrTimeout) || errors.Is(err, ErrConnection)
}

// classify maps a go-openai or transport error onto a sentinel, keeping the
// original error text for logs.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return statusError(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return statusError(reqErr.HTTPStatusCode, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "unauthorized"):
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit"):
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	case strings.Contains(msg, "timeout"):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case strings.Contains(msg, "connection"):
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return fmt.Errorf("chat completion: %w", err)
}

func statusError(code int, err error) error {
	switch code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("chat completion: HTTP %d: %w", code, err)
}

var messages = map[string]map[error]string{
	"en": {
		ErrMissingAPIKey: "Please configure an API key first",
		ErrEmptyAbstract: "The paper abstract is empty",
		ErrUnauthorized:  "Invalid API key, please check your configuration",
		ErrRateLimited:   "Too many API requests, please try again later",
		ErrTimeout:       "API request timed out, please check your network",
		ErrConnection:    "Cannot connect to the API server, please check the base URL",
		ErrEmptyResponse: "The LLM returned an empty result",
	},
	"zh-CN": {
		ErrMissingAPIKey: "请先配置 API Key",
		ErrEmptyAbstract: "论文摘要为空",
		ErrUnauthorized:  "API Key 无效，请检查配置",
		ErrRateLimited:   "API 调用频率过高，请稍后重试",
		ErrTimeout:       "API 请求超时，请检查网络连接",
		ErrConnection:    "无法连接到 API 服务器，请检查 Base URL 配置",
		ErrEmptyResponse: "LLM 返回结果为空",
	},
	"zh-TW": {
		ErrMissingAPIKey: "請先配置 API Key",
		ErrEmptyAbstract: "論文摘要為空",
		ErrUnauthorized:  "API Key 無效，請檢查配置",
		ErrRateLimited:   "API 調用頻率過高，請稍後重試",
		ErrTimeout:       "API 請求超時，請檢查網絡連接",
		ErrConnection:    "無法連接到 API 服務器，請檢查 Base URL 配置",
		ErrEmptyResponse: "LLM 返回結果為空",
	},
	"ja": {
		ErrMissingAPIKey: "先に API Key を設定してください",
		ErrEmptyAbstract: "論文のアブストラクトが空です",
		ErrUnauthorized:  "API Key が無効です。設定を確認してください",
		ErrRateLimited:   "API 呼び出しが多すぎます。しばらくしてから再試行してください",
		ErrTimeout:       "API リクエストがタイムアウトしました。ネットワークを確認してください",
		ErrConnection:    "API サーバーに接続できません。Base URL を確認してください",
		ErrEmptyResponse: "LLM の応答が空です",
	},
	"ko": {
		ErrMissingAPIKey: "먼저 API Key를 설정해주세요",
		ErrEmptyAbstract: "논문 초록이 비어 있습니다",
		ErrUnauthorized:  "API Key가 유효하지 않습니다. 설정을 확인해주세요",
		ErrRateLimited:   "API 호출 빈도가 너무 높습니다. 잠시 후 다시 시도해주세요",
		ErrTimeout:       "API 요청 시간이 초과되었습니다. 네트워크를 확인해주세요",
		ErrConnection:    "API 서버에 연결할 수 없습니다. Base URL을 확인해주세요",
		ErrEmptyResponse: "LLM 응답이 비어 있습니다",
	},
}

var failedPrefix = map[string]string{
	"en":    "LLM call failed: ",
	"zh-CN": "LLM 调用失败: ",
	"zh-TW": "LLM 調用失敗: ",
	"ja":    "LLM 呼び出しに失敗しました: ",
	"ko":    "LLM 호출 실패: ",
}

// Message returns the user-facing text for err in lang (English when the
// language is unknown). Unclassified errors keep their own text.
func Message(err error, lang string) string {
	if err == nil {
		return ""
	}
	lang = NormalizeLang(lang)
	for sentinel, text := range messages[lang] {
		if errors.Is(err, sentinel) {
			return text
		}
	}
	return failedPrefix[lang] + err.Error()
}

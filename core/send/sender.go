// Package send implements the Sender interface.
// It delivers compiled messages through the Telegram Bot API sendMessage method.
package send

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gaurav-prasanna/tgmarkup/core"
	"github.com/gaurav-prasanna/tgmarkup/core/chunk"
	"github.com/gaurav-prasanna/tgmarkup/core/extract"
)

const (
	defaultAPIURL     = "https://api.telegram.org"
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	defaultUserAgent  = "tgmarkup/1.0 (https://github.com/gaurav-prasanna/tgmarkup)"
)

// ErrRateLimited is returned when the API keeps answering 429 after all retries.
var ErrRateLimited = errors.New("telegram: rate limited")

// APIError is a non-OK Bot API answer.
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram API error %d: %s", e.Code, e.Description)
}

// wait blocks for d or until ctx is done. Replaceable in tests.
var wait = func(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// HTTPSender sends messages via HTTP.
type HTTPSender struct {
	client     *http.Client
	baseURL    string
	maxRetries int
	chunker    *chunk.Chunker
	log        *slog.Logger
}

// Option configures an HTTPSender.
type Option func(*HTTPSender)

// WithAPIURL points the sender at another Bot API server.
func WithAPIURL(apiURL string) Option {
	return func(s *HTTPSender) { s.baseURL = strings.TrimSuffix(apiURL, "/") }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *HTTPSender) { s.client.Timeout = d }
}

// WithHTTPClient replaces the underlying client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *HTTPSender) { s.client = c }
}

// WithMaxRetries bounds how many times a rate-limited request is repeated.
func WithMaxRetries(n int) Option {
	return func(s *HTTPSender) { s.maxRetries = max(n, 0) }
}

// WithMaxLength sets the text length above which a message is split.
func WithMaxLength(n int) Option {
	return func(s *HTTPSender) { s.chunker = chunk.New(n) }
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *HTTPSender) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates an HTTPSender for the bot identified by token.
func New(token string, opts ...Option) *HTTPSender {
	s := &HTTPSender{
		client:     &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultAPIURL,
		maxRetries: defaultMaxRetries,
		chunker:    chunk.New(chunk.MaxMessageLength),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.baseURL += "/bot" + token + "/"
	s.log = s.log.With("component", "send")
	return s
}

type sendMessageRequest struct {
	ChatID      int64               `json:"chat_id"`
	Text        string              `json:"text"`
	Entities    []core.Entity       `json:"entities,omitempty"`
	ReplyMarkup extract.ReplyMarkup `json:"reply_markup,omitempty"`
}

type sentMessage struct {
	MessageID int64 `json:"message_id"`
}

type responseParameters struct {
	RetryAfter int `json:"retry_after,omitempty"`
}

type apiResponse[T any] struct {
	Ok          bool                `json:"ok"`
	Result      T                   `json:"result"`
	ErrorCode   int                 `json:"error_code,omitempty"`
	Description string              `json:"description,omitempty"`
	Parameters  *responseParameters `json:"parameters,omitempty"`
}

// NewRequest builds the sendMessage body for msg.
func NewRequest(chatID int64, msg *core.Message) any {
	return sendMessageRequest{
		ChatID:      chatID,
		Text:        msg.Text.String(),
		Entities:    msg.Text.Entities(),
		ReplyMarkup: extract.Keyboard(msg.Keyboard),
	}
}

// Send delivers msg to chatID and returns the id of the last message sent.
// Text longer than the length limit goes out as several messages with the
// keyboard attached to the last one. A 429 answer is retried after the
// advertised delay up to the configured limit.
func (s *HTTPSender) Send(ctx context.Context, chatID int64, msg *core.Message) (int64, error) {
	if msg == nil {
		return 0, errors.New("telegram: send: nil message")
	}

	parts := s.chunker.Chunk(msg.Text)
	if len(parts) > 1 {
		s.log.Info("splitting long message", "operation", "send", "chat_id", chatID, "parts", len(parts))
	}

	var id int64
	for i, text := range parts {
		part := &core.Message{Text: text}
		if i == len(parts)-1 {
			part.Keyboard = msg.Keyboard
		}
		var err error
		if id, err = s.sendOne(ctx, chatID, part); err != nil {
			if len(parts) > 1 {
				return 0, fmt.Errorf("part %d/%d: %w", i+1, len(parts), err)
			}
			return 0, err
		}
	}
	return id, nil
}

func (s *HTTPSender) sendOne(ctx context.Context, chatID int64, msg *core.Message) (int64, error) {
	body, err := json.Marshal(NewRequest(chatID, msg))
	if err != nil {
		return 0, fmt.Errorf("telegram: send: marshal: %w", err)
	}

	for attempt := 0; ; attempt++ {
		s.log.Debug("sending message", "operation", "send", "chat_id", chatID, "attempt", attempt+1)

		resp, err := s.post(ctx, "sendMessage", body)
		if err != nil {
			return 0, fmt.Errorf("telegram: send: %w", err)
		}
		if resp.Ok {
			s.log.Info("message sent", "operation", "send", "chat_id", chatID, "message_id", resp.Result.MessageID)
			return resp.Result.MessageID, nil
		}

		apiErr := &APIError{Code: resp.ErrorCode, Description: resp.Description}
		if resp.ErrorCode != http.StatusTooManyRequests {
			return 0, apiErr
		}
		if attempt >= s.maxRetries {
			return 0, fmt.Errorf("%w after %d attempts: %w", ErrRateLimited, attempt+1, apiErr)
		}

		delay := time.Second
		if resp.Parameters != nil && resp.Parameters.RetryAfter > 0 {
			delay = time.Duration(resp.Parameters.RetryAfter) * time.Second
		}
		s.log.Warn("rate limited", "operation", "send", "retry_after", delay, "attempt", attempt+1, "max_retries", s.maxRetries)
		if err := wait(ctx, delay); err != nil {
			return 0, fmt.Errorf("telegram: send: %w", err)
		}
	}
}

// post sends body to method and decodes the API envelope. Bot API errors
// arrive as non-200 answers that still carry the envelope.
func (s *HTTPSender) post(ctx context.Context, method string, body []byte) (*apiResponse[sentMessage], error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+method, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: new request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", method, err)
	}

	var out apiResponse[sentMessage]
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("%s: unexpected status %d: %s", method, resp.StatusCode, string(respBody))
	}
	if !out.Ok && out.ErrorCode == 0 {
		out.ErrorCode = resp.StatusCode
	}
	return &out, nil
}

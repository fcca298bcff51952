package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	contentTypeHeaderKey = "Content-Type"
	jsonContentType      = "application/json"

	authorizationHeaderKey = "Authorization"
	bearerPrefix           = "Bearer "

	requestIDHeaderKey = "X-Request-Id"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Notifier is the user-facing message surface.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Loading is the loading indicator. Show and Hide must be idempotent.
type Loading interface {
	Show()
	Hide()
}

// PendingRequest is everything read at submit time for one exchange.
type PendingRequest struct {
	RequestID string
	Datas     string
	UUID      *string
	MesEnvio  *string
}

func NewPendingRequest(datas string, id, mesEnvio *string) PendingRequest {
	return PendingRequest{
		RequestID: uuid.NewString(),
		Datas:     datas,
		UUID:      id,
		MesEnvio:  mesEnvio,
	}
}

type requestBody struct {
	Datas    string  `json:"datas"`
	UUID     *string `json:"uuid"`
	MesEnvio *string `json:"mes_envio"`
}

// Outcome describes how one submission ended.
type Outcome struct {
	RequestID string     `json:"request_id,omitempty"`
	State     State      `json:"state"`
	Skipped   bool       `json:"skipped,omitempty"`
	Data      any        `json:"data,omitempty"`
	Class     ErrorClass `json:"class,omitempty"`
	Message   string     `json:"message,omitempty"`
	Err       error      `json:"-"`
}

// Controller runs submissions. There is no mutual exclusion between
// submissions: each call is an independent exchange and every successful one
// emits its own completion.
type Controller struct {
	Log      *logrus.Entry
	HTTP     HTTPClient
	Tokens   TokenSource
	Notifier Notifier
	Loading  Loading
	Events   *Dispatcher

	inflight atomic.Int32
}

// State is StateSubmitting while any exchange is in flight.
func (c *Controller) State() State {
	if c.inflight.Load() > 0 {
		return StateSubmitting
	}

	return StateIdle
}

func (c *Controller) logger() *logrus.Entry {
	if c.Log == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}

	return c.Log
}

// Submit posts req to target and never returns an error: failures are
// classified, surfaced through the Notifier and described in the Outcome.
func (c *Controller) Submit(ctx context.Context, target string, req PendingRequest) Outcome {
	c.inflight.Add(1)
	if c.Loading != nil {
		c.Loading.Show()
	}

	defer func() {
		c.inflight.Add(-1)
		if c.Loading != nil {
			c.Loading.Hide()
		}
	}()

	log := c.logger().WithFields(logrus.Fields{
		"request_id": req.RequestID,
		"url":        target,
	})

	data, err := c.post(ctx, target, req)
	if err != nil {
		class := Classify(err)
		message := Message(class)

		log.WithError(err).WithField("class", class).Error("error submitting selection")
		c.notify(ctx, log, message)

		return Outcome{
			RequestID: req.RequestID,
			State:     StateFailed,
			Class:     class,
			Message:   message,
			Err:       err,
		}
	}

	if c.Events != nil {
		c.Events.Emit(Completion{RequestID: req.RequestID, Data: data})
	}

	log.WithField("data", data).Info("selection submitted")
	c.notify(ctx, log, SuccessMessage)

	return Outcome{
		RequestID: req.RequestID,
		State:     StateSucceeded,
		Data:      data,
		Message:   SuccessMessage,
	}
}

func (c *Controller) post(ctx context.Context, target string, pending PendingRequest) (any, error) {
	payload, err := json.Marshal(requestBody{
		Datas:    pending.Datas,
		UUID:     pending.UUID,
		MesEnvio: pending.MesEnvio,
	})
	if err != nil {
		return nil, fmt.Errorf("error marshalling request body %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("error creating http request %w", err)
	}

	var token string
	if c.Tokens != nil {
		token, err = c.Tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("error resolving access token %w", err)
		}
	}

	req.Header.Add(contentTypeHeaderKey, jsonContentType)
	req.Header.Add(authorizationHeaderKey, bearerPrefix+token)
	req.Header.Add(requestIDHeaderKey, pending.RequestID)

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error performing http request %w", err)
	}

	if resp.Body != nil {
		defer resp.Body.Close()
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	if resp.Body == nil {
		return nil, fmt.Errorf("error empty response body %w", io.ErrUnexpectedEOF)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body %w", err)
	}

	var data any

	err = json.Unmarshal(body, &data)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling http response body %w", err)
	}

	return data, nil
}

func (c *Controller) notify(ctx context.Context, log *logrus.Entry, message string) {
	if c.Notifier == nil {
		return
	}

	if err := c.Notifier.Notify(ctx, message); err != nil {
		log.WithError(err).Warn("error delivering user message")
	}
}

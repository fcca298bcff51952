package handler

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adiazny/ms-calendar/internal/pkg/calendar"
	"github.com/adiazny/ms-calendar/internal/pkg/notify"
	"github.com/adiazny/ms-calendar/internal/pkg/submit"
	"github.com/adiazny/ms-calendar/internal/pkg/widget"
)

const (
	ActionPrevMonth       = "prev-month"
	ActionNextMonth       = "next-month"
	ActionToggle          = "toggle"
	ActionSetAttribute    = "set-attribute"
	ActionRemoveAttribute = "remove-attribute"
	ActionConfirm         = "confirm"
)

// Action is one user or host interaction. Toggle uses Key when set, otherwise
// Day of the displayed month.
type Action struct {
	Type  string `json:"type"`
	Key   string `json:"key,omitempty"`
	Day   int    `json:"day,omitempty"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

type Event struct {
	Attributes  map[string]string `json:"attributes"`
	AccessToken string            `json:"access_token"`
	Now         *time.Time        `json:"now,omitempty"`
	Actions     []Action          `json:"actions"`
}

type Response struct {
	Datas       string              `json:"datas"`
	Cursor      calendar.Cursor     `json:"cursor"`
	Grid        calendar.Grid       `json:"grid"`
	Messages    []string            `json:"messages"`
	Completions []submit.Completion `json:"completions"`
	Outcomes    []submit.Outcome    `json:"outcomes"`
}

type Config struct {
	Locale string
	Strict bool
}

type Handler struct {
	Log      *logrus.Entry
	Config   Config
	HTTP     submit.HTTPClient
	Notifier submit.Notifier
	Clock    func() time.Time
}

// Handle replays the event's actions against a fresh widget.
func (h *Handler) Handle(ctx context.Context, event Event) (Response, error) {
	log := h.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	clock := h.Clock
	if clock == nil {
		clock = time.Now
	}
	if event.Now != nil {
		now := *event.Now
		clock = func() time.Time { return now }
	}

	filter := calendar.Lenient
	if h.Config.Strict {
		filter = calendar.Strict
	}

	messages := &notify.Collector{}
	var notifier submit.Notifier = messages
	if h.Notifier != nil {
		notifier = notify.Multi{messages, h.Notifier}
	}

	httpClient := h.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	labels := calendar.LabelsFor(h.Config.Locale)

	w := widget.New(widget.Options{
		Log:      log,
		Clock:    clock,
		Labels:   &labels,
		Filter:   filter,
		HTTP:     httpClient,
		Tokens:   submit.StaticToken(event.AccessToken),
		Notifier: notifier,
	})

	completions := make([]submit.Completion, 0)
	w.Subscribe(func(c submit.Completion) {
		completions = append(completions, c)
	})

	names := make([]string, 0, len(event.Attributes))
	for name := range event.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		w.SetAttribute(name, event.Attributes[name])
	}

	outcomes := make([]submit.Outcome, 0)

	for i, action := range event.Actions {
		switch action.Type {
		case ActionPrevMonth:
			w.PrevMonth()
		case ActionNextMonth:
			w.NextMonth()
		case ActionToggle:
			if action.Key != "" {
				w.Toggle(calendar.DateKey(action.Key))
				continue
			}

			if _, err := w.ToggleDay(action.Day); err != nil {
				return Response{}, fmt.Errorf("error in action %d: %w", i, err)
			}
		case ActionSetAttribute:
			w.SetAttribute(action.Name, action.Value)
		case ActionRemoveAttribute:
			w.RemoveAttribute(action.Name)
		case ActionConfirm:
			outcomes = append(outcomes, w.Confirm(ctx))
		default:
			return Response{}, fmt.Errorf("error unknown action type %q at %d", action.Type, i)
		}
	}

	log.WithFields(logrus.Fields{
		"actions":  len(event.Actions),
		"selected": len(w.Selected()),
		"outcomes": len(outcomes),
	}).Info("session replayed")

	return Response{
		Datas:       w.Datas(),
		Cursor:      w.Cursor(),
		Grid:        w.Grid(),
		Messages:    messages.Messages(),
		Completions: completions,
		Outcomes:    outcomes,
	}, nil
}

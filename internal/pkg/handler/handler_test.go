package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"

	"github.com/adiazny/ms-calendar/internal/pkg/calendar"
	"github.com/adiazny/ms-calendar/internal/pkg/handler"
	"github.com/adiazny/ms-calendar/internal/pkg/notify"
	"github.com/adiazny/ms-calendar/internal/pkg/submit"
)

func mustLoadEvent(t *testing.T, filePath string) handler.Event {
	data, err := os.ReadFile(filePath)
	if err != nil {
		t.Fatal(err)
	}

	event := handler.Event{}
	if err := json.Unmarshal(data, &event); err != nil {
		t.Fatal(err)
	}

	return event
}

func TestHandler_Handle(t *testing.T) {
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer secret")
		}

		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	event := mustLoadEvent(t, "testdata/session-event.json")
	event.Attributes["fetch"] = server.URL

	sns := &notify.Collector{}
	h := &handler.Handler{
		HTTP:     server.Client(),
		Notifier: sns,
	}

	got, err := h.Handle(context.Background(), event)
	if err != nil {
		t.Fatalf("Handler.Handle() error = %v", err)
	}

	wantDatas := "2023-12-24,2024-1-9,2024-2-29"
	if got.Datas != wantDatas {
		t.Errorf("Response.Datas = %q, want %q", got.Datas, wantDatas)
	}

	if want := (calendar.Cursor{Year: 2024, Month: 1}); got.Cursor != want {
		t.Errorf("Response.Cursor = %v, want %v", got.Cursor, want)
	}

	if got.Grid.Header != "Fevereiro 2024" {
		t.Errorf("Response.Grid.Header = %q, want %q", got.Grid.Header, "Fevereiro 2024")
	}

	wantBody := map[string]any{
		"datas":     wantDatas,
		"uuid":      "0b7e6c1e-2f6a-4b7b-9d55-3a9f0c8a1e42",
		"mes_envio": "2024-01",
	}
	if !reflect.DeepEqual(gotBody, wantBody) {
		t.Errorf("submitted body = %v, want %v", gotBody, wantBody)
	}

	if want := []string{submit.SuccessMessage}; !reflect.DeepEqual(got.Messages, want) {
		t.Errorf("Response.Messages = %v, want %v", got.Messages, want)
	}

	if want := []string{submit.SuccessMessage}; !reflect.DeepEqual(sns.Messages(), want) {
		t.Errorf("forwarded messages = %v, want %v", sns.Messages(), want)
	}

	if len(got.Completions) != 1 || len(got.Outcomes) != 1 || got.Outcomes[0].State != submit.StateSucceeded {
		t.Errorf("Response completions = %v outcomes = %v", got.Completions, got.Outcomes)
	}
}

func TestHandler_HandleErrors(t *testing.T) {
	tests := []struct {
		name    string
		event   handler.Event
		wantErr bool
	}{
		{
			name:    "unknown action",
			event:   handler.Event{Actions: []handler.Action{{Type: "explode"}}},
			wantErr: true,
		},
		{
			name:    "day outside month",
			event:   handler.Event{Actions: []handler.Action{{Type: handler.ActionToggle, Day: 0}}},
			wantErr: true,
		},
		{
			name: "confirm without fetch is a no-op",
			event: handler.Event{Actions: []handler.Action{
				{Type: handler.ActionToggle, Key: "2024-1-1"},
				{Type: handler.ActionConfirm},
			}},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			h := &handler.Handler{}

			got, err := h.Handle(context.Background(), tt.event)

			if (err != nil) != tt.wantErr {
				t.Errorf("Handler.Handle() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if err == nil && (len(got.Outcomes) != 1 || !got.Outcomes[0].Skipped || len(got.Messages) != 0) {
				t.Errorf("Handler.Handle() = %+v, want one skipped outcome and no messages", got)
			}
		})
	}
}

func TestHandler_StrictAndLocale(t *testing.T) {
	h := &handler.Handler{Config: handler.Config{Locale: "en-US", Strict: true}}

	got, err := h.Handle(context.Background(), handler.Event{
		Attributes: map[string]string{"datas": "2024-1-1,not-a-date"},
		Actions: []handler.Action{
			{Type: handler.ActionSetAttribute, Name: "datas", Value: "2024-3-1,2024-2-30"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got.Datas != "2024-3-1" {
		t.Errorf("Response.Datas = %q, want %q", got.Datas, "2024-3-1")
	}

	if got.Grid.Cells[0].Label != "Sun" {
		t.Errorf("first weekday label = %q, want Sun", got.Grid.Cells[0].Label)
	}
}

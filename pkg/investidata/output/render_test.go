package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func render(t *testing.T, topic Topic) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, sampleReport(), RenderOptions{Topic: topic, Width: 100}); err != nil {
		t.Fatalf("Render(%q) failed: %v", topic, err)
	}
	return buf.String()
}

func TestRenderSummary(t *testing.T) {
	out := render(t, "")
	for _, want := range []string{"caso.xlsx", "Mensajes", "33.3%", "Armas/Violencia", "accounts: sheet not found", "warning:", "alert rows 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary is missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("Expected no ANSI codes without color")
	}
}

func TestRenderTopics(t *testing.T) {
	tests := []struct {
		topic Topic
		want  []string
	}{
		{TopicMessages, []string{"messages · Mensajes", "+573001112233", "device: yo", "01:00", "1 between 00:00 and 06:00"}},
		{TopicDevice, []string{"356938035643809", "Samsung"}},
		{TopicCalls, []string{"calls: sheet not found"}},
		{TopicApps, []string{"applications not available"}},
		{TopicLocations, []string{"coordinates not available"}},
		{TopicAccounts, []string{"accounts not available"}},
	}

	for _, tt := range tests {
		out := render(t, tt.topic)
		for _, want := range tt.want {
			if !strings.Contains(out, want) {
				t.Errorf("topic %q is missing %q:\n%s", tt.topic, want, out)
			}
		}
	}
}

func TestRenderUnknownTopic(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleReport(), RenderOptions{Topic: "gallery"})
	if !errors.Is(err, ErrUnknownTopic) {
		t.Errorf("Expected ErrUnknownTopic, got %v", err)
	}
}

func TestTopics(t *testing.T) {
	topics := Topics()
	if len(topics) != 9 || topics[0] != TopicSummary {
		t.Errorf("Unexpected topics %v", topics)
	}
	for _, topic := range topics {
		if !topic.Valid() {
			t.Errorf("%q should be valid", topic)
		}
	}
	if Topic("Messages").Valid() {
		t.Error("Topics are case-sensitive")
	}
}

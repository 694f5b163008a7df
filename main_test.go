package main

import (
	"strings"
	"testing"
)

func readIndex(t *testing.T) string {
	t.Helper()
	data, err := assets.ReadFile("frontend/dist/index.html")
	if err != nil {
		t.Fatalf("Failed to read embedded renderer: %v", err)
	}
	return string(data)
}

func TestRendererSuppressesShortcutBeforeAwait(t *testing.T) {
	page := readIndex(t)

	start := strings.Index(page, "addEventListener('keydown'")
	if start < 0 {
		t.Fatal("Renderer should listen for keydown")
	}
	handler := page[start:]
	if end := strings.Index(handler, "});"); end > 0 {
		handler = handler[:end]
	}

	if strings.Contains(handler, "async") || strings.Contains(handler, "await") {
		t.Error("keydown handler must stay synchronous so preventDefault takes effect")
	}
	prevent := strings.Index(handler, "preventDefault()")
	call := strings.Index(handler, "HandleKey(")
	if prevent < 0 || call < 0 || prevent > call {
		t.Errorf("preventDefault should run before HandleKey, got handler %q", handler)
	}
	for _, want := range []string{"'F12'", "toLowerCase() === 'i'", "e.ctrlKey && e.shiftKey"} {
		if !strings.Contains(page, want) {
			t.Errorf("Shortcut check should include %s", want)
		}
	}
}

func TestRendererListensForShellEvents(t *testing.T) {
	page := readIndex(t)

	for _, event := range []string{"open-file", "devtools", "inspect"} {
		if !strings.Contains(page, "EventsOn('"+event+"'") {
			t.Errorf("Renderer should subscribe to %q", event)
		}
	}
}

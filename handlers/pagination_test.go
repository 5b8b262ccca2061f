package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func pageFromQuery(t *testing.T, query string) (HistoryPage, error) {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/predictions"+query, nil)
	return ParseHistoryPage(c)
}

func TestParseHistoryPage(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := pageFromQuery(t, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Limit != defaultHistoryLimit {
			t.Errorf("Limit = %d, want %d", p.Limit, defaultHistoryLimit)
		}
		if p.Before != nil {
			t.Errorf("Before = %v, want nil", p.Before)
		}
	})

	t.Run("limit clamps to max", func(t *testing.T) {
		p, err := pageFromQuery(t, "?limit=5000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Limit != maxHistoryLimit {
			t.Errorf("Limit = %d, want %d", p.Limit, maxHistoryLimit)
		}
	})

	t.Run("invalid limit", func(t *testing.T) {
		if _, err := pageFromQuery(t, "?limit=abc"); err == nil {
			t.Error("expected error for non-numeric limit")
		}
		if _, err := pageFromQuery(t, "?limit=-1"); err == nil {
			t.Error("expected error for negative limit")
		}
	})

	t.Run("before cursor", func(t *testing.T) {
		ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		p, err := pageFromQuery(t, "?before="+ts.Format(time.RFC3339Nano))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Before == nil || !p.Before.Equal(ts) {
			t.Errorf("Before = %v, want %v", p.Before, ts)
		}
	})

	t.Run("invalid before cursor", func(t *testing.T) {
		if _, err := pageFromQuery(t, "?before=yesterday"); err == nil {
			t.Error("expected error for unparseable cursor")
		}
	})
}

package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// HistoryPage holds the parsed cursor parameters of a history query:
// a page size and an optional exclusive upper bound on the record
// timestamp.
type HistoryPage struct {
	Limit  int
	Before *time.Time
}

// CursorResponse wraps one page of history rows. NextCursor, when set,
// is the timestamp to pass as ?before= for the following page.
type CursorResponse struct {
	Data       interface{} `json:"data"`
	NextCursor string      `json:"next_cursor,omitempty"`
	HasMore    bool        `json:"has_more"`
}

// ParseHistoryPage reads limit and before from the query string. An
// unparseable before cursor is an error; an out-of-range limit clamps.
func ParseHistoryPage(c *gin.Context) (HistoryPage, error) {
	p := HistoryPage{Limit: defaultHistoryLimit}

	if limitStr := c.Query("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l <= 0 {
			return p, fmt.Errorf("limit must be a positive integer")
		}
		p.Limit = l
	}
	if p.Limit > maxHistoryLimit {
		p.Limit = maxHistoryLimit
	}

	if beforeStr := c.Query("before"); beforeStr != "" {
		t, err := time.Parse(time.RFC3339Nano, beforeStr)
		if err != nil {
			return p, fmt.Errorf("before must be an RFC3339 timestamp")
		}
		p.Before = &t
	}

	return p, nil
}

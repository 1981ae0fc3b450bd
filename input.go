package aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoInput is returned when a day's input is neither on disk nor fetchable.
var ErrNoInput = errors.New("aoc: no input available")

// InputPath is where the input for day lives on disk.
func (c Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("%d.input", day))
}

// Input returns the puzzle input for day. It is read from InputPath if
// present; otherwise, when fetching is enabled, it is downloaded with
// the session cookie and cached at InputPath.
func (c Config) Input(ctx context.Context, day int) ([]byte, error) {
	filename := c.InputPath(day)
	f, err := os.ReadFile(filename)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if !c.Fetch {
		return nil, fmt.Errorf("%w: %s missing and fetching is disabled", ErrNoInput, filename)
	}
	f, err = c.fetch(ctx, day)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(c.InputDir, 0755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, f, 0644); err != nil {
		return nil, err
	}
	return f, nil
}

func (c Config) fetch(ctx context.Context, day int) ([]byte, error) {
	sp, err := c.sessionPath()
	if err != nil {
		return nil, err
	}
	session, err := os.ReadFile(sp)
	if err != nil {
		return nil, fmt.Errorf("%w: reading session: %v", ErrNoInput, err)
	}
	url := fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", c.Year, day)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: strings.TrimSpace(string(session))})
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetching %s: bad status %v", ErrNoInput, url, res.Status)
	}
	return io.ReadAll(res.Body)
}

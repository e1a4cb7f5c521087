package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	ansi "github.com/fatih/color"

	"github.com/egandro/chartkit/pkg/color"
	"github.com/egandro/chartkit/pkg/config"
)

var (
	passLabel = ansi.New(ansi.FgGreen, ansi.Bold).SprintFunc()
	failLabel = ansi.New(ansi.FgRed, ansi.Bold).SprintFunc()
)

func passFail(ok bool) string {
	if ok {
		return passLabel("PASS")
	}
	return failLabel("FAIL")
}

// swatch renders hex on its own color, with black or white text on top.
// Invalid colors come back unstyled.
func swatch(hex string) string {
	text, err := color.ContrastingTextColor(hex)
	if err != nil {
		return hex
	}
	norm, _ := color.Normalize(hex)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(norm)).
		Foreground(lipgloss.Color(text)).
		Padding(0, 1).
		Render(norm)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// splitColors accepts colors as separate args or comma separated.
func splitColors(args []string) []string {
	var out []string
	for _, a := range args {
		for _, c := range strings.Split(a, ",") {
			if c = strings.TrimSpace(c); c != "" {
				if !strings.HasPrefix(c, "#") {
					c = "#" + c
				}
				out = append(out, c)
			}
		}
	}
	return out
}

func needColors(args []string, n int) ([]string, error) {
	c := splitColors(args)
	if len(c) < n {
		return nil, fmt.Errorf("expected %d colors, got %d", n, len(c))
	}
	return c, nil
}

func resolveServiceURL(flagURL string) string {
	if flagURL != "" {
		return strings.TrimRight(flagURL, "/")
	}
	cfg := config.Load(config.ConstantConfigFilename)
	host := cfg.ServiceHost
	if host == "" {
		host = config.DefaultServiceHost
	}
	return fmt.Sprintf("http://%s:%d", host, cfg.ServicePort)
}

var httpClient = &http.Client{Timeout: 2 * time.Second}

func getJSON(url string, out interface{}) error {
	resp, err := httpClient.Get(url)
	if err != nil {
		return fmt.Errorf("service is not reachable: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return fmt.Errorf("service returned %s: %s", resp.Status, e.Error)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

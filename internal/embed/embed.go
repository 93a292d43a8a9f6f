// Package embed builds the embedded player shown for a recommended song.
package embed

import (
	"fmt"
	"html/template"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Player renders a fixed-size inline frame pointing at a streaming service's
// embeddable track endpoint.
type Player struct {
	BaseURL string // track id is appended, e.g. https://open.spotify.com/embed/track/
	Width   int
	Height  int
}

// URL returns the embed URL for a track.
func (p Player) URL(trackID string) string {
	return strings.TrimSuffix(p.BaseURL, "/") + "/" + url.PathEscape(trackID)
}

var iframeTmpl = template.Must(template.New("iframe").Parse(
	`<iframe src="{{.URL}}" width="{{.Width}}" height="{{.Height}}" frameborder="0" allowtransparency="true" allow="encrypted-media"></iframe>`,
))

// IFrame returns the player markup for a track.
func (p Player) IFrame(trackID string) (template.HTML, error) {
	src, err := url.Parse(p.URL(trackID))
	if err != nil {
		return "", err
	}
	var b strings.Builder
	err = iframeTmpl.Execute(&b, struct {
		URL    *url.URL
		Width  int
		Height int
	}{src, p.Width, p.Height})
	if err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil //nolint:gosec // produced by html/template
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

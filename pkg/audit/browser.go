package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	// DefaultNavigationTimeout bounds navigation plus evaluation of one page.
	DefaultNavigationTimeout = 30 * time.Second

	// DefaultAxeURL is the pinned axe-core build fetched when no local copy exists.
	DefaultAxeURL = "https://cdn.jsdelivr.net/npm/axe-core@4.10.2/axe.min.js"

	// networkIdle is how long the page must go without requests before it
	// counts as settled.
	networkIdle      = 500 * time.Millisecond
	maxAxeSourceSize = 8 << 20
)

// axeRunJS runs axe-core with the given tags and flattens the result into
// the Violation shape. Shadow DOM targets are joined with " >>> ".
const axeRunJS = `(tags) => window.axe.run(document, {runOnly: {type: "tag", values: tags}}).then((r) =>
	r.violations.map((v) => ({
		id: v.id,
		impact: v.impact || "",
		help: v.help,
		helpUrl: v.helpUrl,
		nodes: v.nodes.map((n) => ({
			html: n.html,
			target: n.target.map((t) => Array.isArray(t) ? t.join(" >>> ") : String(t)),
		})),
	})))`

// BrowserConfig configures a BrowserEngine.
type BrowserConfig struct {
	// ControlURL connects to a running browser instead of launching one.
	ControlURL string
	// Bin is the Chromium binary to launch. Empty lets rod find or download one.
	Bin string
	// AxeSource is the axe-core script injected into every page.
	AxeSource string
	// Tags are the axe-core rule tags. Default: DefaultTags().
	Tags []string
	// NavigationTimeout bounds each page. Default: DefaultNavigationTimeout.
	NavigationTimeout time.Duration
}

// BrowserEngine checks pages in headless Chromium driven over CDP. Each
// Analyze call uses its own incognito context, so concurrent calls are safe.
type BrowserEngine struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	axe      string
	tags     []string
	timeout  time.Duration
}

// NewBrowserEngine launches (or connects to) a headless browser.
func NewBrowserEngine(ctx context.Context, cfg BrowserConfig) (*BrowserEngine, error) {
	if cfg.AxeSource == "" {
		return nil, fmt.Errorf("%w: empty script", ErrAxeSource)
	}
	if len(cfg.Tags) == 0 {
		cfg.Tags = DefaultTags()
	}
	if cfg.NavigationTimeout <= 0 {
		cfg.NavigationTimeout = DefaultNavigationTimeout
	}

	var l *launcher.Launcher
	controlURL := cfg.ControlURL
	if controlURL == "" {
		l = launcher.New().Headless(true)
		if cfg.Bin != "" {
			l = l.Bin(cfg.Bin)
		}
		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("%w: launch: %w", ErrBrowser, err)
		}
		controlURL = u
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		if l != nil {
			l.Kill()
		}
		return nil, fmt.Errorf("%w: connect: %w", ErrBrowser, err)
	}

	return &BrowserEngine{
		browser:  browser,
		launcher: l,
		axe:      cfg.AxeSource,
		tags:     cfg.Tags,
		timeout:  cfg.NavigationTimeout,
	}, nil
}

// Analyze loads url, waits for it to settle, injects axe-core and returns
// every violation it reports. Failures wrap ErrLoad or ErrEvaluate.
func (e *BrowserEngine) Analyze(ctx context.Context, url string) ([]Violation, error) {
	incognito, err := e.browser.Incognito()
	if err != nil {
		return nil, fmt.Errorf("%w: open context: %w", ErrLoad, err)
	}
	defer incognito.Close()

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("%w: open page: %w", ErrLoad, err)
	}
	page = page.Context(ctx)
	defer page.Close()

	// Registered before navigating so requests fired during load count.
	waitNetworkIdle := page.WaitRequestIdle(networkIdle, nil, nil, nil)
	if err := page.Navigate(url); err != nil {
		return nil, fmt.Errorf("%w: navigate: %w", ErrLoad, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: wait load: %w", ErrLoad, err)
	}
	waitNetworkIdle()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: wait for network idle: %w", ErrLoad, err)
	}

	if err := page.AddScriptTag("", e.axe); err != nil {
		return nil, fmt.Errorf("%w: inject axe-core: %w", ErrEvaluate, err)
	}
	res, err := page.Evaluate(&rod.EvalOptions{
		JS:           axeRunJS,
		JSArgs:       []any{e.tags},
		ByValue:      true,
		AwaitPromise: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: run axe-core: %w", ErrEvaluate, err)
	}

	raw, err := res.Value.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: encode result: %w", ErrEvaluate, err)
	}
	var violations []Violation
	if err := json.Unmarshal(raw, &violations); err != nil {
		return nil, fmt.Errorf("%w: decode result: %w", ErrEvaluate, err)
	}
	return violations, nil
}

// Close shuts the browser down and removes a launched browser's profile.
func (e *BrowserEngine) Close() error {
	err := e.browser.Close()
	if e.launcher != nil {
		e.launcher.Cleanup()
	}
	return err
}

// LoadAxeSource reads the axe-core script from path, falling back to url
// when path is empty or unreadable.
func LoadAxeSource(ctx context.Context, path, url string) (string, error) {
	var fileErr error
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err != nil:
			fileErr = err
		case len(data) == 0:
			fileErr = fmt.Errorf("%s is empty", path)
		default:
			return string(data), nil
		}
	}
	if url == "" {
		if fileErr == nil {
			return "", fmt.Errorf("%w: no path or url", ErrAxeSource)
		}
		return "", fmt.Errorf("%w: %w", ErrAxeSource, fileErr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAxeSource, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: fetch %s: %w", ErrAxeSource, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: fetch %s: status %d", ErrAxeSource, url, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAxeSourceSize))
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", ErrAxeSource, url, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s returned an empty body", ErrAxeSource, url)
	}
	return string(data), nil
}

var _ Engine = (*BrowserEngine)(nil)

package rod

import (
	"log/slog"
	"sync"

	"github.com/fwojciec/serprank"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultMaxPages is the default number of pages opened on one browser
// before it is replaced.
const DefaultMaxPages = 75

// DefaultLanguage is the browser UI language. Naver localizes result markup
// by Accept-Language, so it is pinned to Korean.
const DefaultLanguage = "ko-KR"

// BrowserManager owns the headless Chrome process used for place pages.
// Chrome memory grows with every page even when pages are closed, so after
// maxPages pages the browser is replaced by a fresh one. Replacement waits
// until no page is open on the old browser.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	maxPages int
	language string
	logger   *slog.Logger

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	served   int // pages opened on the current browser
	open     int // pages not yet released
	recycles int
	closed   bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets how many pages a browser serves before it is replaced.
// Values below 1 keep DefaultMaxPages.
func WithMaxPages(n int) ManagerOption {
	return func(bm *BrowserManager) {
		if n > 0 {
			bm.maxPages = n
		}
	}
}

// WithLanguage overrides the browser UI language.
func WithLanguage(lang string) ManagerOption {
	return func(bm *BrowserManager) {
		if lang != "" {
			bm.language = lang
		}
	}
}

// WithLogger reports browser replacements.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(bm *BrowserManager) {
		bm.logger = logger
	}
}

// NewBrowserManager launches a headless browser.
// Returns EUNAVAILABLE if Chrome cannot be found or started.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
		language: DefaultLanguage,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(bm)
	}

	browser, lnchr, err := bm.launch()
	if err != nil {
		return nil, err
	}
	bm.browser, bm.launcher = browser, lnchr
	return bm, nil
}

// OpenPage opens a blank tab. The returned release func closes the tab and
// must be called exactly once.
// Returns EINVALID after Close.
func (bm *BrowserManager) OpenPage() (*rod.Page, func(), error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil, nil, serprank.Errorf(serprank.EINVALID, "browser is closed")
	}
	if bm.served >= bm.maxPages && bm.open == 0 {
		bm.recycle()
	}

	page, err := bm.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, nil, serprank.Errorf(serprank.EUNAVAILABLE, "failed to open browser tab: %v", err)
	}
	bm.served++
	bm.open++

	var once sync.Once
	release := func() {
		once.Do(func() {
			_ = page.Close()
			bm.mu.Lock()
			bm.open--
			bm.mu.Unlock()
		})
	}
	return page, release, nil
}

// Recycles returns how many times the browser has been replaced.
func (bm *BrowserManager) Recycles() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	return bm.recycles
}

// Close shuts the browser down. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true
	err := shutdown(bm.browser, bm.launcher)
	bm.browser, bm.launcher = nil, nil
	return err
}

// LauncherPID returns the process ID of the current browser launcher, or 0
// after Close.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}

func (bm *BrowserManager) launch() (*rod.Browser, *launcher.Launcher, error) {
	lnchr := launcher.New().
		Set("lang", bm.language).
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, nil, serprank.Errorf(serprank.EUNAVAILABLE, "failed to launch browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, nil, serprank.Errorf(serprank.EUNAVAILABLE, "failed to connect to browser: %v", err)
	}
	return browser, lnchr, nil
}

// recycle swaps in a fresh browser. A failed launch keeps the old browser
// and retries on the next page. Must be called with mu held and no page open.
func (bm *BrowserManager) recycle() {
	browser, lnchr, err := bm.launch()
	if err != nil {
		bm.logger.Warn("recycle browser", "pages", bm.served, "err", err)
		return
	}

	_ = shutdown(bm.browser, bm.launcher)
	bm.browser, bm.launcher = browser, lnchr
	bm.logger.Info("recycle browser", "pages", bm.served, "pid", lnchr.PID())
	bm.served = 0
	bm.recycles++
}

func shutdown(browser *rod.Browser, lnchr *launcher.Launcher) error {
	var err error
	if browser != nil {
		err = browser.Close()
	}
	if lnchr != nil {
		lnchr.Kill()
	}
	return err
}

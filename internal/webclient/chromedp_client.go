package webclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/kawa454/otoshi/internal/logging"
)

// ChromedpClient fetches pages through headless Chrome and returns the
// rendered DOM instead of the raw transfer bytes. Only GET is supported.
type ChromedpClient struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	timeout     time.Duration
	idleAfter   time.Duration
	logger      logging.Logger
}

// NewChromedpClient creates the browser allocator. The browser process itself
// is launched lazily on the first Do call.
func NewChromedpClient(cfg Config, logger logging.Logger) (*ChromedpClient, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(),
		chromedp.DefaultExecAllocatorOptions[:]...)

	componentLogger := logger.With(logging.Field{Key: "backend", Value: "chromedp"})
	componentLogger.Debug("created chromedp webclient",
		logging.Field{Key: "timeout", Value: cfg.timeout().String()})

	return &ChromedpClient{
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
		timeout:     cfg.timeout(),
		idleAfter:   2 * time.Second,
		logger:      componentLogger,
	}, nil
}

// waitNetworkIdle returns a channel that is closed once no network request
// has been in flight for idleAfter. Needs network events enabled on ctx.
func waitNetworkIdle(ctx context.Context, idleAfter time.Duration) chan struct{} {
	idleChan := make(chan struct{})
	var activeReqs int32
	var timer *time.Timer
	var timerMutex sync.Mutex
	var once sync.Once

	startTimer := func() {
		timerMutex.Lock()
		defer timerMutex.Unlock()

		if timer != nil {
			timer.Stop()
		}

		timer = time.AfterFunc(idleAfter, func() {
			if atomic.LoadInt32(&activeReqs) == 0 {
				once.Do(func() {
					close(idleChan)
				})
			}
		})
	}

	// Pages with zero subresources never fire loading events, so the timer
	// has to be armed before navigation too.
	startTimer()

	chromedp.ListenTarget(ctx,
		func(ev any) {
			switch ev.(type) {
			case *network.EventRequestWillBeSent:
				atomic.AddInt32(&activeReqs, 1)
			case *network.EventLoadingFinished, *network.EventLoadingFailed:
				if atomic.AddInt32(&activeReqs, -1) == 0 {
					startTimer()
				}
			}
		})

	return idleChan
}

func (cdc *ChromedpClient) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}

	method := strings.ToUpper(req.Method)
	if method != "" && method != http.MethodGet {
		return nil, fmt.Errorf("method %s not supported by the chromedp backend", method)
	}

	cdc.logger.Debug("rendering page", logging.Field{Key: "url", Value: req.URL})

	tabCtx, cancelTab := chromedp.NewContext(cdc.allocCtx)
	defer cancelTab()

	runCtx, cancelRun := context.WithTimeout(tabCtx, cdc.timeout)
	defer cancelRun()

	// Propagate caller cancellation into the tab.
	go func() {
		select {
		case <-ctx.Done():
			cancelTab()
		case <-runCtx.Done():
		}
	}()

	// Track status and headers of the main document response.
	var docMu sync.Mutex
	statusCode := http.StatusOK
	headers := http.Header{}
	chromedp.ListenTarget(runCtx, func(ev any) {
		e, ok := ev.(*network.EventResponseReceived)
		if !ok || e.Type != network.ResourceTypeDocument {
			return
		}
		docMu.Lock()
		defer docMu.Unlock()
		statusCode = int(e.Response.Status)
		for k, v := range e.Response.Headers {
			if s, ok := v.(string); ok {
				headers.Set(k, s)
			}
		}
	})

	idleChan := waitNetworkIdle(runCtx, cdc.idleAfter)

	if err := chromedp.Run(runCtx,
		network.Enable(),
		chromedp.Navigate(req.URL),
	); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", req.URL, err)
	}

	select {
	case <-idleChan:
	case <-runCtx.Done():
		return nil, fmt.Errorf("waiting for network idle: %w", runCtx.Err())
	}

	var html string
	if err := chromedp.Run(runCtx, chromedp.OuterHTML("html", &html)); err != nil {
		return nil, fmt.Errorf("extract rendered dom: %w", err)
	}

	docMu.Lock()
	defer docMu.Unlock()
	return &Response{
		Request:    req,
		Body:       []byte(html),
		Headers:    headers,
		StatusCode: statusCode,
		FetchedAt:  time.Now(),
	}, nil
}

// Get is a convenience method for simple GET requests
func (cdc *ChromedpClient) Get(ctx context.Context, url string) (*Response, error) {
	req := &Request{
		Method: "GET",
		URL:    url,
	}
	return cdc.Do(ctx, req)
}

func (cdc *ChromedpClient) Close() error {
	cdc.logger.Debug("closing chromedp webclient")
	cdc.allocCancel()
	return nil
}

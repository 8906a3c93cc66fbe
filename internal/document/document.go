// Package document keeps the process-wide registry of third-party scripts.
// A script is inserted at most once per id and fetched exactly once; its
// load state only moves forward.
package document

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/you-humble/paypal-express/internal/model"
	"github.com/you-humble/paypal-express/platform/logger"
)

const EventLoad = "load"

type scriptState int

const (
	stateLoading scriptState = iota
	stateLoaded
	stateFailed
)

type Script struct {
	ID  string
	Src string

	mu        sync.Mutex
	state     scriptState
	loadedAt  time.Time
	listeners []func(*model.LoadEvent)
}

type Document struct {
	client       *http.Client
	fetchTimeout time.Duration

	mu      sync.Mutex
	scripts map[string]*Script
}

func New(client *http.Client, fetchTimeout time.Duration) *Document {
	if client == nil {
		client = http.DefaultClient
	}
	return &Document{
		client:       client,
		fetchTimeout: fetchTimeout,
		scripts:      make(map[string]*Script),
	}
}

// AppendScriptOnce registers a script under id unless one is registered
// already. The caller that inserts the script gets onLoad attached before
// the fetch starts; every other caller gets the existing script and false.
func (d *Document) AppendScriptOnce(id, src string, onLoad func(*model.LoadEvent)) (*Script, bool) {
	d.mu.Lock()
	if s, ok := d.scripts[id]; ok {
		d.mu.Unlock()
		return s, false
	}

	s := &Script{ID: id, Src: src, state: stateLoading}
	if onLoad != nil {
		s.listeners = append(s.listeners, onLoad)
	}
	d.scripts[id] = s
	d.mu.Unlock()

	go d.fetch(s)

	return s, true
}

func (d *Document) Script(id string) (*Script, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.scripts[id]
	return s, ok
}

func (d *Document) fetch(s *Script) {
	ctx := context.Background()
	if d.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.fetchTimeout)
		defer cancel()
	}
	log := logger.With(
		logger.String("script_id", s.ID),
		logger.String("src", s.Src),
	)

	if err := d.download(ctx, s.Src); err != nil {
		// No error event is dispatched: listeners wait for load only.
		log.Error(ctx, "script load failed", logger.ErrorF(err))
		s.fail()
		return
	}

	log.Info(ctx, "script loaded")
	s.load()
}

func (d *Document) download(ctx context.Context, src string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	_, err = io.Copy(io.Discard, resp.Body)
	return err
}

func (s *Script) load() {
	s.mu.Lock()
	if s.state != stateLoading {
		s.mu.Unlock()
		return
	}
	s.state = stateLoaded
	s.loadedAt = time.Now()
	listeners := s.listeners
	s.listeners = nil
	ev := &model.LoadEvent{Type: EventLoad, Src: s.Src, LoadedAt: s.loadedAt}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(ev)
	}
}

func (s *Script) fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == stateLoading {
		s.state = stateFailed
		s.listeners = nil
	}
}

// WhenLoaded runs fn once the script is loaded: on a new goroutine right
// away if it already is, otherwise after the load event. A failed script
// never runs fn.
func (s *Script) WhenLoaded(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case stateLoaded:
		go fn()
	case stateLoading:
		s.listeners = append(s.listeners, func(*model.LoadEvent) { fn() })
	}
}

func (s *Script) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateLoaded
}

// Failed reports a fetch that did not succeed. A failed script stays failed
// for the lifetime of the document.
func (s *Script) Failed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateFailed
}

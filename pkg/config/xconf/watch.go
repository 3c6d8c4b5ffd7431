package xconf

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchCallback 在规则集重载后调用，err 表示本次重载是否成功。
// 重载失败时 Loader 仍持有上一份有效规则集。
type WatchCallback func(l *Loader, err error)

// WatchOption 定义监视器选项函数类型。
type WatchOption func(*watchOptions)

type watchOptions struct {
	debounce time.Duration
}

func defaultWatchOptions() *watchOptions {
	return &watchOptions{debounce: 100 * time.Millisecond}
}

// WithDebounce 设置防抖窗口：窗口内的多次变更只触发一次重载。
// 默认 100ms。
func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) {
		o.debounce = d
	}
}

// Watcher 监控规则文件变更并自动重载。
type Watcher struct {
	loader   *Loader
	watcher  *fsnotify.Watcher
	callback WatchCallback
	debounce time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
	running  bool
	timer    *time.Timer
}

// Watch 创建规则文件监视器。仅支持从文件加载的 Loader。
// 返回的监视器需调用 StartAsync（或在独立 goroutine 中调用 Start）
// 开始监视，Stop 停止。
func Watch(l *Loader, callback WatchCallback, opts ...WatchOption) (*Watcher, error) {
	if l == nil || l.path == "" {
		return nil, errors.New("xconf: cannot watch rules loaded from bytes")
	}

	o := defaultWatchOptions()
	for _, opt := range opts {
		opt(o)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("xconf: failed to create watcher: %w", err)
	}

	// 监视文件所在目录而非文件本身：编辑器保存时可能先删后建，
	// 直接监视文件会丢事件
	dir := filepath.Dir(l.path)
	if err := fsWatcher.Add(dir); err != nil {
		closeErr := fsWatcher.Close()
		return nil, errors.Join(
			fmt.Errorf("xconf: failed to watch directory %s: %w", dir, err),
			closeErr,
		)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		loader:   l,
		watcher:  fsWatcher,
		callback: callback,
		debounce: o.debounce,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Start 启动监视循环并阻塞，通常应在 goroutine 中调用。
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.run()
}

// StartAsync 在后台 goroutine 中启动监视，立即返回。
// 先置 running 标志再启动 goroutine，避免与 Stop 竞态。
func (w *Watcher) StartAsync() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.run()
}

// Stop 停止监视，幂等。
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}
	// 取消防抖定时器，防止 Stop 后仍触发回调
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.cancel()
	w.running = false
	return w.watcher.Close()
}

func (w *Watcher) run() {
	filename := filepath.Base(w.loader.path)

	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event, filename)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.callback != nil {
				w.callback(w.loader, fmt.Errorf("xconf: watch error: %w", err))
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event, filename string) {
	if filepath.Base(event.Name) != filename {
		return
	}
	// Write: 直接修改；Create: 新建；Rename: 原子写入（写临时文件后改名）
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.ctx.Done():
			return
		default:
		}

		err := w.loader.Reload()
		if w.callback != nil {
			w.callback(w.loader, err)
		}
	})
}

package xconf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/iptools/pkg/iprange/xrange"
)

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Loader 持有一份已编译的规则集。
// 读方法并发安全；Reload 原子地整体替换规则集，读方永远看到
// 完整的新版本或完整的旧版本。
type Loader struct {
	path   string
	format Format
	opts   *options

	mu    sync.RWMutex
	k     *koanf.Koanf
	rules map[string]*xrange.List
}

// Load 从文件加载并编译规则集，格式按扩展名识别
// （.yaml/.yml 或 .json）。
func Load(path string, opts ...Option) (*Loader, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	k, rules, err := build(data, format, o)
	if err != nil {
		return nil, err
	}

	return &Loader{path: path, format: format, opts: o, k: k, rules: rules}, nil
}

// LoadBytes 从字节数据加载并编译规则集，需显式指定格式。
// 适用于内嵌配置或 ConfigMap 场景；产出的 Loader 不支持
// Reload 与 Watch。
func LoadBytes(data []byte, format Format, opts ...Option) (*Loader, error) {
	if format != FormatYAML && format != FormatJSON {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	k, rules, err := build(data, format, o)
	if err != nil {
		return nil, err
	}
	return &Loader{format: format, opts: o, k: k, rules: rules}, nil
}

// Rules 返回全部规则名，按字典序排列。
func (l *Loader) Rules() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.rules))
	for name := range l.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List 返回指定规则编译出的区间集合。
func (l *Loader) List(name string) (*xrange.List, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	list, ok := l.rules[name]
	return list, ok
}

// Contains 报告探针是否落在指定规则的任一区间内。
// 规则名不存在时返回 [ErrUnknownRule]。
func (l *Loader) Contains(name string, probe any) (bool, error) {
	list, ok := l.List(name)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return list.Contains(probe)
}

// Client 返回底层的 koanf 实例，用于读取规则集之外的配置项。
func (l *Loader) Client() *koanf.Koanf {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.k
}

// Path 返回配置文件路径，从字节数据加载时为空字符串。
func (l *Loader) Path() string { return l.path }

// Format 返回配置格式。
func (l *Loader) Format() Format { return l.format }

// Reload 重新读取文件并整体替换规则集。
// 读取或编译失败时保留现有规则集并返回错误。
func (l *Loader) Reload() error {
	if l.path == "" {
		return errors.New("xconf: cannot reload rules loaded from bytes")
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	k, rules, err := build(data, l.format, l.opts)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.k = k
	l.rules = rules
	l.mu.Unlock()
	return nil
}

// detectFormat 根据文件扩展名检测配置格式。
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// build 解析数据并编译规则集。
func build(data []byte, format Format, o *options) (*koanf.Koanf, map[string]*xrange.List, error) {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	k := koanf.New(".")
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}

	rules, err := compileRules(k.Get(o.key))
	if err != nil {
		return nil, nil, err
	}
	return k, rules, nil
}

// compileRules 把根键下的原始值编译为规则名 → 区间集合的映射。
// 根键缺失时产出空规则集。
func compileRules(raw any) (map[string]*xrange.List, error) {
	rules := make(map[string]*xrange.List)
	if raw == nil {
		return rules, nil
	}

	byName, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: rules must be a mapping, got %T", ErrInvalidRule, raw)
	}

	for name, v := range byName {
		entries, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: rule %q must be a list, got %T", ErrInvalidRule, name, v)
		}
		items := make([]any, 0, len(entries))
		for i, e := range entries {
			item, err := ruleItem(e)
			if err != nil {
				return nil, fmt.Errorf("%w: rule %q entry %d: %v", ErrInvalidRule, name, i, err)
			}
			items = append(items, item)
		}
		list, err := xrange.NewList(items...)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %q: %w", ErrInvalidRule, name, err)
		}
		rules[name] = list
	}
	return rules, nil
}

// ruleItem 把单个配置条目转换为区间构造参数：
// 文本原样透传，双元素文本数组转为起止地址对。
func ruleItem(e any) (any, error) {
	switch t := e.(type) {
	case string:
		return t, nil
	case []any:
		if len(t) != 2 {
			return nil, fmt.Errorf("pair must have exactly 2 elements, got %d", len(t))
		}
		start, ok1 := t[0].(string)
		end, ok2 := t[1].(string)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("pair elements must be text, got [%T, %T]", t[0], t[1])
		}
		return xrange.Pair{Start: start, End: end}, nil
	default:
		return nil, fmt.Errorf("expected text or pair, got %T", e)
	}
}

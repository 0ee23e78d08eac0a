package scenario

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/user-none/go-cortex-rtos/kernel"
)

// Config describes a kernel instance and a fixed workload to run against
// it, in a form a regression fixture or a one-off experiment can check
// into a YAML file instead of hand-writing Go.
type Config struct {
	Name string `yaml:"name"`

	MemLow     uint32 `yaml:"mem_low"`
	MemHigh    uint32 `yaml:"mem_high"`
	TickReload uint32 `yaml:"tick_reload"`
	WithIdle   bool   `yaml:"with_idle"`
	Arch       string `yaml:"arch"` // "armv6m" or "armv7m", informational only

	// Ticks is how many SysTick interrupts to deliver after Start, before
	// reporting whatever tasks have done.
	Ticks uint32 `yaml:"ticks"`

	Tasks []TaskConfig `yaml:"tasks"`
}

// TaskConfig describes one task to create before Start runs. Body
// selects a named behavior from the small fixed vocabulary this loader
// understands (builtinBodies) — a YAML file cannot carry executable Go,
// so only bodies already compiled into this package can be referenced.
type TaskConfig struct {
	Name      string `yaml:"name"`
	StackSize uint32 `yaml:"stack_size"`
	Body      string `yaml:"body"`
}

// Load reads and validates a scenario file. It wraps read and parse
// failures with enough context to locate the offending file without the
// caller needing to know the loader's internals.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scenario file %q", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing scenario file %q", path)
	}
	if cfg.MemHigh <= cfg.MemLow {
		return nil, errors.Errorf("scenario %q: mem_high (%d) must exceed mem_low (%d)", path, cfg.MemHigh, cfg.MemLow)
	}
	if len(cfg.Tasks) == 0 {
		return nil, errors.Errorf("scenario %q: at least one task is required", path)
	}
	for i, tc := range cfg.Tasks {
		if _, ok := builtinBodies[tc.Body]; !ok {
			return nil, errors.Errorf("scenario %q: task %d (%s) references unknown body %q", path, i, tc.Name, tc.Body)
		}
	}
	return &cfg, nil
}

// builtinBodies is the vocabulary of task behaviors a YAML file can
// select by name.
var builtinBodies = map[string]func(t *kernel.Task, onPass func()){
	"yield-forever": func(t *kernel.Task, onPass func()) {
		for {
			t.Yield()
			onPass()
		}
	},
	"yield-once": func(t *kernel.Task, onPass func()) {
		t.Yield()
		onPass()
	},
}

// Run builds a kernel from cfg, creates every configured task, starts
// it, delivers cfg.Ticks system ticks, and returns a result summarizing
// how many times each named task's body completed a full pass.
func Run(cfg *Config, trace kernel.Trace) (Result, error) {
	arch := kernel.ArchV7M
	if cfg.Arch == "armv6m" {
		arch = kernel.ArchV6M
	}

	k := kernel.New(kernel.Config{
		MemLow:     cfg.MemLow,
		MemHigh:    cfg.MemHigh,
		TickReload: cfg.TickReload,
		WithIdle:   cfg.WithIdle,
		Arch:       arch,
		Trace:      trace,
	})

	var mu sync.Mutex
	counts := make(map[string]int, len(cfg.Tasks))

	for _, tc := range cfg.Tasks {
		body, name := builtinBodies[tc.Body], tc.Name
		onPass := func() {
			mu.Lock()
			counts[name]++
			mu.Unlock()
		}
		if _, err := k.AddTask(func(t *kernel.Task) { body(t, onPass) }, tc.StackSize); err != nil {
			return Result{Name: cfg.Name}, errors.Wrapf(err, "creating task %q", tc.Name)
		}
	}

	k.Start()
	for i := uint32(0); i < cfg.Ticks; i++ {
		k.Tick()
	}

	mu.Lock()
	detail := formatCounts(counts)
	mu.Unlock()

	return Result{
		Name:      cfg.Name,
		Ticks:     k.TickCount(),
		Completed: true,
		Detail:    detail,
	}, nil
}

func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "no task completed a pass"
	}
	parts := make([]string, 0, len(counts))
	for name, n := range counts {
		parts = append(parts, fmt.Sprintf("%s=%d", name, n))
	}
	return strings.Join(parts, ", ")
}

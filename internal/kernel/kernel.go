package kernel

import (
	"fmt"
	"sort"
	"strings"
)

// Registered kernel names.
const (
	CounterName   = "counter"
	FibonacciName = "fib"
)

// Kernel is the uniform configure/run/read contract the driver programs
// against. Configure stores the workload size (iteration count for the
// counter, index for Fibonacci), Run performs the computation and returns
// its result, Value reads the last result back without side effects.
type Kernel interface {
	// Name returns the registered kernel identifier.
	Name() string
	// Configure stores the workload size. May be called any number of
	// times before Run.
	Configure(workload int64)
	// Run executes the kernel's compute operation and returns the result.
	Run() int64
	// Value returns the stored result without recomputing.
	Value() int64
}

// Constructor builds a fresh, unconfigured kernel instance. The driver
// obtains constructors rather than instances so that every benchmark
// repetition owns a new instance for exactly the duration of one run.
type Constructor func() Kernel

// NewCounterKernel constructs a fresh counter kernel.
func NewCounterKernel() Kernel {
	return &counterKernel{c: NewCounter()}
}

// NewFibonacciKernel constructs a fresh Fibonacci kernel.
func NewFibonacciKernel() Kernel {
	return &fibonacciKernel{f: NewFibonacci()}
}

// counterKernel adapts Counter to the uniform contract.
type counterKernel struct {
	c *Counter
}

func (k *counterKernel) Name() string             { return CounterName }
func (k *counterKernel) Configure(workload int64) { k.c.SetLimit(workload) }
func (k *counterKernel) Run() int64               { return k.c.Run() }
func (k *counterKernel) Value() int64             { return k.c.Count() }

// fibonacciKernel adapts Fibonacci to the uniform contract.
type fibonacciKernel struct {
	f *Fibonacci
}

func (k *fibonacciKernel) Name() string             { return FibonacciName }
func (k *fibonacciKernel) Configure(workload int64) { k.f.SetN(workload) }
func (k *fibonacciKernel) Run() int64               { return k.f.Calculate() }
func (k *fibonacciKernel) Value() int64             { return k.f.Result() }

// Factory provides named access to the registered kernel constructors.
type Factory interface {
	// List returns the registered kernel names in sorted order.
	List() []string
	// Get returns the constructor registered under the given name.
	Get(name string) (Constructor, error)
	// GetAll returns every registered constructor keyed by name.
	GetAll() map[string]Constructor
}

// defaultFactory is the standard Factory implementation backed by a map.
type defaultFactory struct {
	constructors map[string]Constructor
}

// NewDefaultFactory creates a factory with the two reference kernels
// registered under their canonical names.
func NewDefaultFactory() Factory {
	return &defaultFactory{
		constructors: map[string]Constructor{
			CounterName:   NewCounterKernel,
			FibonacciName: NewFibonacciKernel,
		},
	}
}

// List returns the registered kernel names, sorted for reproducible runs.
func (f *defaultFactory) List() []string {
	keys := make([]string, 0, len(f.constructors))
	for k := range f.constructors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the constructor for the named kernel.
func (f *defaultFactory) Get(name string) (Constructor, error) {
	ctor, ok := f.constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown kernel %q (available: %s)", name, strings.Join(f.List(), ", "))
	}
	return ctor, nil
}

// GetAll returns a copy of the constructor registry.
func (f *defaultFactory) GetAll() map[string]Constructor {
	all := make(map[string]Constructor, len(f.constructors))
	for k, v := range f.constructors {
		all[k] = v
	}
	return all
}

package filter

import (
	"github.com/expr-lang/expr/vm"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 128

// programCache keeps compiled programs keyed by their source expression.
type programCache struct {
	programs *lru.Cache[string, *vm.Program]
}

func newProgramCache(size int) *programCache {
	if size <= 0 {
		size = defaultCacheSize
	}
	// lru.New only fails for a non-positive size.
	programs, _ := lru.New[string, *vm.Program](size)
	return &programCache{programs: programs}
}

func (c *programCache) Get(expression string) (*vm.Program, bool) {
	return c.programs.Get(expression)
}

func (c *programCache) Put(expression string, program *vm.Program) {
	c.programs.Add(expression, program)
}

// Len returns the number of cached programs
func (c *programCache) Len() int {
	return c.programs.Len()
}

func (c *programCache) Clear() {
	c.programs.Purge()
}

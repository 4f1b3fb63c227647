package seasonal

import (
	"strconv"
	"sync"
)

// StringPool hands out stable small integers for strings, e.g. to derive
// element ids from month names.
type StringPool struct {
	sync.Mutex
	pool []string
}

func NewStringPool() *StringPool {
	return &StringPool{pool: make([]string, 0, 12)}
}

func (sp *StringPool) Add(s string) int {
	sp.Lock()
	defer sp.Unlock()
	if i := sp.find(s); i != -1 {
		return i
	}
	sp.pool = append(sp.pool, s)
	return len(sp.pool) - 1
}

func (sp *StringPool) find(s string) int {
	for i, t := range sp.pool {
		if t == s {
			return i
		}
	}
	return -1
}

// ID returns prefix followed by the pool index of s, adding s if needed.
func (sp *StringPool) ID(prefix, s string) string {
	return prefix + strconv.Itoa(sp.Add(s))
}

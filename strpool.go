package eda

// StringPool interns the values of categorical columns: every distinct
// string gets a small, stable integer code.
type StringPool struct {
	pool  []string
	index map[string]int
}

func NewStringPool() *StringPool {
	return &StringPool{pool: make([]string, 0, 16), index: make(map[string]int)}
}

// Add returns the code of s, adding s to the pool if needed.
func (sp *StringPool) Add(s string) int {
	if i, ok := sp.index[s]; ok {
		return i
	}
	sp.pool = append(sp.pool, s)
	sp.index[s] = len(sp.pool) - 1
	return len(sp.pool) - 1
}

// Get returns the string with code i.
func (sp *StringPool) Get(i int) string {
	if i < 0 || i >= len(sp.pool) {
		return "--NA--"
	}
	return sp.pool[i]
}


package mock

import "github.com/crawldex/crawldex"

var _ crawldex.Frontier = (*Frontier)(nil)

// Frontier is a mock implementation of crawldex.Frontier.
type Frontier struct {
	PushFn       func(link crawldex.Link) bool
	PopFn        func() (crawldex.Link, bool)
	LenFn        func() int
	SeenFn       func(url string) bool
	AtCapacityFn func() bool
	AdmittedFn   func() int
}

func (f *Frontier) Push(link crawldex.Link) bool {
	return f.PushFn(link)
}

func (f *Frontier) Pop() (crawldex.Link, bool) {
	return f.PopFn()
}

func (f *Frontier) Len() int {
	return f.LenFn()
}

func (f *Frontier) Seen(url string) bool {
	return f.SeenFn(url)
}

func (f *Frontier) AtCapacity() bool {
	return f.AtCapacityFn()
}

func (f *Frontier) Admitted() int {
	return f.AdmittedFn()
}

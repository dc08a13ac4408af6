package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/crawldex/crawldex"
	"github.com/crawldex/crawldex/crawl"
	"github.com/stretchr/testify/assert"
)

func TestFrontier_Push_RejectsDuplicateURLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100)
	link := crawldex.Link{URL: "https://example.test/page1"}

	assert.True(t, f.Push(link), "first push should succeed")
	assert.False(t, f.Push(link), "duplicate URL should be rejected")
	assert.Equal(t, 1, f.Admitted())
}

func TestFrontier_Push_RejectsAlreadyPoppedURLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100)
	f.Push(crawldex.Link{URL: "https://example.test/a"})
	_, ok := f.Pop()
	assert.True(t, ok)

	// The URL is out of the stack but stays admitted forever.
	assert.False(t, f.Push(crawldex.Link{URL: "https://example.test/a"}))
	assert.True(t, f.Seen("https://example.test/a"))
}

func TestFrontier_Pop_IsLIFO(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100)
	f.Push(crawldex.Link{URL: "https://example.test/first"})
	f.Push(crawldex.Link{URL: "https://example.test/second"})
	f.Push(crawldex.Link{URL: "https://example.test/third"})

	link, ok := f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://example.test/third", link.URL)

	link, ok = f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://example.test/second", link.URL)

	link, ok = f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://example.test/first", link.URL)

	_, ok = f.Pop()
	assert.False(t, ok, "pop on empty frontier should report empty")
}

func TestFrontier_AdmissionCapCountsTotalEverPushed(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(3)
	assert.True(t, f.Push(crawldex.Link{URL: "https://example.test/a"}))
	assert.True(t, f.Push(crawldex.Link{URL: "https://example.test/b"}))

	// Popping does not free capacity.
	f.Pop()
	f.Pop()
	assert.Equal(t, 0, f.Len())

	assert.True(t, f.Push(crawldex.Link{URL: "https://example.test/c"}))
	assert.True(t, f.AtCapacity())
	assert.False(t, f.Push(crawldex.Link{URL: "https://example.test/d"}), "push past capacity must be dropped")
	assert.Equal(t, 3, f.Admitted())
}

func TestFrontier_CapacityInvariantUnderManyPushes(t *testing.T) {
	t.Parallel()

	const capacity = 50
	f := crawl.NewFrontier(capacity)
	for i := 0; i < 500; i++ {
		f.Push(crawldex.Link{URL: fmt.Sprintf("https://example.test/p/%d", i)})
	}

	assert.Equal(t, capacity, f.Admitted())
	assert.Equal(t, capacity, f.Len())
}

func TestFrontier_DefaultCapacity(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(0)
	for i := 0; i < crawl.DefaultCapacity+10; i++ {
		f.Push(crawldex.Link{URL: fmt.Sprintf("https://example.test/p/%d", i)})
	}
	assert.Equal(t, crawl.DefaultCapacity, f.Admitted())
}

func TestFrontier_ConcurrentPushesRespectCapacity(t *testing.T) {
	t.Parallel()

	const capacity = 100
	f := crawl.NewFrontier(capacity)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				f.Push(crawldex.Link{URL: fmt.Sprintf("https://example.test/%d/%d", w, i)})
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, capacity, f.Admitted())
}

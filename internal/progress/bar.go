package progress

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Bar renders byte progress while a file source is being read. Writes go
// through a buffered channel so the reader never blocks on rendering.
type Bar struct {
	bar  *progressbar.ProgressBar
	ch   chan int64
	done chan struct{}
}

func New(totalBytes int64) *Bar {
	b := &Bar{
		ch:   make(chan int64, 1024),
		done: make(chan struct{}),
	}

	b.bar = progressbar.NewOptions64(
		totalBytes,
		progressbar.OptionSetWriter(os.Stdout),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionSetDescription("hashing"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(120*time.Millisecond),
	)
	_ = b.bar.RenderBlank()

	go func() {
		defer close(b.done)
		for n := range b.ch {
			_ = b.bar.Add64(n)
		}
		_ = b.bar.Finish()
	}()

	return b
}

// AddBytes records n more bytes read. Safe to pass as a progress
// callback; n <= 0 is ignored.
func (b *Bar) AddBytes(n int64) {
	if n <= 0 {
		return
	}
	b.ch <- n
}

// Close finishes rendering and waits for the feeder goroutine.
func (b *Bar) Close() {
	close(b.ch)
	<-b.done
}

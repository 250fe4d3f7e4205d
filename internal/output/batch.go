package output

import (
	"image"
	"sync"

	"github.com/tdhowe/Ballquest/internal/cards"
)

// CardRenderer is satisfied by *render.Renderer.
type CardRenderer interface {
	Render(spec *cards.CardSpec) (image.Image, error)
}

type Result struct {
	Name string
	Path string
	Err  error
}

// RenderAll renders and writes every card using up to workers goroutines.
// Results come back in input order. A failed card only fails its own
// result; nothing is written for it.
func RenderAll(r CardRenderer, w Writer, specs []cards.CardSpec, workers int) []Result {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(specs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				spec := &specs[j]
				res := Result{Name: spec.Name}
				img, err := r.Render(spec)
				if err == nil {
					res.Path, err = w.Write(spec.Name, img)
				}
				res.Err = err
				results[j] = res
			}
		}()
	}

	for j := range specs {
		jobs <- j
	}
	close(jobs)
	wg.Wait()
	return results
}

package morfessor

import (
	"runtime"
	"sort"
	"sync"
)

// WordSegmentation is one word's Viterbi segmentation, returned by
// SegmentAll.
type WordSegmentation struct {
	Word     string
	Segments []string
	Cost     float64
}

// SegmentAll fans Viterbi segmentation of words out across
// runtime.NumCPU() workers, adapted from the teacher's
// ParseList/InflectList worker-pool pattern (chunked dispatcher,
// worker pool draining a channel, collector gathering results,
// final sort for a deterministic order independent of completion
// order).
func SegmentAll(m *BaselineModel, words []string, addcount float64, maxlen int) []WordSegmentation {
	const chunkSize = 1000
	numWorkers := runtime.NumCPU()

	chunksCh := make(chan []string, numWorkers)
	resultCh := make(chan []WordSegmentation, numWorkers)

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for chunk := range chunksCh {
				out := make([]WordSegmentation, 0, len(chunk))
				for _, word := range chunk {
					segs, segCost, err := m.ViterbiSegment(word, addcount, maxlen)
					if err != nil {
						continue
					}
					out = append(out, WordSegmentation{Word: word, Segments: segs, Cost: segCost})
				}
				resultCh <- out
			}
		}()
	}

	go func() {
		for i := 0; i < len(words); i += chunkSize {
			end := i + chunkSize
			if end > len(words) {
				end = len(words)
			}
			chunksCh <- words[i:end]
		}
		close(chunksCh)
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	all := make([]WordSegmentation, 0, len(words))
	for result := range resultCh {
		all = append(all, result...)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Word < all[j].Word })
	return all
}

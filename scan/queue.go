package scan

import (
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"hiddenmsg/stegano/text"
	"hiddenmsg/util"
)

// Job is a text waiting to be decoded. Line is the line of Source the
// text starts at.
type Job struct {
	Source string `json:"source" cbor:"source"`
	Line   int    `json:"line" cbor:"line"`
	Text   string `json:"-" cbor:"-"`
	seq    uint64
}

// Hit is a fragment which carried a message.
type Hit struct {
	Job
	Result text.Result `json:"result" cbor:"result"`
	Links  []string    `json:"links,omitempty" cbor:"links,omitempty"`
}

// the queue which decodes fragments on a fixed set of workers
type Queue struct {
	jobs      chan Job
	hits      chan Hit
	decoder   text.Decoder
	cache     *Cache // may be nil
	minLength int
	wg        sync.WaitGroup
	mtx       sync.RWMutex
	closed    bool
	pushed    atomic.Uint64
}

func NewQueue(workers, queueSize uint, minLength int, decoder text.Decoder, cache *Cache) *Queue {
	if workers == 0 {
		workers = 1
	}
	q := &Queue{
		jobs:      make(chan Job, queueSize),
		hits:      make(chan Hit, queueSize),
		decoder:   decoder,
		cache:     cache,
		minLength: minLength,
	}
	q.wg.Add(int(workers))
	for i := uint(0); i < workers; i++ {
		go q.work()
	}
	go func() {
		q.wg.Wait()
		close(q.hits)
	}()
	return q
}

// Push schedules the job. It reports false once the queue is closed.
func (q *Queue) Push(job Job) bool {
	q.mtx.RLock()
	defer q.mtx.RUnlock()
	if q.closed {
		return false
	}
	job.seq = q.pushed.Add(1)
	q.jobs <- job
	return true
}

// Hits is closed after Close, when every pushed job is done.
func (q *Queue) Hits() <-chan Hit {
	return q.hits
}

func (q *Queue) Close() {
	q.mtx.Lock()
	defer q.mtx.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.jobs)
}

func (q *Queue) work() {
	defer q.wg.Done()
	for job := range q.jobs {
		if hit, ok := q.process(job); ok {
			q.hits <- hit
		}
	}
}

func (q *Queue) process(job Job) (Hit, bool) {
	if utf8.RuneCountInString(job.Text) < q.minLength {
		return Hit{}, false
	}
	var (
		res text.Result
		ok  bool
	)
	if q.cache != nil {
		res, ok = q.cache.Decode(q.decoder, job.Text)
	} else {
		res, ok = q.decoder.Decode(job.Text)
	}
	if !ok {
		return Hit{}, false
	}
	job.Line += markLine(job.Text, res.Scheme) - 1
	util.DebugPrintf("[scan] %s:%d: %s\n", job.Source, job.Line, res.Scheme)
	return Hit{Job: job, Result: res, Links: Links(res.Text)}, true
}

// markLine returns the line of s, counting from 1, which holds the first
// mark of the scheme. Marks of a learned scheme are any candidate.
func markLine(s, schemeName string) int {
	scheme, known := text.SchemeByName(schemeName)
	line := 1
	for _, r := range s {
		if r == '\n' {
			line++
			continue
		}
		if known {
			if _, ok := scheme.FromSelector(r); ok {
				return line
			}
		} else if r >= text.MarkThreshold {
			return line
		}
	}
	return 1
}

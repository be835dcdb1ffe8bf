package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"hiddenmsg/config"
	"hiddenmsg/stegano/text"
	"hiddenmsg/util"
)

const (
	TextFile    = int8(0) // plain text, code, logs
	MarkupFile  = int8(1) // scanned as text, tags included
	UnknownFile = int8(-1)
)

func DetermineFileType(ext string) int8 {
	supportedTexts := []string{
		"txt", "md", "csv", "log", "json", "yaml", "yml", "toml",
		"go", "py", "js", "ts", "rs", "c", "h", "conf",
	}
	supportedMarkup := []string{"html", "htm", "xml", "svg"}

	types := map[int8][]string{
		TextFile:   supportedTexts,
		MarkupFile: supportedMarkup,
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for t, v := range types {
		for _, val := range v {
			if val == ext {
				return t
			}
		}
	}
	return UnknownFile
}

// Scanner looks for hidden messages in texts and files.
type Scanner struct {
	conf    config.ScannerConfig
	decoder text.Decoder
	cache   *Cache
}

func NewScanner(conf config.ScannerConfig, decoder text.Decoder) *Scanner {
	return &Scanner{
		conf:    conf,
		decoder: decoder,
		cache:   NewCache(conf.CacheSize),
	}
}

// ScanTexts decodes every text as a whole, naming the source by its index.
// A message may span several lines of its carrier.
func (s *Scanner) ScanTexts(texts []string) []Hit {
	return s.run(func(q *Queue) {
		for i, t := range texts {
			q.Push(Job{Source: fmt.Sprintf("#%d", i), Line: 1, Text: t})
		}
	})
}

// ScanFiles decodes the given files, and the files of the given folders
// having one of the configured extensions. A file which can't be read is
// reported in the error but doesn't stop the scan.
func (s *Scanner) ScanFiles(paths []string) ([]Hit, error) {
	var errs error
	hits := s.run(func(q *Queue) {
		for _, p := range s.expand(paths, &errs) {
			data, err := os.ReadFile(p)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			q.Push(Job{Source: p, Line: 1, Text: string(data)})
		}
	})
	return hits, errs
}

func (s *Scanner) expand(paths []string, errs *error) []string {
	files := []string{}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			*errs = multierr.Append(*errs, err)
			continue
		}
		if !info.IsDir() {
			if DetermineFileType(filepath.Ext(p)) == UnknownFile {
				*errs = multierr.Append(*errs, fmt.Errorf("%s: unsupported file type", p))
				continue
			}
			files = append(files, p)
			continue
		}
		found, err := util.ReadFiles(p, s.conf.Extensions)
		if err != nil {
			*errs = multierr.Append(*errs, err)
			continue
		}
		files = append(files, found...)
	}
	return files
}

func (s *Scanner) run(feed func(q *Queue)) []Hit {
	q := NewQueue(s.conf.Workers, s.conf.QueueSize, s.conf.MinLength, s.decoder, s.cache)
	done := make(chan []Hit)
	go func() {
		hits := []Hit{}
		for h := range q.Hits() {
			hits = append(hits, h)
		}
		done <- hits
	}()
	feed(q)
	q.Close()
	hits := <-done

	// workers finish in any order
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].seq < hits[j].seq
	})
	return hits
}

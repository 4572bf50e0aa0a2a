package scores

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// Store is the persistence contract: Load never fails (it substitutes
// placeholders), Save overwrites the whole record set.
type Store interface {
	Load() []Record
	Save(recs []Record) error
}

// FileStore keeps the board as one "initials,score" line per record.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Defaults is the placeholder board used when the file is missing or corrupt.
func Defaults() []Record {
	return []Record{{"AAA", 0}, {"AAA", 0}, {"AAA", 0}}
}

// validInitials reports whether s is exactly three uppercase letters,
// the only form the entry screen can produce.
func validInitials(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// Load reads the score file. A missing or unreadable file, or one with no
// parseable lines, yields the placeholder board; bad lines are skipped.
func (s *FileStore) Load() []Record {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("SCORES: read %s: %v", s.Path, err)
		}
		return Defaults()
	}

	var recs []Record
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		initials, num, ok := strings.Cut(line, ",")
		if !ok || !validInitials(initials) {
			continue
		}
		score, err := strconv.Atoi(strings.TrimSpace(num))
		if err != nil || score < 0 {
			continue
		}
		recs = append(recs, Record{Initials: initials, Score: score})
	}
	if len(recs) == 0 {
		return Defaults()
	}
	return NewBoard(recs).Records()
}

// Save rewrites the file atomically (tmp then rename).
func (s *FileStore) Save(recs []Record) error {
	var sb strings.Builder
	for _, r := range NewBoard(recs).Records() {
		fmt.Fprintf(&sb, "%s,%d\n", r.Initials, r.Score)
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, []byte(sb.String()), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path)
}

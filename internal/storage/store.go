package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/orbitgen/internal/celestial"
	"github.com/san-kum/orbitgen/internal/logging"
)

const (
	DefaultDir = "./config"
	filePrefix = "auto_gen_"
	fileExt    = ".json"
)

// Store keeps generated configs as <dir>/auto_gen_<name>.json.
type Store struct {
	baseDir string
	log     *log.Logger
}

func New(baseDir string, logger *log.Logger) *Store {
	return &Store{baseDir: baseDir, log: logging.OrDiscard(logger)}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type Entry struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Bodies       int       `json:"bodies"`
	DtMultiplier float64   `json:"dt_multiplier"`
	ModTime      time.Time `json:"mod_time"`
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return celestial.Invalid("name", name, "must not be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return celestial.Invalid("name", name, "must not contain path separators")
	}
	return nil
}

func (s *Store) Path(name string) string {
	return filepath.Join(s.baseDir, filePrefix+name+fileExt)
}

func (s *Store) Save(name string, doc *celestial.Document) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	if err := s.Init(); err != nil {
		return "", err
	}

	path := s.Path(name)
	if err := celestial.WriteFile(path, doc); err != nil {
		return "", err
	}
	s.log.Info("config saved", "path", path, "bodies", len(doc.Bodies))
	return path, nil
}

func (s *Store) List() ([]Entry, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, err
	}

	out := make([]Entry, 0)
	for _, entry := range entries {
		fname := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(fname, filePrefix) || !strings.HasSuffix(fname, fileExt) {
			continue
		}

		path := filepath.Join(s.baseDir, fname)
		doc, err := celestial.ReadFile(path)
		if err != nil {
			s.log.Warn("skipping unreadable config", "path", path, "err", err)
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		out = append(out, Entry{
			Name:         strings.TrimSuffix(strings.TrimPrefix(fname, filePrefix), fileExt),
			Path:         path,
			Bodies:       len(doc.Bodies),
			DtMultiplier: doc.DtMultiplier,
			ModTime:      info.ModTime(),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) Load(name string) (*celestial.Document, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	doc, err := celestial.ReadFile(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return doc, nil
}

// Resolve loads ref as a stored config name, falling back to a file path.
func (s *Store) Resolve(ref string) (*celestial.Document, error) {
	if ValidateName(ref) == nil {
		if _, err := os.Stat(s.Path(ref)); err == nil {
			return s.Load(ref)
		}
	}
	return celestial.ReadFile(ref)
}

package fileicons

import (
	"sync"

	"github.com/arthur-debert/fileicons/pkg/icondb"
	"github.com/arthur-debert/fileicons/pkg/icons"
	"github.com/arthur-debert/fileicons/pkg/icontables"
	"github.com/arthur-debert/fileicons/pkg/logging"
)

// Classes returned when no rule matches
const (
	FallbackFileClass      = "icon-file-text"
	FallbackDirectoryClass = "icon-file-directory"
)

// Options tune a single classification. The zero value classifies a file
// in light mode with fallback enabled.
type Options struct {
	ColorMode    icons.ColorMode
	IsDir        bool
	SkipFallback bool
}

var (
	dbMu   sync.RWMutex
	shared *icontables.IconTables
)

// DB returns the shared tables, building them from the embedded database on
// first use. The embedded database ships with the binary, so failing to
// build it is a programming error and panics.
func DB() *icontables.IconTables {
	dbMu.RLock()
	t := shared
	dbMu.RUnlock()
	if t != nil {
		return t
	}

	dbMu.Lock()
	defer dbMu.Unlock()
	if shared != nil {
		return shared
	}

	db, err := icondb.Default()
	if err != nil {
		panic(err)
	}
	t, err = icontables.New(db)
	if err != nil {
		panic(err)
	}
	shared = t
	return shared
}

// SetDB replaces the shared tables. Passing nil restores the embedded
// database on the next call to DB.
func SetDB(t *icontables.IconTables) {
	dbMu.Lock()
	defer dbMu.Unlock()
	shared = t
}

// ResetCache clears the lookup cache of the shared tables
func ResetCache() {
	DB().ResetCache()
}

// GetIconClass returns the space-separated icon and color classes for
// name. ok is false only when nothing matched and SkipFallback is set.
func GetIconClass(name string, opts Options) (string, bool) {
	icon := DB().MatchName(name, opts.IsDir)
	if icon == nil {
		return fallback(name, opts)
	}
	return icon.ClassName(opts.ColorMode.Index()), true
}

// GetIconClassList is GetIconClass returning one class per element
func GetIconClassList(name string, opts Options) ([]string, bool) {
	icon := DB().MatchName(name, opts.IsDir)
	if icon == nil {
		class, ok := fallback(name, opts)
		if !ok {
			return nil, false
		}
		return []string{class}, true
	}
	return icon.ClassList(opts.ColorMode.Index()), true
}

func fallback(name string, opts Options) (string, bool) {
	if opts.SkipFallback {
		return "", false
	}

	class := FallbackFileClass
	if opts.IsDir {
		class = FallbackDirectoryClass
	}

	logger := logging.GetLogger("fileicons")
	logger.Trace().Str("name", name).Bool("dir", opts.IsDir).Str("class", class).Msg("Using fallback class")
	return class, true
}

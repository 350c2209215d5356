package icontables

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/fileicons/pkg/errors"
	"github.com/arthur-debert/fileicons/pkg/icondb"
	"github.com/arthur-debert/fileicons/pkg/icons"
	"github.com/arthur-debert/fileicons/pkg/logging"
)

// Keys used to resolve the convenience icons at construction
const (
	binaryScope      = "source.asm"
	executableInterp = "bash"
)

// IconTables is the queryable rule set built from an icon database
type IconTables struct {
	directories IconTable
	files       IconTable

	binaryIcon     *icons.Icon
	executableIcon *icons.Icon

	cache  *Cache
	logger zerolog.Logger
}

// New builds both tables from db. An out of range offset or a pattern that
// does not compile means the database is corrupt; no partial tables are
// returned.
func New(db *icondb.Database) (*IconTables, error) {
	logger := logging.GetLogger("icontables")
	done := logging.LogOperationStart(logger, "build-icon-tables")
	defer done()

	if db == nil {
		return nil, errors.New(errors.ErrInvalidInput, "icon database is nil")
	}

	directories, err := readTable("directories", db.Directories)
	if err != nil {
		return nil, err
	}
	files, err := readTable("files", db.Files)
	if err != nil {
		return nil, err
	}

	t := &IconTables{
		directories: directories,
		files:       files,
		cache:       NewCache(),
		logger:      logger,
	}
	t.binaryIcon = t.MatchScope(binaryScope)
	t.executableIcon = t.MatchInterpreter(executableInterp)

	logger.Info().
		Int("directoryRules", len(directories.ByName)).
		Int("fileRules", len(files.ByName)).
		Bool("binaryIcon", t.binaryIcon != nil).
		Bool("executableIcon", t.executableIcon != nil).
		Msg("Icon tables built")

	return t, nil
}

// Directories returns the directory rule table
func (t *IconTables) Directories() IconTable { return t.directories }

// Files returns the file rule table
func (t *IconTables) Files() IconTable { return t.files }

// BinaryIcon is the icon for binary files, or nil if the database has none
func (t *IconTables) BinaryIcon() *icons.Icon { return t.binaryIcon }

// ExecutableIcon is the icon for executables, or nil if the database has none
func (t *IconTables) ExecutableIcon() *icons.Icon { return t.executableIcon }

// MatchName matches a file or directory basename against ByName
func (t *IconTables) MatchName(name string, directory bool) *icons.Icon {
	if directory {
		return t.lookup(SlotDirectoryName, name, t.directories.ByName, (*icons.Icon).Match)
	}
	return t.lookup(SlotFileName, name, t.files.ByName, (*icons.Icon).Match)
}

// MatchPath matches a full pathname against ByPath
func (t *IconTables) MatchPath(path string, directory bool) *icons.Icon {
	if directory {
		return t.lookup(SlotDirectoryPath, path, t.directories.ByPath, (*icons.Icon).Match)
	}
	return t.lookup(SlotFilePath, path, t.files.ByPath, (*icons.Icon).Match)
}

// MatchLanguage matches the human-readable name or alias of a language,
// as found in modelines or linguist attributes, e.g. "JavaScript"
func (t *IconTables) MatchLanguage(name string) *icons.Icon {
	return t.lookup(SlotLanguage, name, t.files.ByLanguage, (*icons.Icon).Language)
}

// MatchScope matches a grammar scope name, e.g. "source.js"
func (t *IconTables) MatchScope(name string) *icons.Icon {
	return t.lookup(SlotScope, name, t.files.ByScope, (*icons.Icon).Scope)
}

// MatchInterpreter matches the executable named in a hashbang, e.g. "bash"
func (t *IconTables) MatchInterpreter(name string) *icons.Icon {
	return t.lookup(SlotInterpreter, name, t.files.ByInterpreter, (*icons.Icon).Interpreter)
}

// MatchSignature matches leading file content, such as a first line
func (t *IconTables) MatchSignature(data string) *icons.Icon {
	return t.lookup(SlotSignature, data, t.files.BySignature, (*icons.Icon).Signature)
}

// Match dispatches to the lookup for dim. Only name and path have
// directory rules.
func (t *IconTables) Match(dim Dimension, key string, directory bool) (*icons.Icon, error) {
	if directory && !dim.SupportsDirectories() {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s lookups only apply to files", dim)
	}

	switch dim {
	case DimensionName:
		return t.MatchName(key, directory), nil
	case DimensionPath:
		return t.MatchPath(key, directory), nil
	case DimensionInterpreter:
		return t.MatchInterpreter(key), nil
	case DimensionLanguage:
		return t.MatchLanguage(key), nil
	case DimensionScope:
		return t.MatchScope(key), nil
	case DimensionSignature:
		return t.MatchSignature(key), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown dimension %d", dim)
	}
}

// CacheStats returns the number of memoized keys per cache slot
func (t *IconTables) CacheStats() map[string]int {
	return t.cache.Stats()
}

// ResetCache forgets every memoized lookup
func (t *IconTables) ResetCache() {
	t.cache.Reset()
}

// lookup runs the cache-then-first-match scan shared by every dimension
func (t *IconTables) lookup(slot Slot, key string, list []*icons.Icon, pattern func(*icons.Icon) *icons.Pattern) *icons.Icon {
	if icon, ok := t.cache.Get(slot, key); ok {
		lookupTotal.WithLabelValues(slot.String(), resultHit).Inc()
		return icon
	}

	for i, icon := range list {
		p := pattern(icon)
		if p == nil || !p.MatchString(key) {
			continue
		}

		t.cache.Put(slot, key, icon)
		lookupTotal.WithLabelValues(slot.String(), resultMatch).Inc()
		scanRules.WithLabelValues(slot.String()).Observe(float64(i + 1))
		t.logger.Trace().
			Str("slot", slot.String()).
			Str("key", key).
			Str("icon", icon.Class()).
			Int("index", icon.Index()).
			Msg("Icon matched")
		return icon
	}

	lookupTotal.WithLabelValues(slot.String(), resultMiss).Inc()
	scanRules.WithLabelValues(slot.String()).Observe(float64(len(list)))
	t.logger.Trace().
		Str("slot", slot.String()).
		Str("key", key).
		Msg("No icon matched")
	return nil
}

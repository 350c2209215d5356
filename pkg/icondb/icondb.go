package icondb

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"os"

	"github.com/arthur-debert/fileicons/pkg/errors"
)

// FormatVersion identifies the nested-array layout this package decodes
const FormatVersion = 1

// Positions of the offset lists inside a record's index block
const (
	IndexInterpreter = iota
	IndexLanguage
	IndexPath
	IndexScope
	IndexSignature

	// IndexCount is the number of offset lists every record carries
	IndexCount
)

//go:embed icondb.json
var embeddedDB []byte

// Database is the decoded form of the serialized rule table
type Database struct {
	Directories Record
	Files       Record
}

// Record holds one table's raw icons in precedence order plus the offset
// lists for each secondary dimension
type Record struct {
	Icons   []RawIcon
	Indexes [IndexCount][]int
}

// Default decodes the database embedded in the binary
func Default() (*Database, error) {
	return Decode(bytes.NewReader(embeddedDB))
}

// Load reads a database from a file on disk
func Load(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDatabaseLoad, "cannot open icon database %s", path)
	}
	defer func() { _ = f.Close() }()

	db, err := Decode(f)
	if err != nil {
		if fiErr, ok := err.(*errors.FileIconsError); ok {
			return nil, fiErr.WithDetail("path", path)
		}
		return nil, err
	}
	return db, nil
}

// Decode parses a database from r
func Decode(r io.Reader) (*Database, error) {
	var db Database
	if err := json.NewDecoder(r).Decode(&db); err != nil {
		if fiErr, ok := err.(*errors.FileIconsError); ok {
			return nil, fiErr
		}
		return nil, errors.Wrap(err, errors.ErrDatabaseFormat, "cannot decode icon database")
	}
	return &db, nil
}

// UnmarshalJSON decodes the top-level [directories, files] pair
func (d *Database) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return errors.Wrap(err, errors.ErrDatabaseFormat, "database must be an array")
	}
	if len(parts) != 2 {
		return errors.Newf(errors.ErrDatabaseFormat, "database must hold 2 records, got %d", len(parts))
	}
	if err := json.Unmarshal(parts[0], &d.Directories); err != nil {
		return wrapRecordErr(err, "directories")
	}
	if err := json.Unmarshal(parts[1], &d.Files); err != nil {
		return wrapRecordErr(err, "files")
	}
	return nil
}

// UnmarshalJSON decodes a [icons, indexes] record
func (r *Record) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return errors.Wrap(err, errors.ErrDatabaseFormat, "record must be an array")
	}
	if len(parts) != 2 {
		return errors.Newf(errors.ErrDatabaseFormat, "record must hold icons and indexes, got %d elements", len(parts))
	}

	var icons []RawIcon
	if err := json.Unmarshal(parts[0], &icons); err != nil {
		return err
	}

	var indexes [][]int
	if err := json.Unmarshal(parts[1], &indexes); err != nil {
		return errors.Wrap(err, errors.ErrDatabaseFormat, "index lists must be arrays of integers")
	}
	if len(indexes) != IndexCount {
		return errors.Newf(errors.ErrDatabaseFormat, "record must hold %d index lists, got %d", IndexCount, len(indexes))
	}

	r.Icons = icons
	copy(r.Indexes[:], indexes)
	return nil
}

func wrapRecordErr(err error, table string) error {
	if fiErr, ok := err.(*errors.FileIconsError); ok {
		return fiErr.WithDetail("table", table)
	}
	return errors.Wrapf(err, errors.ErrDatabaseFormat, "cannot decode %s record", table)
}

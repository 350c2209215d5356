package icontables

import (
	"github.com/arthur-debert/fileicons/pkg/errors"
	"github.com/arthur-debert/fileicons/pkg/icondb"
	"github.com/arthur-debert/fileicons/pkg/icons"
)

// IconTable holds one record's icons in name order plus the dimension
// orderings over the same Icon pointers
type IconTable struct {
	ByName        []*icons.Icon
	ByInterpreter []*icons.Icon
	ByLanguage    []*icons.Icon
	ByPath        []*icons.Icon
	ByScope       []*icons.Icon
	BySignature   []*icons.Icon
}

var indexNames = [icondb.IndexCount]string{
	icondb.IndexInterpreter: "interpreter",
	icondb.IndexLanguage:    "language",
	icondb.IndexPath:        "path",
	icondb.IndexScope:       "scope",
	icondb.IndexSignature:   "signature",
}

// readTable instantiates a record's icons and dereferences its offset lists
func readTable(name string, rec icondb.Record) (IconTable, error) {
	pool := make([]*icons.Icon, len(rec.Icons))
	for i, raw := range rec.Icons {
		icon, err := icons.New(i, raw)
		if err != nil {
			if fiErr, ok := err.(*errors.FileIconsError); ok {
				return IconTable{}, fiErr.WithDetail("table", name)
			}
			return IconTable{}, err
		}
		pool[i] = icon
	}

	var ordered [icondb.IndexCount][]*icons.Icon
	for dim, offsets := range rec.Indexes {
		refs := make([]*icons.Icon, len(offsets))
		for i, offset := range offsets {
			if offset < 0 || offset >= len(pool) {
				return IconTable{}, errors.Newf(errors.ErrOffsetRange,
					"%s %s index refers to icon %d of %d", name, indexNames[dim], offset, len(pool)).
					WithDetail("table", name).
					WithDetail("dimension", indexNames[dim]).
					WithDetail("offset", offset)
			}
			refs[i] = pool[offset]
		}
		ordered[dim] = refs
	}

	return IconTable{
		ByName:        pool,
		ByInterpreter: ordered[icondb.IndexInterpreter],
		ByLanguage:    ordered[icondb.IndexLanguage],
		ByPath:        ordered[icondb.IndexPath],
		ByScope:       ordered[icondb.IndexScope],
		BySignature:   ordered[icondb.IndexSignature],
	}, nil
}

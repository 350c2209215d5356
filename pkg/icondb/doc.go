// Package icondb decodes the serialized icon rule database.
//
// The database is a build-time artifact: a JSON document of nested arrays
// with two records, directories first and files second. Each record pairs
// an ordered list of raw icon tuples with five lists of offsets into it,
// one per secondary lookup dimension:
//
//	[
//	  [ [icon, ...], [interpreter[], language[], path[], scope[], signature[]] ],
//	  [ [icon, ...], [interpreter[], language[], path[], scope[], signature[]] ]
//	]
//
// A raw icon tuple is positional:
//
//	[class, [lightColor, darkColor], match, priority, matchPath,
//	 interpreter, scope, language, signature]
//
// Trailing slots may be omitted or null. Patterns are JavaScript regex
// literals such as "/\\.js$/i".
//
// The layout is versioned by FormatVersion. Any change to it is a breaking
// change for every consumer. Input is trusted: decoding checks shape only.
// Offsets and patterns are checked when the tables are built.
//
// The embedded icondb.json is a representative subset of the full rule set.
// Names it does not cover fall back to the generic classes. Point the
// database.path setting (or --database) at a full database to use every rule.
package icondb

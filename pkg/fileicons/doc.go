// Package fileicons resolves the icon class a file or directory should be
// displayed with.
//
// Classification tries the name rules of the directory or file table, in
// table order, and returns the first icon whose pattern matches. The class
// string is the icon class followed by the color class for the requested
// color mode, if the rule has one:
//
//	cls, ok := fileicons.GetIconClass("app.js", fileicons.Options{})
//	// cls == "js-icon medium-yellow", ok == true
//
// Names no rule matches fall back to FallbackFileClass or
// FallbackDirectoryClass unless Options.SkipFallback is set, in which case
// ok is false.
//
// All functions share one IconTables instance built lazily from the
// embedded database. SetDB replaces it.
package fileicons

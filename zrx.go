// Package zrx provides structured identifiers for addressing resources and
// a multi-selector matching engine over them.
//
// An identifier names a resource through five components (scheme, binding,
// context, path and fragment) in a compact textual form:
//
//	zri:<scheme>:<binding>:<context>:<path>:<fragment>
//
// A selector carries the same components as glob patterns, with empty
// components acting as wildcards:
//
//	zrs:<scheme>:<binding>:<context>:<path>:<fragment>
//
// # Identifiers
//
// Create identifiers from components or parse them from the wire format:
//
//	id, _ := zrx.NewID("file", "docs", "index.md")
//	fmt.Println(id) // zri:file::docs:index.md:
//
//	id, _ = zrx.ParseID("zri:git:main:docs:index.md:")
//	binding, ok := id.Binding() // "main", true
//
// Components can be rewritten in place without re-parsing; values containing
// the ':' separator are percent-encoded transparently:
//
//	_ = id.SetPath("a:b")
//	fmt.Println(id.Path()) // a:b
//
// # Matching
//
// A Matcher compiles any number of selectors into five per-component pattern
// sets and answers which selectors match an identifier in a single pass:
//
//	builder := zrx.NewBuilder()
//	_ = builder.AddString("zrs::::**/*.md:")
//	_ = builder.AddString("zrs:git::::")
//	matcher, _ := builder.Build()
//
//	id, _ = zrx.ParseID("zri:git:main:docs:index.md:")
//	matcher.IsMatch(id) // true
//	matcher.Matches(id) // [0 1]
//
// # Filesystem projection
//
// FilePath projects an identifier's context and path onto a relative
// filesystem path, rejecting parent-directory traversal and rooted paths so
// results stay inside a sandbox root.
//
// # Package structure
//
// The format package implements the span-indexed string encoding backing
// identifiers and selectors; errs defines the sentinel errors returned
// across the module. This package is a pure library: it starts no
// goroutines, owns no configuration and logs nothing.
package zrx

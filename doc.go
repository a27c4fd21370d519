// Package mdp parses Markdown into a lazy sequence of block nodes.
//
// The parser works over one in-memory byte buffer and produces blocks on
// demand: each call to Next speculatively tries block productions against
// the buffer, rolling the cursor back whenever a production does not match.
// Nested structures such as block quotes and list items are parsed by
// forking a sub-parser over the carved-out region.
//
// Core properties:
//   - Backtracking cursor with checkpoint/rollback over a borrowed buffer
//   - Lazy, pull-based block production; no restart after consumption
//   - Reference links resolve against definitions anywhere in the document
//   - Malformed markup degrades to literal text, never an error
//
// Example:
//
//	doc := mdp.New([]byte("# Hello\n\nSome *emphasis* and a [link](https://x.test).\n")).ReadAll()
//	err := mdp.WriteText(os.Stdout, doc, 80)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Parsing behavior is customized with Options such as WithNestLimit.
package mdp

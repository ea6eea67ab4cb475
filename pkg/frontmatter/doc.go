// Package frontmatter isolates and decodes the YAML front matter at the
// start of a document such as a Quarto .qmd file.
//
// Front matter is the text between an opening line "---" at the very start
// of the document and the next line "---". The first closing line ends the
// block, so a document may use "---" lines further down (for example as
// Markdown rules) without affecting the result.
//
// # Basic Usage
//
//	block, ok := frontmatter.Extract(content)
//	if !ok {
//		// no front matter, not an error
//	}
//	fm, err := frontmatter.Decode(block)
//	if err != nil {
//		// errors.Is(err, frontmatter.ErrInvalidYAML)
//	}
//	docker, ok := fm.Mapping("docker")
//
// # Error Handling
//
// Missing front matter is reported through the boolean results, never as an
// error. Only malformed YAML produces [ErrInvalidYAML].
//
// Both Unix (LF) and Windows (CRLF) line endings are handled.
package frontmatter

// Package markdown renders site content and governance documents.
//
// Documents may start with YAML frontmatter:
//
//	---
//	title: Methodology
//	description: How TRIZEL validates observations
//	---
//	# Methodology
//
// Output is GitHub Flavored Markdown with heading ids and typographic
// quotes, passed through sanitizer.SanitizeDocument.
//
//	r := markdown.New()
//	doc, err := r.Render(src)
//	fmt.Println(doc.Title, doc.HTML)
package markdown

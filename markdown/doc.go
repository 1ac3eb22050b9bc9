// Package markdown renders an analyzed document structure, interleaved
// with image anchors, into dialect-correct markdown, and post-processes
// the result into a normalized form.
//
// Three dialects are recognized: standard, github, and obsidian. They
// differ only in image-embed syntax. Post-processing is idempotent:
// applying it to its own output changes nothing.
package markdown

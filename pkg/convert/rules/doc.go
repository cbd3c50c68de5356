// Package rules provides the built-in conversion rules for gomd2html.
//
// # Block rules
//
// Block rules read the raw document lines:
//
//   - B001: heading - "#" lines become <h1>..<h6>
//   - B002: list - "* " runs become <ul>, "- " runs become <ol>
//   - B003: paragraph - contentful lines are wrapped in <p>
//
// # Inline rules
//
// Inline rules rewrite emitted lines one at a time:
//
//   - I001: inline-bold - [[text]] becomes <b>text</b>
//   - I002: inline-strip - ((text)) loses every c and C
package rules

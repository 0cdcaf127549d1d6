// Package category routes questions to guide-document sections. A Store
// holds the section metadata (hierarchy, keywords, contact, line range per
// section) and a Matcher resolves extracted keywords to a single section,
// either by direct keyword overlap or by asking the chat model to pick
// from the enumerated sections.
package category

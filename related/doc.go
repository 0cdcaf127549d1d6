// Package related suggests follow-up questions for a resolved section.
// Section titles are turned into natural Korean question phrasing through
// an ordered pattern table, and candidates are collected through three
// fallback stages: same parent heading, same display category, then
// keyword overlap.
package related

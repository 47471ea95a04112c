// Package doctext extracts plain text from documents and images on disk.
// It tries a multi-format document extractor first and falls back to optical
// character recognition when an image file cannot be handled otherwise.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., docconv/, gosseract/, trafilatura/).
package doctext

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package videoplane

import "fmt"

// SourceDescriptor identifies the media to play. It is a tagged
// variant: either an opaque embedded media handle supplied by the host
// engine, or a path/URL string. Exactly one variant is populated; the
// zero value means "no source" and surface allocation never occurs
// while it is bound.
type SourceDescriptor struct {
	// Handle is an opaque embedded media reference owned by the host.
	// Nil when the URL variant is used.
	Handle any

	// URL is a path or URL string. Empty when the Handle variant is
	// used.
	URL string

	// RelativeToAssetRoot indicates that a relative URL resolves
	// against the host's local asset root rather than the working
	// directory.
	RelativeToAssetRoot bool
}

// SourceFromHandle creates a descriptor for an embedded media handle.
func SourceFromHandle(handle any) SourceDescriptor {
	return SourceDescriptor{Handle: handle}
}

// SourceFromURL creates a descriptor for a path or URL string.
// relativeToAssetRoot controls how relative paths resolve.
func SourceFromURL(url string, relativeToAssetRoot bool) SourceDescriptor {
	return SourceDescriptor{URL: url, RelativeToAssetRoot: relativeToAssetRoot}
}

// IsZero reports whether neither variant is populated.
func (s SourceDescriptor) IsZero() bool {
	return s.Handle == nil && s.URL == ""
}

// String returns a loggable description of the source.
func (s SourceDescriptor) String() string {
	switch {
	case s.Handle != nil:
		return fmt.Sprintf("handle(%T)", s.Handle)
	case s.URL != "":
		return s.URL
	default:
		return "<no source>"
	}
}

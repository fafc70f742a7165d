// Package classifier provides stateless media-type predicates over candidate
// asset URLs. Classification is heuristic: it follows the OpenSea metadata
// standards extension lists and deliberately treats "image" as the absence of
// a known video or audio suffix rather than the presence of an image suffix,
// so unknown extensions default to images.
package classifier

import (
	"strings"

	"github.com/soundvine/collectibles-indexer/internal/types"
)

// Extension sets based on OpenSea metadata standards
// https://docs.opensea.io/docs/metadata-standards
var (
	openseaAudioExtensions = []string{"mp3", "wav", "oga"}

	openseaVideoExtensions = []string{
		"gltf",
		"glb",
		"webm",
		"mp4",
		"m4v",
		"ogv",
		"ogg",
		"mov",
	}

	supportedVideoExtensions = []string{"webm", "mp4", "ogv", "ogg", "mov"}
)

// IsSupportedVideoURL reports whether a URL ends with a supported video extension
func IsSupportedVideoURL(url string) bool {
	for _, ext := range supportedVideoExtensions {
		if strings.HasSuffix(url, ext) {
			return true
		}
	}
	return false
}

// IsGifURL reports whether a URL names a GIF resource
func IsGifURL(url string) bool {
	return strings.HasSuffix(url, ".gif")
}

// isNonAVURL reports whether a URL lacks any known video or audio suffix.
// This is the weak image predicate: unknown extensions pass.
func isNonAVURL(url string) bool {
	for _, ext := range openseaVideoExtensions {
		if strings.HasSuffix(url, ext) {
			return false
		}
	}
	for _, ext := range openseaAudioExtensions {
		if strings.HasSuffix(url, ext) {
			return false
		}
	}
	return true
}

// IsGif reports whether any candidate URL names a GIF resource.
// GIF takes precedence over the video and image predicates because a GIF URL
// also satisfies the weak image predicate.
func IsGif(urls []*string) bool {
	return FirstGifURL(urls) != nil
}

// IsVideo reports whether any candidate URL ends with a supported video extension
func IsVideo(urls []*string) bool {
	for _, url := range urls {
		if !types.StringNilOrEmpty(url) && IsSupportedVideoURL(*url) {
			return true
		}
	}
	return false
}

// IsImage reports whether any candidate URL lacks a known video or audio suffix
func IsImage(urls []*string) bool {
	for _, url := range urls {
		if !types.StringNilOrEmpty(url) && isNonAVURL(*url) {
			return true
		}
	}
	return false
}

// FirstGifURL returns the first candidate URL ending in ".gif", or nil
func FirstGifURL(urls []*string) *string {
	for _, url := range urls {
		if !types.StringNilOrEmpty(url) && IsGifURL(*url) {
			return url
		}
	}
	return nil
}

// FirstNonVideoURL returns the first candidate URL whose extension is not a
// supported video extension, or nil. Used to pick a poster frame candidate
// for video collectibles.
func FirstNonVideoURL(urls []*string) *string {
	for _, url := range urls {
		if !types.StringNilOrEmpty(url) && !IsSupportedVideoURL(*url) {
			return url
		}
	}
	return nil
}

// FirstVideoURL returns the first candidate URL ending with a supported video
// extension, or nil
func FirstVideoURL(urls []*string) *string {
	for _, url := range urls {
		if !types.StringNilOrEmpty(url) && IsSupportedVideoURL(*url) {
			return url
		}
	}
	return nil
}

// FirstNonEmptyURL returns the first non-nil, non-empty candidate URL, or nil
func FirstNonEmptyURL(urls []*string) *string {
	for _, url := range urls {
		if !types.StringNilOrEmpty(url) {
			return url
		}
	}
	return nil
}

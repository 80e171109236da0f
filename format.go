package m3u8

import (
	"github.com/simonhull/m3u8/tag"
)

// Format distinguishes the two playlist kinds.
type Format uint8

const (
	// FormatUnknown is a playlist carrying no kind-specific tags.
	FormatUnknown Format = iota
	// FormatMaster is a multivariant playlist: variant streams, renditions
	// and session tags.
	FormatMaster
	// FormatMedia is a media playlist: segments and their tags.
	FormatMedia
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatMaster:
		return "master"
	case FormatMedia:
		return "media"
	default:
		return "unknown"
	}
}

// DetectFormat reports whether lines form a master or a media playlist.
//
// Detection stops at the first tag that can appear in only one kind:
// variant, rendition and session tags mark a master playlist; segment,
// sequence and server-control tags mark a media playlist. A playlist with
// neither (a bare #EXTM3U, say) is FormatUnknown.
func DetectFormat(lines []Line) Format {
	for _, l := range lines {
		if l.Kind() != LineTag {
			continue
		}
		switch l.Tag().(type) {
		case *tag.StreamInf, *tag.IFrameStreamInf, *tag.Media,
			*tag.SessionData, *tag.SessionKey, *tag.ContentSteering:
			return FormatMaster
		case *tag.Inf, *tag.Targetduration, *tag.MediaSequence,
			*tag.DiscontinuitySequence, *tag.Endlist, *tag.PlaylistType,
			*tag.IFramesOnly, *tag.PartInf, *tag.ServerControl, *tag.Part,
			*tag.Byterange, *tag.ProgramDateTime:
			return FormatMedia
		}
	}
	return FormatUnknown
}

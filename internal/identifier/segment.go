package identifier

// shiftIndex maps a canonical-form digit index to its position in the
// separated form by counting the separators that land at or before it.
func (s *spec) shiftIndex(c int) int {
	off := 0
	for _, p := range s.separators {
		if p <= c+off {
			off++
		} else {
			break
		}
	}
	return c + off
}

// segmentRange returns the half-open index range of the named segment in the
// original input string. For separated inputs the canonical-form range is
// shifted by the separators that precede it; the returned range never covers
// a separator position itself.
//
// An unknown segment name is a bug in the calling code and panics.
func (s *spec) segmentRange(name string, f form) (int, int) {
	for _, seg := range s.segments {
		if seg.name != name {
			continue
		}
		if f == formCanonical {
			return seg.start, seg.end
		}
		// Shift the last covered index, not the exclusive end, so a separator
		// sitting exactly at the boundary stays outside the range.
		return s.shiftIndex(seg.start), s.shiftIndex(seg.end-1) + 1
	}
	panic("identifier: unknown segment " + name + " for kind " + string(s.kind))
}

// segmentValue slices the named segment out of the input without copying.
func (s *spec) segmentValue(in string, name string, f form) string {
	start, end := s.segmentRange(name, f)
	return in[start:end]
}

package cache

// way is one of a level's ways: exactly sets TagLines, indexed by set
// number. A way belongs to exactly one level and is never shared.
type way struct {
	lines []TagLine
}

func newWay(sets int) way {
	return way{lines: make([]TagLine, sets)}
}

// findTag reports whether the resident line at set holds tag and is valid.
func (w *way) findTag(tag uint32, set uint32) bool {
	line := &w.lines[set]
	return line.isValid() && line.sameTag(tag)
}

// insertTag unconditionally overwrites the line at set via
// validateAndInsert: dirty is reset to false, and the caller must
// setDirty(true) afterwards for a write-allocate install of a written line.
func (w *way) insertTag(tag uint32, fullAddress uint32, set uint32) {
	w.lines[set].validateAndInsert(TagLine{tag: tag, fullAddress: fullAddress})
}

func (w *way) checkSetValid(set uint32) bool { return w.lines[set].isValid() }
func (w *way) isSetDirty(set uint32) bool    { return w.lines[set].isDirty() }
func (w *way) setDirtStatus(set uint32, status bool) {
	w.lines[set].setDirty(status)
}
func (w *way) setValidStatus(set uint32, status bool) {
	w.lines[set].setValid(status)
}
func (w *way) fullAddress(set uint32) uint32 { return w.lines[set].fullAddr() }

package core

// Block is a contiguous line range [Start, End) covering one list item and
// its full subtree.
type Block struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// FindRootAncestor walks upward from startLine to the topmost list item it
// belongs to within its section. Blank lines are transparent, so a child
// separated from its parent by a blank line still resolves to that parent.
// The walk never climbs to sectionStart or above it; pass -1 when the lines
// have no enclosing heading. Returns -1 when startLine is out of range.
func FindRootAncestor(lines []string, startLine, sectionStart int) int {
	if startLine < 0 || startLine >= len(lines) {
		return -1
	}
	cur := startLine
	for {
		depth := Classify(lines[cur]).Depth
		if depth == 0 {
			return cur
		}
		parent := -1
		for j := cur - 1; j > sectionStart && j >= 0; j-- {
			info := Classify(lines[j])
			if info.Blank || info.Depth >= depth {
				continue
			}
			// Nearest line of strictly lesser depth: an ancestor only if it
			// is itself a list item.
			if info.ListItem {
				parent = j
			}
			break
		}
		if parent == -1 {
			return cur
		}
		cur = parent
	}
}

// CollectBlock returns the block rooted at rootLine: the root plus every
// following line of greater depth, including interior blank lines that are
// still followed by deeper content. A blank that merely separates the block
// from what follows is never included. The scan stops at sectionEnd, at the
// first line of depth less than or equal to the root's, or at a heading.
func CollectBlock(lines []string, rootLine, sectionEnd int) Block {
	if rootLine < 0 || rootLine >= len(lines) {
		return Block{}
	}
	if sectionEnd < 0 || sectionEnd > len(lines) {
		sectionEnd = len(lines)
	}
	rootDepth := Classify(lines[rootLine]).Depth
	end := rootLine + 1
	for end < sectionEnd {
		info := Classify(lines[end])
		if info.Blank {
			j := end + 1
			for j < sectionEnd && Classify(lines[j]).Blank {
				j++
			}
			if j >= sectionEnd {
				break
			}
			next := Classify(lines[j])
			if next.Heading || next.Depth <= rootDepth {
				break
			}
			end = j
			continue
		}
		if info.Heading || info.Depth <= rootDepth {
			break
		}
		end++
	}
	return Block{Start: rootLine, End: end}
}

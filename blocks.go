package resume2pdf

import (
	"regexp"
	"strings"
)

// Block kinds. The names match the LaTeX environments the template emits.
const (
	BlockParagraph = "paragraph"
	BlockItemize   = "itemize"
	BlockEnumerate = "enumerate"
)

// Block is one unit of free text: a paragraph or a list. Text is set for
// paragraphs, Items for lists. All strings are LaTeX-safe.
type Block struct {
	Kind  string
	Text  string
	Items []string
}

var (
	bulletItemPattern  = regexp.MustCompile(`^[-*+]\s+(.*)`)
	orderedItemPattern = regexp.MustCompile(`^\d+\.\s+(.*)`)
)

// ParseBlocks splits free-form description text into paragraph and list
// blocks, in source order. List items and paragraph text are run through
// ConvertInline. Empty input yields no blocks.
//
// Consecutive marker lines of the same kind form one list; a kind switch
// without a blank line ends the current list and starts a new one. A line
// with leading whitespace continues the previous list item.
func ParseBlocks(description string) []Block {
	if description == "" {
		return nil
	}

	var blocks []Block
	var items []string
	ordered := false

	flush := func() {
		if len(items) == 0 {
			return
		}
		kind := BlockItemize
		if ordered {
			kind = BlockEnumerate
		}
		converted := make([]string, len(items))
		for i, item := range items {
			converted[i] = ConvertInline(item)
		}
		blocks = append(blocks, Block{Kind: kind, Items: converted})
		items = nil
		ordered = false
	}

	lines := strings.Split(strings.Trim(description, "\n"), "\n")
	for _, line := range lines {
		stripped := strings.TrimRight(line, " \t\r")
		if stripped == "" {
			flush()
			continue
		}

		if m := bulletItemPattern.FindStringSubmatch(stripped); m != nil {
			if len(items) > 0 && ordered {
				flush()
			}
			ordered = false
			items = append(items, strings.TrimSpace(m[1]))
			continue
		}

		if m := orderedItemPattern.FindStringSubmatch(stripped); m != nil {
			if len(items) > 0 && !ordered {
				flush()
			}
			ordered = true
			items = append(items, strings.TrimSpace(m[1]))
			continue
		}

		if strings.HasPrefix(stripped, " ") && len(items) > 0 {
			items[len(items)-1] += " " + strings.TrimSpace(stripped)
			continue
		}

		flush()
		blocks = append(blocks, Block{Kind: BlockParagraph, Text: ConvertInline(stripped)})
	}

	flush()
	return blocks
}

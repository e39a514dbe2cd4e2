package text

import "golang.org/x/text/unicode/bidi"

// Run is a maximal substring with a single text direction, produced by
// the Unicode bidirectional algorithm. Start and End are byte offsets
// into the original string.
type Run struct {
	Text      string
	Start     int
	End       int
	Direction Direction
}

// SplitRuns splits text into directional runs in visual order, assuming
// a left-to-right base paragraph direction. Purely LTR text yields a
// single run.
func SplitRuns(text string) []Run {
	return splitRuns(text, bidi.Neutral)
}

// SplitRunsRTL is SplitRuns with a right-to-left base paragraph
// direction, for text embedded in an RTL context.
func SplitRunsRTL(text string) []Run {
	return splitRuns(text, bidi.RightToLeft)
}

func splitRuns(text string, base bidi.Direction) []Run {
	if text == "" {
		return nil
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(base)); err != nil {
		return []Run{{Text: text, End: len(text), Direction: DirectionLTR}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []Run{{Text: text, End: len(text), Direction: DirectionLTR}}
	}

	// run.Pos reports rune indices, inclusive on both ends.
	offsets := runeByteOffsets(text)
	runs := make([]Run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos()
		start := offsets[startRune]
		end := offsets[endRune+1]

		dir := DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = DirectionRTL
		}
		runs = append(runs, Run{
			Text:      text[start:end],
			Start:     start,
			End:       end,
			Direction: dir,
		})
	}
	return runs
}

// runeByteOffsets returns the byte offset of each rune plus a trailing
// entry for len(text).
func runeByteOffsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	return append(offsets, len(text))
}

package widget

// SizeKind discriminates split sizing policies
type SizeKind uint8

const (
	SizeFlexible SizeKind = iota // Equal share of what is left
	SizeFixed                    // Exact cell count
	SizeWeighted                 // Proportion of the remainder after fixed
)

// SplitSize is one child's sizing policy in a split
type SplitSize struct {
	Kind   SizeKind
	Length int // Fixed cell count
	Weight int // Weighted proportion
}

// Fixed requests an exact length
func Fixed(n int) SplitSize {
	return SplitSize{Kind: SizeFixed, Length: n}
}

// Weighted requests a proportion of the remainder after fixed lengths
func Weighted(w int) SplitSize {
	return SplitSize{Kind: SizeWeighted, Weight: w}
}

// Flexible requests an equal share of what is left
func Flexible() SplitSize {
	return SplitSize{Kind: SizeFlexible}
}

// Split lays out two children along one axis with independent sizing
// Resolution order is fixed, then weighted, then flexible; any leftover
// after rounding goes to the second flexible participant, or the second
// child, so rounding error never vanishes
type Split struct {
	Axis       Axis
	First      Erased
	Second     Erased
	FirstSize  SplitSize
	SecondSize SplitSize
}

// Layout resolves the two spans and lays out both children
func (s Split) Layout(ctx Context) Result {
	total := span(ctx.Bounds, s.Axis)
	a, b := resolveSplit(total, s.FirstSize, s.SecondSize)

	firstBounds := ctx.Bounds
	secondBounds := ctx.Bounds
	if s.Axis == Vertical {
		firstBounds.H = a
		secondBounds.Row = ctx.Bounds.Row + a
		secondBounds.H = b
	} else {
		firstBounds.W = a
		secondBounds.Col = ctx.Bounds.Col + a
		secondBounds.W = b
	}

	return Result{
		Bounds: ctx.Bounds,
		Children: []Result{
			s.First.Layout(ctx.WithBounds(firstBounds)),
			s.Second.Layout(ctx.WithBounds(secondBounds)),
		},
	}
}

// resolveSplit divides total between two sizing policies
func resolveSplit(total int, first, second SplitSize) (a, b int) {
	if total <= 0 {
		return 0, 0
	}

	remaining := total

	// Fixed lengths come off the top
	if first.Kind == SizeFixed {
		a = clampSpan(first.Length, remaining)
		remaining -= a
	}
	if second.Kind == SizeFixed {
		b = clampSpan(second.Length, remaining)
		remaining -= b
	}

	// Weighted shares split the post-fixed remainder
	wTotal := 0
	if first.Kind == SizeWeighted {
		wTotal += first.Weight
	}
	if second.Kind == SizeWeighted {
		wTotal += second.Weight
	}
	weightedBase := remaining
	if wTotal > 0 {
		if first.Kind == SizeWeighted {
			a = weightedBase * first.Weight / wTotal
			remaining -= a
		}
		if second.Kind == SizeWeighted {
			if first.Kind == SizeWeighted {
				// Second weighted takes the rounding leftover
				b = remaining
				remaining = 0
			} else {
				b = weightedBase * second.Weight / wTotal
				remaining -= b
			}
		}
	}

	// Flexible children share what is left, leftover to the second
	flexCount := 0
	if first.Kind == SizeFlexible {
		flexCount++
	}
	if second.Kind == SizeFlexible {
		flexCount++
	}
	if flexCount > 0 {
		share := remaining / flexCount
		if first.Kind == SizeFlexible {
			a = share
			remaining -= share
		}
		if second.Kind == SizeFlexible {
			b = remaining
			remaining = 0
		}
	}

	// Neither flexible: hand any rounding leftover to the second child
	if remaining > 0 && flexCount == 0 && wTotal > 0 {
		b += remaining
	}
	return a, b
}

// clampSpan bounds a requested length to [0, available]
func clampSpan(n, available int) int {
	if n < 0 {
		return 0
	}
	if n > available {
		return available
	}
	return n
}

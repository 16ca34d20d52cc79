package area

// Cull returns what remains of back after front occludes it, or nil when
// back is fully hidden. Rows outside front's span are copied unchanged;
// shared rows run a linear merge over the two rows' sorted ranges, emitting
// the back sub-intervals not covered by any front range. back and front are
// not modified.
func Cull(back, front *Area) *Area {
	if back == nil {
		return nil
	}
	if front == nil {
		return back
	}

	lines := make([]Line, len(back.lines))
	for i, line := range back.lines {
		y := back.minY + int16(i)
		if y < front.minY || y > front.MaxY() {
			lines[i] = line
			continue
		}
		lines[i] = subtract(line, front.lines[y-front.minY])
	}

	return (&Area{lines: lines, minY: back.minY}).trim()
}

// subtract removes the covered cells of front from back. Both lines hold
// sorted, non-touching ranges and so does the result: every emitted piece is
// a sub-interval of a back range, and pieces split by a front range stay
// separated by at least the front range's width.
func subtract(back, front Line) Line {
	if len(front) == 0 {
		return back
	}

	var out Line
	fi := 0
	for _, b := range back {
		cur := int(b.From)

		// Skip front ranges that end before this back range starts.
		for fi < len(front) && int(front[fi].To) < cur {
			fi++
		}

		for j := fi; j < len(front) && int(front[j].From) <= int(b.To); j++ {
			f := front[j]
			if int(f.From) > cur {
				out = append(out, Range{From: int16(cur), To: f.From - 1})
			}
			if next := int(f.To) + 1; next > cur {
				cur = next
			}
		}
		if cur <= int(b.To) {
			out = append(out, Range{From: int16(cur), To: b.To})
		}
	}
	return out
}

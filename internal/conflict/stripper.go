package conflict

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// splitLines splits content into lines that keep their terminators, so
// joining the result gives back the input unchanged.
func splitLines(content []byte) []string {
	var lines []string
	for len(content) > 0 {
		i := bytes.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, string(content))
			break
		}
		lines = append(lines, string(content[:i+1]))
		content = content[i+1:]
	}
	return lines
}

// markerState reports the state a marker line switches to. ok is false for
// ordinary lines.
func markerState(line string) (next State, ok bool) {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, StartMarker):
		return FirstSide, true
	case strings.HasPrefix(trimmed, SeparatorMarker):
		return SecondSide, true
	case strings.HasPrefix(trimmed, EndMarker):
		return Normal, true
	}
	return Normal, false
}

func keeps(choice ResolutionChoice, state State) bool {
	switch state {
	case FirstSide:
		return choice == ChooseOurs || choice == ChooseBoth
	case SecondSide:
		return choice == ChooseTheirs || choice == ChooseBoth
	}
	return true
}

// Strip keeps ordinary lines and the first side of every conflict region.
func Strip(content []byte) []byte {
	return Resolve(content, ChooseOurs)
}

// Resolve makes a single forward pass over content. Marker lines are never
// emitted and malformed marker sequences are followed literally.
func Resolve(content []byte, choice ResolutionChoice) []byte {
	var out bytes.Buffer
	out.Grow(len(content))

	state := Normal
	for _, line := range splitLines(content) {
		if next, ok := markerState(line); ok {
			state = next
			continue
		}
		if keeps(choice, state) {
			out.WriteString(line)
		}
	}

	return out.Bytes()
}

// HasMarkers reports whether any line of content is a marker line.
func HasMarkers(content []byte) bool {
	for _, line := range splitLines(content) {
		if _, ok := markerState(line); ok {
			return true
		}
	}
	return false
}

// Parse collects every region closed by an end marker.
func Parse(path string, content []byte) ConflictFile {
	file := ConflictFile{Path: path}

	var (
		state   State
		current ConflictSection
		ours    strings.Builder
		theirs  strings.Builder
	)

	for i, line := range splitLines(content) {
		next, ok := markerState(line)
		if !ok {
			switch state {
			case FirstSide:
				ours.WriteString(line)
			case SecondSide:
				theirs.WriteString(line)
			}
			continue
		}

		switch next {
		case FirstSide:
			current = ConflictSection{StartLine: i + 1}
			ours.Reset()
			theirs.Reset()
		case Normal:
			if current.StartLine > 0 {
				current.EndLine = i + 1
				current.OurChanges = ours.String()
				current.TheirChanges = theirs.String()
				file.Conflicts = append(file.Conflicts, current)
			}
			current = ConflictSection{}
		}
		state = next
	}

	return file
}

// ResolveFile rewrites path in place. Nothing is written if the read fails;
// a failed write may leave the file truncated.
func ResolveFile(path string, choice ResolutionChoice) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	resolved := Resolve(content, choice)

	if err := os.WriteFile(path, resolved, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

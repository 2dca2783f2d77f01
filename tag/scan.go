package tag

import "strings"

// ScanText parses one file's text into tag records.
//
// The scanner keeps a single open-tag slot. A START line while
// another tag is open replaces the open tag without error, so
// nesting is unsupported. An END line closes the slot only when its
// name equals the open tag's name exactly; any other line, END
// included, accumulates as content while a tag is open. A tag still
// open at end of file is a *MalformedTagError.
func ScanText(file, text string) ([]Tag, error) {
	var (
		res     []Tag
		cur     Tag
		open    bool
		content []string
	)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if name, ok := matchStart(line); ok {
			cur = Tag{File: file, Name: name, StartLine: i + 1}
			content = content[:0]
			open = true
			continue
		}
		if name, ok := matchEnd(line); ok && open && name == cur.Name {
			cur.EndLine = i + 1
			cur.Content = strings.TrimSpace(strings.Join(content, "\n"))
			res = append(res, cur)
			open = false
			continue
		}
		if open {
			content = append(content, line)
		}
	}
	if open {
		return nil, &MalformedTagError{
			File:      file,
			Name:      cur.Name,
			StartLine: cur.StartLine,
		}
	}
	return res, nil
}

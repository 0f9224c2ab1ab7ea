package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words.txt
var FS embed.FS

// DefaultWordText returns the text of the embedded default word list with
// blank and '#' comment lines removed. It keeps the server and CLI usable
// with zero configuration; callers run the text through the words filter
// before use.
func DefaultWordText() (string, error) {
	f, err := FS.Open("words.txt")
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}
	return b.String(), sc.Err()
}

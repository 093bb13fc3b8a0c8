package mapping

import "fmt"

// Header is written at the top of every generated mapping file
const Header = `# droplink mapping file: <link path> => <file in synchronized folder>
# Leave the left side blank to skip a file. Lines starting with # are ignored.
# Files matching the ignore list (.DS_Store, .dropbox*, ...) are not listed.
`

// FormatEntry renders a mapping line as the generator writes it
func FormatEntry(link, target string) string {
	return fmt.Sprintf("%s   %s   %s", link, Separator, target)
}

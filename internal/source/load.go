package source

import (
	"bytes"
	"os"

	"golang.org/x/text/unicode/norm"
)

// Load reads a file and returns its normalized content, ready for NewCursor.
func Load(path string) (string, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Normalize(content), nil
}

// Normalize strips a UTF-8 BOM, rewrites CRLF line endings to LF, and
// applies NFC so combining sequences stay whole when excerpts are truncated.
func Normalize(content []byte) string {
	content = removeBOM(content)
	content = normalizeCRLF(content)
	return norm.NFC.String(string(content))
}

func removeBOM(content []byte) []byte {
	return bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})
}

// normalizeCRLF replaces every \r\n with \n, leaving lone \r alone.
func normalizeCRLF(content []byte) []byte {
	if !bytes.Contains(content, []byte{'\r', '\n'}) {
		return content
	}
	return bytes.ReplaceAll(content, []byte{'\r', '\n'}, []byte{'\n'})
}

package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// ReadFile reads an input text file as UTF-8.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", path, err)
	}
	return string(data), nil
}

// ReadHTMLFile reads an HTML file and returns its visible text content
// with all markup stripped.
func ReadHTMLFile(path string) (string, error) {
	raw, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return StripHTML(raw), nil
}

// StripHTML extracts the text content of an HTML fragment. Script and
// style bodies are dropped; on a parse failure the input is returned
// as-is.
func StripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}

// Prompt writes a prompt to w and reads one line of text from r.
// An immediate EOF yields an empty string, not an error; empty input
// is a valid (if fruitless) analysis run.
func Prompt(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "Enter a text: ")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read terminal input: %w", err)
		}
		return "", nil
	}
	return scanner.Text(), nil
}

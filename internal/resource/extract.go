package resource

import (
	"encoding/xml"
	"io"
	"os"
	"slices"
	"strings"

	"resloader-generator/internal/errors"
	"resloader-generator/internal/logger"
)

// Element names of an extracted entry: <resources><string name="...">.
const (
	RootTag   = "resources"
	StringTag = "string"
	NameAttr  = "name"
)

var entryPath = []string{RootTag, StringTag}

// xmlSpace is the whitespace allowed around the root element; a leading
// byte order mark is tolerated as well.
const xmlSpace = " \t\r\n\uFEFF"

// Extract reads one resource file and returns its string entries keyed by identifier.
// A missing or unreadable file is an IO error; malformed markup is a parse error.
func Extract(path string) (map[string]string, error) {
	return extractFile(path, nil)
}

// unnamedFunc is told the line of every <string> entry skipped for lacking a name.
type unnamedFunc func(line int)

func extractFile(path string, unnamed unnamedFunc) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.IO(errors.Wrapf(err, "opening resource file %s", path))
	}
	defer f.Close()

	entries, err := decode(f, unnamed)
	if err != nil {
		return nil, errors.Wrapf(err, "extracting %s", path)
	}

	return entries, nil
}

// ExtractReader streams a resource document and collects every <string>
// element nested exactly one level under the root <resources> element.
//
// Text chunks of one element are concatenated. Elements without a name
// attribute are skipped. Text that follows a child element nested inside a
// <string> is not captured.
func ExtractReader(r io.Reader) (map[string]string, error) {
	return decode(r, nil)
}

func decode(r io.Reader, unnamed unnamedFunc) (map[string]string, error) {
	dec := xml.NewDecoder(r)
	entries := make(map[string]string)

	var (
		path    []string
		pending string
		capture bool
		sawRoot bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, errors.Parse(errors.Wrap(err, "malformed resource markup"))
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if sawRoot && len(path) == 0 {
				return nil, errors.Parse(errors.Newf("second root element <%s> at line %d", t.Name.Local, line(dec)))
			}

			sawRoot = true
			path = append(path, t.Name.Local)

			if slices.Equal(path, entryPath) {
				id, ok := attr(t, NameAttr)
				if !ok || id == "" {
					logger.Logger.Debugw("skipping string element without name", "line", line(dec))
					if unnamed != nil {
						unnamed(line(dec))
					}

					continue
				}

				pending, capture = id, true
				// Declared entries exist even when they carry no text.
				entries[id] = ""
			}
		case xml.CharData:
			if len(path) == 0 && strings.Trim(string(t), xmlSpace) != "" {
				return nil, errors.Parse(errors.Newf("text outside the root element at line %d", line(dec)))
			}

			if capture && slices.Equal(path, entryPath) {
				entries[pending] += string(t)
			}
		case xml.EndElement:
			pending, capture = "", false
			path = path[:len(path)-1]
		}
	}

	if !sawRoot {
		return nil, errors.Parse(errors.New("document has no root element"))
	}

	return entries, nil
}

func attr(el xml.StartElement, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == name && a.Name.Space == "" {
			return a.Value, true
		}
	}

	return "", false
}

func line(dec *xml.Decoder) int {
	l, _ := dec.InputPos()
	return l
}

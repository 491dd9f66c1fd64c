package xmlutils

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/xmlpath.v2"
)

// LoadXMLFile loads a possibly gzip-compressed XML file and returns its root node.
func LoadXMLFile(xmlFilePath string) (*xmlpath.Node, error) {
	rc, err := OpenFile(xmlFilePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rc.Close()
	}()

	return LoadXML(rc)
}

// LoadXML parses an uncompressed XML stream into an xmlpath tree.
func LoadXML(r io.Reader) (*xmlpath.Node, error) {
	root, err := xmlpath.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return root, nil
}

// ExtractFromXML extracts values from an XML node using an XPath expression
func ExtractFromXML(root *xmlpath.Node, xpath string) ([]string, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	var values []string
	iter := path.Iter(root)
	for iter.Next() {
		values = append(values, iter.Node().String())
	}

	return values, nil
}

// CountNodes returns how many nodes match xpath.
func CountNodes(root *xmlpath.Node, xpath string) (int, error) {
	values, err := ExtractFromXML(root, xpath)
	if err != nil {
		return 0, err
	}
	return len(values), nil
}

// ExtractWithXPath extracts values from an XML file using an XPath expression
func ExtractWithXPath(xmlFilePath, xpath string) ([]string, error) {
	root, err := LoadXMLFile(xmlFilePath)
	if err != nil {
		return nil, err
	}

	return ExtractFromXML(root, xpath)
}

// GetOrEmpty returns the value at the specified index in a slice, or an empty string if the index is out of bounds
func GetOrEmpty(slice []string, index int) string {
	if index < len(slice) {
		return slice[index]
	}
	return ""
}

// CleanText collapses runs of whitespace, newlines included, into single spaces.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

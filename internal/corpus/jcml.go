package corpus

import (
	"encoding/xml"
	"fmt"
	"os"
	"sort"
)

// Wire representation of the JCML judged-corpus format:
// <jcml><judgedsentence><src/><tgt/>...<ref/></judgedsentence></jcml>,
// with free-form string attributes on sentences and candidates.
type jcmlDocument struct {
	XMLName   xml.Name       `xml:"jcml"`
	Sentences []jcmlSentence `xml:"judgedsentence"`
}

type jcmlSentence struct {
	Attrs []xml.Attr `xml:",any,attr"`
	Src   jcmlText   `xml:"src"`
	Tgt   []jcmlText `xml:"tgt"`
	Ref   *jcmlText  `xml:"ref"`
}

type jcmlText struct {
	Attrs []xml.Attr `xml:",any,attr"`
	Text  string     `xml:",chardata"`
}

// ReadFile parses a JCML corpus file into a Dataset.
func ReadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	return Parse(data)
}

// Parse decodes JCML bytes into a Dataset.
func Parse(data []byte) (*Dataset, error) {
	var doc jcmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse JCML: %w", err)
	}
	if len(doc.Sentences) == 0 {
		return nil, fmt.Errorf("corpus has no judged sentences")
	}

	d := &Dataset{Sentences: make([]ParallelSentence, 0, len(doc.Sentences))}
	for _, js := range doc.Sentences {
		ps := ParallelSentence{
			Source:     simpleSentence(js.Src),
			Attributes: attrMap(js.Attrs),
		}
		for _, tgt := range js.Tgt {
			ps.Targets = append(ps.Targets, simpleSentence(tgt))
		}
		if js.Ref != nil {
			ref := simpleSentence(*js.Ref)
			ps.Reference = &ref
		}
		d.Sentences = append(d.Sentences, ps)
	}
	return d, nil
}

// WriteFile serializes a Dataset back to a JCML corpus file.
func WriteFile(d *Dataset, path string) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write corpus file: %w", err)
	}
	return nil
}

// Marshal encodes a Dataset as indented JCML.
func Marshal(d *Dataset) ([]byte, error) {
	doc := jcmlDocument{}
	for _, ps := range d.Sentences {
		js := jcmlSentence{
			Attrs: attrList(ps.Attributes),
			Src:   jcmlText{Text: ps.Source.Text, Attrs: attrList(ps.Source.Attributes)},
		}
		for _, tgt := range ps.Targets {
			js.Tgt = append(js.Tgt, jcmlText{Text: tgt.Text, Attrs: attrList(tgt.Attributes)})
		}
		if ps.Reference != nil {
			js.Ref = &jcmlText{Text: ps.Reference.Text, Attrs: attrList(ps.Reference.Attributes)}
		}
		doc.Sentences = append(doc.Sentences, js)
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JCML: %w", err)
	}
	return append([]byte(xml.Header), data...), nil
}

func simpleSentence(t jcmlText) SimpleSentence {
	return SimpleSentence{Text: t.Text, Attributes: attrMap(t.Attrs)}
}

func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name.Local] = a.Value
	}
	return m
}

func attrList(m map[string]string) []xml.Attr {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make([]xml.Attr, 0, len(m))
	for _, name := range names {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: m[name]})
	}
	return attrs
}

// Package xmlreg provides the raw XML records of a Khronos API registry
// document (vk.xml and its siblings).
package xmlreg

import (
	"encoding/xml"
	"io"
	"strings"
)

// Registry is the document root.
type Registry struct {
	XMLName    xml.Name    `xml:"registry"`
	Types      []Type      `xml:"types>type"`
	Enums      []Enums     `xml:"enums"`
	Commands   []Command   `xml:"commands>command"`
	Features   []Feature   `xml:"feature"`
	Extensions []Extension `xml:"extensions>extension"`
}

// Type is a <type> element. Its category selects which fields are used.
type Type struct {
	Name         string   `xml:"name,attr"`
	Category     string   `xml:"category,attr"`
	Requires     string   `xml:"requires,attr"`
	BitValues    string   `xml:"bitvalues,attr"`
	Alias        string   `xml:"alias,attr"`
	API          string   `xml:"api,attr"`
	Parent       string   `xml:"parent,attr"`
	ReturnedOnly bool     `xml:"returnedonly,attr"`
	Comment      string   `xml:"comment,attr"`
	Members      []Member `xml:"member"`
	InnerName    string   `xml:"name"`
	InnerType    string   `xml:"type"`
}

// TypeName returns the name attribute, falling back to the inner <name>.
func (t *Type) TypeName() string {
	if t.Name != "" {
		return t.Name
	}
	return strings.TrimSpace(t.InnerName)
}

// Member is a <member> element of a struct or union type.
type Member struct {
	Declarator
	Len            string `xml:"len,attr"`
	AltLen         string `xml:"altlen,attr"`
	Values         string `xml:"values,attr"`
	Optional       string `xml:"optional,attr"`
	NoAutoValidity bool   `xml:"noautovalidity,attr"`
	API            string `xml:"api,attr"`
}

// UnmarshalXML decodes the member attributes and its declarator text.
func (m *Member) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "len":
			m.Len = a.Value
		case "altlen":
			m.AltLen = a.Value
		case "values":
			m.Values = a.Value
		case "optional":
			m.Optional = a.Value
		case "noautovalidity":
			m.NoAutoValidity = a.Value == "true"
		case "api":
			m.API = a.Value
		}
	}
	return m.Declarator.decode(d)
}

// Enums is an <enums> block.
type Enums struct {
	Name     string `xml:"name,attr"`
	Type     string `xml:"type,attr"`
	BitWidth int    `xml:"bitwidth,attr"`
	Comment  string `xml:"comment,attr"`
	Values   []Enum `xml:"enum"`
}

// Enum is an <enum> element, either inside an <enums> block or inside a
// feature or extension <require> block.
type Enum struct {
	Name      string `xml:"name,attr"`
	Value     string `xml:"value,attr"`
	BitPos    string `xml:"bitpos,attr"`
	Type      string `xml:"type,attr"`
	Alias     string `xml:"alias,attr"`
	API       string `xml:"api,attr"`
	Comment   string `xml:"comment,attr"`
	Extends   string `xml:"extends,attr"`
	ExtNumber string `xml:"extnumber,attr"`
	Offset    string `xml:"offset,attr"`
	Dir       string `xml:"dir,attr"`
}

// Command is a <command> element.
type Command struct {
	Name         string  `xml:"name,attr"`
	Alias        string  `xml:"alias,attr"`
	API          string  `xml:"api,attr"`
	SuccessCodes string  `xml:"successcodes,attr"`
	ErrorCodes   string  `xml:"errorcodes,attr"`
	Comment      string  `xml:"comment,attr"`
	Proto        Proto   `xml:"proto"`
	Params       []Param `xml:"param"`
}

// Proto is the <proto> element of a command.
type Proto struct {
	Declarator
}

// UnmarshalXML decodes the prototype declarator text.
func (p *Proto) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return p.Declarator.decode(d)
}

// Param is a <param> element of a command.
type Param struct {
	Declarator
	Len            string `xml:"len,attr"`
	AltLen         string `xml:"altlen,attr"`
	Optional       string `xml:"optional,attr"`
	ExternSync     string `xml:"externsync,attr"`
	NoAutoValidity bool   `xml:"noautovalidity,attr"`
	API            string `xml:"api,attr"`
}

// UnmarshalXML decodes the param attributes and its declarator text.
func (p *Param) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "len":
			p.Len = a.Value
		case "altlen":
			p.AltLen = a.Value
		case "optional":
			p.Optional = a.Value
		case "externsync":
			p.ExternSync = a.Value
		case "noautovalidity":
			p.NoAutoValidity = a.Value == "true"
		case "api":
			p.API = a.Value
		}
	}
	return p.Declarator.decode(d)
}

// Feature is a <feature> element describing a core API version.
type Feature struct {
	API     string    `xml:"api,attr"`
	Name    string    `xml:"name,attr"`
	Number  string    `xml:"number,attr"`
	Comment string    `xml:"comment,attr"`
	Require []Require `xml:"require"`
}

// Extension is an <extension> element.
type Extension struct {
	Name      string    `xml:"name,attr"`
	Number    int       `xml:"number,attr"`
	Type      string    `xml:"type,attr"`
	Supported string    `xml:"supported,attr"`
	Author    string    `xml:"author,attr"`
	Requires  string    `xml:"requires,attr"`
	Platform  string    `xml:"platform,attr"`
	PromoteTo string    `xml:"promotedto,attr"`
	Require   []Require `xml:"require"`
}

// Require is a <require> block of a feature or extension.
type Require struct {
	API      string `xml:"api,attr"`
	Comment  string `xml:"comment,attr"`
	Enums    []Enum `xml:"enum"`
	Commands []struct {
		Name string `xml:"name,attr"`
	} `xml:"command"`
	Types []struct {
		Name string `xml:"name,attr"`
	} `xml:"type"`
}

// Decode reads a whole registry document.
func Decode(r io.Reader) (*Registry, error) {
	var reg Registry
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

package xmlreg

import (
	"encoding/xml"
	"strings"
)

// Declarator holds the mixed-content C declarator of a member, param, or
// proto element, e.g. `const <type>char</type>* <name>pName</name>`.
type Declarator struct {
	// Text is the declarator with markup removed and <comment> children
	// dropped.
	Text string

	// TypeName is the content of the <type> child.
	TypeName string

	// Name is the content of the <name> child.
	Name string

	// Comment is the content of the <comment> child, if any.
	Comment string
}

func (dc *Declarator) decode(d *xml.Decoder) error {
	var text, comment strings.Builder
	var inner string
	depth := 0

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			inner = t.Name.Local
			// Keep adjacent elements apart: <type>T</type><name>n</name>.
			text.WriteByte(' ')
		case xml.EndElement:
			if depth == 0 {
				dc.Text = strings.Join(strings.Fields(text.String()), " ")
				dc.Comment = strings.TrimSpace(comment.String())
				return nil
			}
			depth--
			inner = ""
			text.WriteByte(' ')
		case xml.CharData:
			s := string(t)
			switch inner {
			case "comment":
				comment.WriteString(s)
				continue
			case "type":
				dc.TypeName += strings.TrimSpace(s)
			case "name":
				dc.Name += strings.TrimSpace(s)
			}
			text.WriteString(s)
		}
	}
}

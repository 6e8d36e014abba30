package resumeats

// OOXML scaffolding for DOCX output.
//
// DOCX files are ZIP archives containing OOXML. The main document lives
// at word/document.xml with paragraph styles in word/styles.xml. The
// document body is paragraphs and runs only: no tables, no images, no
// text boxes, so ATS text extraction sees one linear column.

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// Static package parts. Word refuses archives missing any of these.
const (
	docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>
</Types>`

	docxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>
</Relationships>`

	docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

	docxAppProps = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">
<Application>resumeats</Application>
</Properties>`

	wordMLNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

// Unit conversions used by OOXML: half-points for font sizes, twentieths
// of a point for spacing, twips for page geometry.
const (
	halfPointsPerPoint = 2
	twentiethsPerPoint = 20
	twipsPerInch       = 1440
)

// docxParagraph is one paragraph to emit: a style ID and emphasis runs.
type docxParagraph struct {
	StyleID string
	Runs    []textRun
}

// buildCoreProps renders docProps/core.xml with document metadata.
func buildCoreProps(title, creator, keywords string, now time.Time) string {
	stamp := now.UTC().Format(time.RFC3339)
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
<dc:title>%s</dc:title>
<dc:subject>Professional Resume</dc:subject>
<dc:creator>%s</dc:creator>
<cp:keywords>%s</cp:keywords>
<cp:lastModifiedBy>%s</cp:lastModifiedBy>
<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>
</cp:coreProperties>`,
		xmlEscape(title), xmlEscape(creator), xmlEscape(keywords), xmlEscape(creator), stamp, stamp)
}

// buildStylesXML renders word/styles.xml from the style table. The body
// role supplies document defaults; every role becomes a paragraph style.
func buildStylesXML(table *docxStyleTable) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	fmt.Fprintf(&sb, `<w:styles xmlns:w=%q>`+"\n", wordMLNamespace)

	body := table.Styles[docxRoleBody]
	fmt.Fprintf(&sb, `<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii=%q w:hAnsi=%q/><w:sz w:val="%d"/></w:rPr></w:rPrDefault></w:docDefaults>`+"\n",
		table.Font, table.Font, body.SizePt*halfPointsPerPoint)

	for _, role := range docxRoles {
		writeStyleXML(&sb, table, role)
	}

	sb.WriteString(`</w:styles>`)
	return sb.String()
}

func writeStyleXML(sb *strings.Builder, table *docxStyleTable, role string) {
	def := table.Styles[role]
	styleID := docxRoleStyleIDs[role]

	fmt.Fprintf(sb, `<w:style w:type="paragraph" w:styleId=%q>`, styleID)
	fmt.Fprintf(sb, `<w:name w:val=%q/>`, styleID)

	// Paragraph properties: spacing and indentation.
	sb.WriteString(`<w:pPr>`)
	fmt.Fprintf(sb, `<w:spacing w:before="%d" w:after="%d"/>`,
		def.SpaceBeforePt*twentiethsPerPoint, def.SpaceAfterPt*twentiethsPerPoint)
	if def.IndentIn > 0 {
		fmt.Fprintf(sb, `<w:ind w:left="%d"/>`, int(def.IndentIn*twipsPerInch))
	}
	sb.WriteString(`</w:pPr>`)

	// Run properties: font, size, weight, caps, color.
	sb.WriteString(`<w:rPr>`)
	fmt.Fprintf(sb, `<w:rFonts w:ascii=%q w:hAnsi=%q/>`, table.Font, table.Font)
	if def.Bold {
		sb.WriteString(`<w:b/>`)
	}
	if def.Italic {
		sb.WriteString(`<w:i/>`)
	}
	if def.AllCaps {
		sb.WriteString(`<w:caps/>`)
	}
	if def.Color != "" {
		fmt.Fprintf(sb, `<w:color w:val=%q/>`, def.Color)
	}
	fmt.Fprintf(sb, `<w:sz w:val="%d"/>`, def.SizePt*halfPointsPerPoint)
	sb.WriteString(`</w:rPr>`)

	sb.WriteString(`</w:style>` + "\n")
}

// buildDocumentXML renders word/document.xml from paragraphs plus the
// trailing section properties (page size and margins).
func buildDocumentXML(paragraphs []docxParagraph, pageSize string, margins Margins) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	fmt.Fprintf(&sb, `<w:document xmlns:w=%q>`+"\n", wordMLNamespace)
	sb.WriteString(`<w:body>` + "\n")

	for _, p := range paragraphs {
		writeParagraphXML(&sb, p)
	}

	writeSectPrXML(&sb, pageSize, margins)

	sb.WriteString(`</w:body>` + "\n")
	sb.WriteString(`</w:document>`)
	return sb.String()
}

func writeParagraphXML(sb *strings.Builder, p docxParagraph) {
	sb.WriteString(`<w:p>`)
	if p.StyleID != "" {
		fmt.Fprintf(sb, `<w:pPr><w:pStyle w:val=%q/></w:pPr>`, p.StyleID)
	}
	for _, run := range p.Runs {
		if run.Text == "" {
			continue
		}
		sb.WriteString(`<w:r>`)
		if run.Bold {
			sb.WriteString(`<w:rPr><w:b/></w:rPr>`)
		}
		fmt.Fprintf(sb, `<w:t xml:space="preserve">%s</w:t>`, xmlEscape(run.Text))
		sb.WriteString(`</w:r>`)
	}
	sb.WriteString(`</w:p>` + "\n")
}

func writeSectPrXML(sb *strings.Builder, pageSize string, m Margins) {
	w, h := pageDimensions(pageSize)
	fmt.Fprintf(sb, `<w:sectPr><w:pgSz w:w="%d" w:h="%d"/><w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d"/></w:sectPr>`+"\n",
		int(w*twipsPerInch), int(h*twipsPerInch),
		int(m.Top*twipsPerInch), int(m.Right*twipsPerInch),
		int(m.Bottom*twipsPerInch), int(m.Left*twipsPerInch))
}

// xmlEscape escapes text for XML element content.
func xmlEscape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

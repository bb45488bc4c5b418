package pdfdecoder

import (
	"bytes"
	"fmt"
	"strings"
)

// testInfo is the document-information dictionary written by buildPDF
type testInfo struct {
	Title        string
	Author       string
	CreationDate string
}

// buildPDF writes a minimal uncompressed PDF 1.4 with one Helvetica text line
// per page and an exact cross-reference table.
func buildPDF(pages []string, info *testInfo) []byte {
	var objects []string

	// 1: catalog, 2: page tree, 3: font
	pageCount := len(pages)
	kids := make([]string, 0, pageCount)
	for i := range pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 4+i*2))
	}
	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pageCount),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	)

	for i, text := range pages {
		contentRef := 5 + i*2
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", contentRef),
		)
		stream := ""
		if text != "" {
			stream = fmt.Sprintf("BT /F1 24 Tf 72 720 Td (%s) Tj ET", text)
		}
		objects = append(objects, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	infoRef := 0
	if info != nil {
		var fields []string
		if info.Title != "" {
			fields = append(fields, fmt.Sprintf("/Title (%s)", info.Title))
		}
		if info.Author != "" {
			fields = append(fields, fmt.Sprintf("/Author (%s)", info.Author))
		}
		if info.CreationDate != "" {
			fields = append(fields, fmt.Sprintf("/CreationDate (%s)", info.CreationDate))
		}
		objects = append(objects, "<< "+strings.Join(fields, " ")+" >>")
		infoRef = len(objects)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefAt := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}

	trailer := fmt.Sprintf("<< /Size %d /Root 1 0 R", len(objects)+1)
	if infoRef > 0 {
		trailer += fmt.Sprintf(" /Info %d 0 R", infoRef)
	}
	trailer += " >>"
	fmt.Fprintf(&buf, "trailer\n%s\nstartxref\n%d\n%%%%EOF\n", trailer, xrefAt)

	return buf.Bytes()
}

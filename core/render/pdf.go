// Package render — PDF renderer.
// Draws a printable preview of a message using gofpdf: styled text runs
// followed by the keyboard as rows of bordered cells.
package render

import (
	"bytes"
	"strings"

	"github.com/gaurav-prasanna/tgmarkup/core"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/net/html"
)

const (
	pdfLineHeight = 5.0
	pdfFontSize   = 11.0
	pdfCellHeight = 8.0
)

// PDFRenderer renders a message preview as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts msg into PDF bytes.
func (r *PDFRenderer) Render(msg *core.Message) ([]byte, error) {
	if msg == nil {
		return nil, errNilMessage
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("tgmarkup message preview", true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	w := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	w.apply(runStyle{})
	w.walk(Tree(msg.Text, false), runStyle{})

	if msg.Keyboard != nil {
		w.keyboard(msg.Keyboard)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

type runStyle struct {
	bold, italic, underline, mono bool
	muted, hidden                 bool
	link                          string
}

func (s runStyle) font() (family, style string) {
	family = "Helvetica"
	if s.mono {
		family = "Courier"
	}
	if s.bold {
		style += "B"
	}
	if s.italic {
		style += "I"
	}
	if s.underline || s.link != "" {
		style += "U"
	}
	return family, style
}

type pdfWriter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (w *pdfWriter) apply(s runStyle) {
	family, style := s.font()
	w.pdf.SetFont(family, style, pdfFontSize)
	switch {
	case s.link != "":
		w.pdf.SetTextColor(36, 129, 204)
	case s.hidden:
		w.pdf.SetTextColor(160, 160, 160)
	case s.muted:
		w.pdf.SetTextColor(90, 90, 90)
	default:
		w.pdf.SetTextColor(0, 0, 0)
	}
}

func (w *pdfWriter) walk(n *html.Node, s runStyle) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			w.text(c.Data, s)
		case html.ElementNode:
			w.walk(c, styleFor(c, s))
		}
	}
}

func styleFor(n *html.Node, s runStyle) runStyle {
	switch n.Data {
	case "b":
		s.bold = true
	case "i":
		s.italic = true
	case "u":
		s.underline = true
	case "code", "pre":
		s.mono = true
	case "blockquote":
		s.muted = true
		s.italic = true
	case "tg-spoiler":
		s.hidden = true
	case "a":
		s.link = attr(n, "href")
	}
	return s
}

func (w *pdfWriter) text(data string, s runStyle) {
	w.apply(s)
	for i, line := range strings.Split(data, "\n") {
		if i > 0 {
			w.pdf.Ln(pdfLineHeight)
		}
		if line == "" {
			continue
		}
		if s.link != "" {
			w.pdf.WriteLinkString(pdfLineHeight, w.tr(line), s.link)
			continue
		}
		w.pdf.Write(pdfLineHeight, w.tr(line))
	}
}

func (w *pdfWriter) keyboard(kb *core.Keyboard) {
	w.pdf.Ln(pdfCellHeight)
	w.apply(runStyle{bold: true})
	label := "Reply keyboard"
	if kb.Inline {
		label = "Inline keyboard"
	}
	w.pdf.Write(pdfLineHeight, label)
	w.pdf.Ln(pdfCellHeight)

	w.apply(runStyle{})
	w.pdf.SetFillColor(240, 244, 248)
	pageW, _ := w.pdf.GetPageSize()
	left, _, right, _ := w.pdf.GetMargins()
	usable := pageW - left - right

	for _, row := range KeyboardRows(kb) {
		cellW := usable / float64(len(row))
		for _, c := range row {
			w.pdf.CellFormat(cellW, pdfCellHeight, w.tr(c.Text), "1", 0, "C", true, 0, "")
		}
		w.pdf.Ln(pdfCellHeight)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

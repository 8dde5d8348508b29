// Package resume turns an uploaded resume into plain text.
package resume

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type Kind string

const (
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
	KindText Kind = "text"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var ErrUnsupported = errors.New("unsupported resume format")

// Detect resolves the format from the file extension, then the content type,
// then the leading bytes of the upload.
func Detect(filename, contentType string, data []byte) (Kind, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDOCX, nil
	case ".txt", ".md":
		return KindText, nil
	}

	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	switch {
	case ct == mimePDF:
		return KindPDF, nil
	case ct == mimeDOCX:
		return KindDOCX, nil
	case strings.HasPrefix(ct, "text/"):
		return KindText, nil
	}

	// 확장자 없음, application/octet-stream 업로드
	if len(data) > 0 {
		for m := mimetype.Detect(data); m != nil; m = m.Parent() {
			switch {
			case m.Is(mimePDF):
				return KindPDF, nil
			case m.Is(mimeDOCX):
				return KindDOCX, nil
			case m.Is("text/plain"):
				return KindText, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupported, filename)
}

func Extract(kind Kind, data []byte) (string, error) {
	switch kind {
	case KindPDF:
		return extractPDF(data)
	case KindDOCX:
		return extractDOCX(data)
	case KindText:
		return string(data), nil
	}
	return "", ErrUnsupported
}

// 페이지 순서대로 이어 붙이고, 텍스트 없는 페이지는 건너뜀
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil || text == "" {
			continue
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()
	return doc.Editable().GetContent(), nil
}

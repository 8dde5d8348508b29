package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name, filename, contentType string
		want                        Kind
	}{
		{"pdf extension", "CV.PDF", "application/octet-stream", KindPDF},
		{"docx extension", "resume.docx", "", KindDOCX},
		{"txt extension", "resume.txt", "", KindText},
		{"pdf mime", "upload", "application/pdf", KindPDF},
		{"docx mime", "upload", mimeDOCX, KindDOCX},
		{"text mime with charset", "upload", "text/plain; charset=utf-8", KindText},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Detect(tc.filename, tc.contentType, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := Detect("photo.png", "image/png", nil)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestDetectSniffsContent(t *testing.T) {
	got, err := Detect("upload", "application/octet-stream", []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n"))
	require.NoError(t, err)
	assert.Equal(t, KindPDF, got)

	got, err = Detect("", "", []byte("Jane Doe\nGo, Docker and SQL developer\n"))
	require.NoError(t, err)
	assert.Equal(t, KindText, got)

	_, err = Detect("blob", "application/octet-stream", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestExtractText(t *testing.T) {
	text, err := Extract(KindText, []byte("Go, Docker and SQL"))
	require.NoError(t, err)
	assert.Equal(t, "Go, Docker and SQL", text)
}

func TestExtractRejectsCorruptFiles(t *testing.T) {
	_, err := Extract(KindPDF, []byte("not a pdf"))
	assert.Error(t, err)

	_, err = Extract(KindDOCX, []byte("not a zip"))
	assert.Error(t, err)
}

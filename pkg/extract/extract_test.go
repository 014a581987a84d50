package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	"ai-chat-be/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func zipWith(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(".pdf"))
	assert.True(t, Supported(".MD"))
	assert.False(t, Supported(".xyz"))
	assert.False(t, Supported(""))
}

func TestExtractBytesUnsupportedExtension(t *testing.T) {
	_, err := ExtractBytes([]byte("whatever"), ".xyz")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindUnsupportedFormat))
}

func TestExtractPlainText(t *testing.T) {
	text, err := ExtractBytes([]byte("hello world"), ".txt")
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestExtractPlainInvalidUTF8(t *testing.T) {
	text, err := ExtractBytes([]byte{'o', 'k', 0xff, 0xfe}, ".txt")
	require.NoError(t, err)
	assert.Contains(t, text, "ok")
	assert.NotContains(t, text, "\xff")
}

func TestExtractDOCX(t *testing.T) {
	docXML := `<?xml version="1.0"?><w:document><w:body>` +
		`<w:p w:rsidR="00A"><w:r><w:t>Hello</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t xml:space="preserve">from docx</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	content := zipWith(t, map[string]string{"word/document.xml": docXML})

	text, err := ExtractBytes(content, ".docx")
	require.NoError(t, err)
	assert.Equal(t, "Hello from docx", text)
}

func TestExtractDOCXNotAZip(t *testing.T) {
	_, err := ExtractBytes([]byte("plain bytes"), ".docx")
	assert.Error(t, err)
}

func TestExtractDOCXMissingDocument(t *testing.T) {
	content := zipWith(t, map[string]string{"other.xml": "<x/>"})
	_, err := ExtractBytes(content, ".docx")
	assert.Error(t, err)
}

func TestExtractPPTX(t *testing.T) {
	slide := `<p:sld><p:txBody><a:p><a:r><a:t>Slide one</a:t></a:r></a:p></p:txBody></p:sld>`
	slide2 := `<p:sld><p:txBody><a:p><a:r><a:t xml:space="preserve">Slide two</a:t></a:r></a:p></p:txBody></p:sld>`
	content := zipWith(t, map[string]string{
		"ppt/slides/slide1.xml": slide,
		"ppt/slides/slide2.xml": slide2,
		"ppt/media/image1.png":  "binary",
	})

	text, err := ExtractBytes(content, ".pptx")
	require.NoError(t, err)
	assert.Contains(t, text, "Slide one")
	assert.Contains(t, text, "Slide two")
}

func TestExtractExcel(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "name"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "count"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "widget"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 3))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	text, err := ExtractBytes(buf.Bytes(), ".xlsx")
	require.NoError(t, err)
	assert.Contains(t, text, "name\tcount")
	assert.Contains(t, text, "widget\t3")
}

func TestExtractPDFGarbage(t *testing.T) {
	_, err := ExtractBytes([]byte("definitely not a pdf"), ".pdf")
	assert.Error(t, err)
}

func TestExtractFileUnsupportedBeforeRead(t *testing.T) {
	// The extension check fires before any file I/O
	_, err := ExtractFile("/nonexistent/file.xyz")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindUnsupportedFormat))
}

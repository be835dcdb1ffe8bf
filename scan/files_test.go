package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"hiddenmsg/config"
	"hiddenmsg/stegano/text"
)

func testScanner() *Scanner {
	conf := config.DefaultConfig("").Scanner
	conf.Workers = 2
	return NewScanner(conf, text.DefaultDecoder())
}

func TestDetermineFileType(t *testing.T) {
	testCases := []struct {
		ext string
		typ int8
	}{
		{"txt", TextFile},
		{".MD", TextFile},
		{"html", MarkupFile},
		{"png", UnknownFile},
		{"", UnknownFile},
	}
	for _, tc := range testCases {
		t.Run(tc.ext, func(t *testing.T) {
			assert.Equal(t, tc.typ, DetermineFileType(tc.ext))
		})
	}
}

func TestScanTexts(t *testing.T) {
	defer goleak.VerifyNone(t)

	first, err := text.EncodeSingleCarrier("first", "🔥")
	require.NoError(t, err)
	second, err := text.EncodeWithUnprintable(text.ZeroWidthSpaceScheme(), text.SuffixMode, []byte("second one"), "just a line")
	require.NoError(t, err)

	hits := testScanner().ScanTexts([]string{
		"nothing\n" + first,
		"plain",
		"a\nb\n" + second,
	})
	require.Len(t, hits, 2)
	assert.Equal(t, "#0", hits[0].Source)
	assert.Equal(t, 2, hits[0].Line)
	assert.Equal(t, "first", hits[0].Result.Text)
	assert.Equal(t, "#2", hits[1].Source)
	assert.Equal(t, 3, hits[1].Line)
	assert.Equal(t, "second one", hits[1].Result.Text)
	assert.Equal(t, "ZW-SPACE", hits[1].Result.Scheme)
}

func TestScanFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	hidden, err := text.EncodeMultiAnchor("see https://tenor.com/view/cat", "an innocent sentence")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("line\r\n"+hidden+"\r\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("nothing"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.bin"), []byte(hidden), 0600))
	image := filepath.Join(dir, "d.png")
	require.NoError(t, os.WriteFile(image, []byte{0x89}, 0600))

	hits, err := testScanner().ScanFiles([]string{dir, filepath.Join(dir, "missing.txt"), image})
	require.Len(t, hits, 1)
	assert.Equal(t, filepath.Join(dir, "a.txt"), hits[0].Source)
	assert.Equal(t, 2, hits[0].Line)
	assert.Equal(t, []string{"https://tenor.com/view/cat"}, hits[0].Links)

	// both failures are reported, the scan went on
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestScanMultiLineCarrier(t *testing.T) {
	defer goleak.VerifyNone(t)

	hidden, err := text.EncodeMultiAnchor("meet me at noon", "first line here\nsecond line there")
	require.NoError(t, err)
	late, err := text.EncodeSingleCarrier("ok", "🌟")
	require.NoError(t, err)

	hits := testScanner().ScanTexts([]string{hidden, "one\ntwo\n" + late + "\nfour"})
	require.Len(t, hits, 2)
	assert.Equal(t, "meet me at noon", hits[0].Result.Text)
	assert.Equal(t, 1, hits[0].Line)
	assert.Equal(t, "ok", hits[1].Result.Text)
	assert.Equal(t, 3, hits[1].Line)
}

func TestScanMultiLineFile(t *testing.T) {
	defer goleak.VerifyNone(t)

	hidden, err := text.EncodeMultiAnchor("a message spread over lines", "a\nshort\r\npoem\nabout nothing")
	require.NoError(t, err)
	filename := filepath.Join(t.TempDir(), "poem.md")
	require.NoError(t, os.WriteFile(filename, []byte("title\n\n"+hidden), 0600))

	hits, err := testScanner().ScanFiles([]string{filename})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "a message spread over lines", hits[0].Result.Text)
	assert.Equal(t, 3, hits[0].Line)
}

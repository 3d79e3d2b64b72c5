package palette

import (
	"bytes"
	"testing"

	"colorgram/extract"
)

func TestWritePALLayout(t *testing.T) {
	t.Parallel()

	colors := []extract.Color{
		{RGB: extract.RGB{R: 0xAA, G: 0xBB, B: 0xCC}, Proportion: 0.75},
		{RGB: extract.RGB{R: 0x11, G: 0x22, B: 0x33}, Proportion: 0.25},
	}

	var buf bytes.Buffer
	n, err := WritePAL(&buf, colors)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if n != 2 {
		t.Errorf("wrote %d entries, want 2", n)
	}

	want := []byte{
		'R', 'I', 'F', 'F',
		24, 0, 0, 0, // document size: form type + chunk header + 4 + 2*4
		'P', 'A', 'L', ' ',
		'd', 'a', 't', 'a',
		12, 0, 0, 0, // chunk size: palVersion + palNumEntries + 2*4
		0x00, 0x03, // LOGPALETTE version 3
		2, 0, // entry count, little endian
		0xAA, 0xBB, 0xCC, 0x00,
		0x11, 0x22, 0x33, 0x00,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("document bytes:\n got %v\nwant %v", buf.Bytes(), want)
	}
}

func TestWritePALEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := WritePAL(&buf, nil); err == nil {
		t.Error("expected error for empty palette")
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes for empty palette", buf.Len())
	}
}

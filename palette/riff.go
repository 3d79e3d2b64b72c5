// Package palette exports extracted palettes as RIFF PAL documents, the
// LOGPALETTE-based format understood by most palette editors.
package palette

import (
	"encoding/binary"
	"fmt"
	"io"

	"colorgram/extract"

	"golang.org/x/image/riff"
)

/*
typedef struct tagLOGPALETTE {
  WORD         palVersion;
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

// WritePAL writes colors as a single-palette RIFF PAL document and returns
// the number of palette entries written. Proportions are not representable
// in the format; entry order preserves the palette order, so the heaviest
// color stays first.
func WritePAL(w io.Writer, colors []extract.Color) (int64, error) {
	if len(colors) == 0 {
		return 0, fmt.Errorf("nothing to write: empty palette")
	} else if len(colors) > 0xFFFF {
		return 0, fmt.Errorf("too many colors for a LOGPALETTE: %d", len(colors))
	}

	// Document size counts everything after the RIFF size field: the form
	// type, one chunk header, palVersion + palNumEntries and 4 bytes/color.
	docSize := 4 + 8 + 4 + len(colors)*4

	if err := writeBytes(w, riffType[:]); err != nil {
		return 0, fmt.Errorf("could not write RIFF magic: %w", err)
	}
	if err := writeBytes(w, binary.LittleEndian.AppendUint32(nil, uint32(docSize))); err != nil {
		return 0, fmt.Errorf("could not write document size: %w", err)
	}
	if err := writeBytes(w, palType[:]); err != nil {
		return 0, fmt.Errorf("could not write content type: %w", err)
	}

	if err := writeBytes(w, dataType[:]); err != nil {
		return 0, fmt.Errorf("could not write chunk type: %w", err)
	}
	chunkSize := 4 + len(colors)*4
	if err := writeBytes(w, binary.LittleEndian.AppendUint32(nil, uint32(chunkSize))); err != nil {
		return 0, fmt.Errorf("could not write chunk size: %w", err)
	}
	if err := writeBytes(w, []byte{0, 0x03}); err != nil {
		return 0, fmt.Errorf("could not write palette version: %w", err)
	}
	if err := writeBytes(w, binary.LittleEndian.AppendUint16(nil, uint16(len(colors)))); err != nil {
		return 0, fmt.Errorf("could not write number of colors: %w", err)
	}

	for i, col := range colors {
		if err := writeBytes(w, []byte{col.RGB.R, col.RGB.G, col.RGB.B, 0x00}); err != nil {
			return int64(i), fmt.Errorf("could not write color %d/%d: %w", i, len(colors), err)
		}
	}

	return int64(len(colors)), nil
}

func writeBytes(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return err
	} else if n != len(b) {
		return fmt.Errorf("wrote only %d/%d bytes", n, len(b))
	}

	return nil
}

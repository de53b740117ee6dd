package orientation

import (
	"bytes"
	"encoding/binary"
	"io"
)

// scanAPP1Orientation is the secondary extraction path: a minimal JPEG APP1
// scanner that reads only the orientation tag from IFD0. It shares no code
// with the EXIF library and tolerates truncated or malformed segments by
// reporting "not found".
func scanAPP1Orientation(data []byte) (uint16, bool) {
	r := bytes.NewReader(data)

	var soi [2]byte
	if _, err := io.ReadFull(r, soi[:]); err != nil {
		return 0, false
	}
	if soi[0] != 0xFF || soi[1] != 0xD8 {
		return 0, false // not a JPEG
	}

	for {
		var marker [2]byte
		if _, err := io.ReadFull(r, marker[:]); err != nil {
			return 0, false
		}
		if marker[0] != 0xFF {
			return 0, false
		}
		// skip padding
		for marker[1] == 0xFF {
			if _, err := io.ReadFull(r, marker[1:]); err != nil {
				return 0, false
			}
		}

		var lenBuf [2]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return 0, false
		}
		segLen := int(binary.BigEndian.Uint16(lenBuf[:])) - 2
		if segLen < 0 {
			return 0, false
		}

		if marker[1] == 0xE1 { // APP1
			payload := make([]byte, segLen)
			if _, err := io.ReadFull(r, payload); err != nil {
				return 0, false
			}
			return parseTIFFOrientation(payload)
		}
		if marker[1] == 0xDA { // SOS: no metadata past this point
			return 0, false
		}
		if _, err := r.Seek(int64(segLen), io.SeekCurrent); err != nil {
			return 0, false
		}
	}
}

// parseTIFFOrientation walks IFD0 of the TIFF structure embedded in an APP1
// segment and returns the orientation tag (0x0112) if present.
func parseTIFFOrientation(payload []byte) (uint16, bool) {
	if !bytes.HasPrefix(payload, []byte("Exif\x00\x00")) {
		return 0, false
	}
	tiff := payload[6:]
	if len(tiff) < 8 {
		return 0, false
	}

	var order binary.ByteOrder
	switch {
	case tiff[0] == 'I' && tiff[1] == 'I':
		order = binary.LittleEndian
	case tiff[0] == 'M' && tiff[1] == 'M':
		order = binary.BigEndian
	default:
		return 0, false
	}
	if order.Uint16(tiff[2:4]) != 0x2A {
		return 0, false
	}

	ifdOffset := order.Uint32(tiff[4:8])
	if int(ifdOffset)+2 > len(tiff) {
		return 0, false
	}

	count := int(order.Uint16(tiff[ifdOffset : ifdOffset+2]))
	entries := tiff[ifdOffset+2:]
	for i := 0; i < count; i++ {
		off := i * 12
		if off+12 > len(entries) {
			return 0, false
		}
		entry := entries[off : off+12]
		tagID := order.Uint16(entry[0:2])
		typeID := order.Uint16(entry[2:4])
		if tagID != 0x0112 {
			continue
		}
		if typeID != 3 { // SHORT
			return 0, false
		}
		// Value fits inline in the 4-byte value field.
		return order.Uint16(entry[8:10]), true
	}
	return 0, false
}

package section

import (
	"github.com/arloliu/mapitem/encoding"
	"github.com/arloliu/mapitem/errs"
	"github.com/arloliu/mapitem/token"
)

// FileHeader is the fixed-size record written once at the start of a stream.
type FileHeader struct {
	// CoreMapVersion is the engine-level map format version.
	CoreMapVersion uint32 `yaml:"core_map_version"`
	// GameID identifies the game the map belongs to.
	GameID token.Token `yaml:"game_id"`
	// GameMapVersion is the game-specific map format version.
	GameMapVersion uint32 `yaml:"game_map_version"`
}

// Read decodes the header from r.
func (h *FileHeader) Read(r *encoding.Reader) {
	h.CoreMapVersion = r.Uint32("file_header.core_map_version")
	h.GameID = r.Token("file_header.game_id")
	h.GameMapVersion = r.Uint32("file_header.game_map_version")
}

// Write encodes the header to w.
func (h *FileHeader) Write(w *encoding.Writer) {
	w.Uint32(h.CoreMapVersion)
	w.Token(h.GameID)
	w.Uint32(h.GameMapVersion)
}

// Parse parses the header from a byte slice of exactly FileHeaderSize bytes.
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 16 bytes
func (h *FileHeader) Parse(data []byte) error {
	if len(data) != FileHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	r := encoding.NewReader(data)
	h.Read(r)

	return r.Err()
}

// Bytes serializes the header.
func (h *FileHeader) Bytes() []byte {
	w := encoding.NewAppendWriter(make([]byte, 0, FileHeaderSize))
	h.Write(w)

	return w.Bytes()
}

// ParseFileHeader parses a FileHeader from the start of data.
//
// Returns:
//   - FileHeader: Parsed header
//   - error: ErrInvalidHeaderSize if data is shorter than FileHeaderSize
func ParseFileHeader(data []byte) (FileHeader, error) {
	if len(data) < FileHeaderSize {
		return FileHeader{}, errs.ErrInvalidHeaderSize
	}

	h := FileHeader{}
	if err := h.Parse(data[:FileHeaderSize]); err != nil {
		return FileHeader{}, err
	}

	return h, nil
}

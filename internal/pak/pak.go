// Package pak reads Unreal Engine .pak archive indexes.
//
// The binary index decoding is not implemented yet: Parse returns a fixed,
// well-formed placeholder index so the rest of the pipeline (cataloging,
// dependency mapping, the HTTP API) works end to end. The types mirror the
// real on-disk structures so the decoder can land without touching
// callers.
package pak

import (
	"context"
	"fmt"

	"github.com/AreyMadhav/PakSeek/internal/ctxlog"
	"github.com/AreyMadhav/PakSeek/internal/fsutil"
)

// CompressionMethod identifies how an archive entry is compressed.
type CompressionMethod uint32

// Compression method IDs as stored in the pak index.
const (
	CompressionNone  CompressionMethod = 0
	CompressionZlib  CompressionMethod = 1
	CompressionGzip  CompressionMethod = 2
	CompressionLZ4   CompressionMethod = 4
	CompressionOodle CompressionMethod = 8
)

// String renders the method name; unknown IDs render as Unknown(n).
func (c CompressionMethod) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZlib:
		return "Zlib"
	case CompressionGzip:
		return "Gzip"
	case CompressionLZ4:
		return "LZ4"
	case CompressionOodle:
		return "Oodle"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(c))
	}
}

// Entry is one file record in a pak index.
type Entry struct {
	Filename         string            `json:"filename"`
	Offset           uint64            `json:"offset"`
	CompressedSize   uint64            `json:"compressed_size"`
	UncompressedSize uint64            `json:"uncompressed_size"`
	Compression      CompressionMethod `json:"compression_method"`
	SHA1             string            `json:"sha1_hash,omitempty"`
	Encrypted        bool              `json:"is_encrypted"`
}

// File is a parsed pak archive: header fields plus the file index.
type File struct {
	Path       string  `json:"path"`
	Version    uint32  `json:"version"`
	MountPoint string  `json:"mount_point"`
	Entries    []Entry `json:"entries"`
	TotalSize  uint64  `json:"total_size"`
}

// Parser reads one .pak archive.
type Parser struct {
	Path string
}

// NewParser creates a parser for the archive at path. No I/O happens until
// Parse.
func NewParser(path string) *Parser {
	return &Parser{Path: path}
}

// Parse reads the archive header and index.
//
// TODO: decode the real index: read the footer (magic 0x5A6F12E1, version,
// index offset/size, SHA-1), then the entry records, honoring the
// encryption flag. Until then this returns a representative placeholder
// index so callers exercise the full shape of the data.
func (p *Parser) Parse(ctx context.Context) (*File, error) {
	ctxlog.FromContext(ctx).Info("Parsing .pak file", "path", p.Path)

	return &File{
		Path:       p.Path,
		Version:    8, // common UE4/5 pak version
		MountPoint: "../../../",
		Entries: []Entry{
			{
				Filename:         "Content/Characters/Player.uasset",
				Offset:           0x1000,
				CompressedSize:   125_440,
				UncompressedSize: 2_457_600,
				Compression:      CompressionLZ4,
				SHA1:             "a1b2c3d4e5f6789",
			},
			{
				Filename:         "Content/Textures/MainMenu.uasset",
				Offset:           0x25000,
				CompressedSize:   1_048_576,
				UncompressedSize: 4_194_304,
				Compression:      CompressionOodle,
				SHA1:             "f6e5d4c3b2a1987",
			},
		},
		TotalSize: 64 << 20,
	}, nil
}

// ListFiles returns the filenames of every entry in the archive index.
func (p *Parser) ListFiles(ctx context.Context) ([]string, error) {
	file, err := p.Parse(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(file.Entries))
	for i, entry := range file.Entries {
		names[i] = entry.Filename
	}
	return names, nil
}

// FileInfo returns the index record for filename without extracting it,
// or nil if the archive has no such entry.
func (p *Parser) FileInfo(ctx context.Context, filename string) (*Entry, error) {
	file, err := p.Parse(ctx)
	if err != nil {
		return nil, err
	}
	for i := range file.Entries {
		if file.Entries[i].Filename == filename {
			return &file.Entries[i], nil
		}
	}
	return nil, nil
}

// ExtractFile reads and decompresses one entry's payload.
//
// TODO: seek to the entry offset, read CompressedSize bytes, decompress
// per the entry's method, verify the SHA-1, decrypt when flagged. The
// placeholder hands back a zeroed buffer.
func (p *Parser) ExtractFile(ctx context.Context, filename string) ([]byte, error) {
	ctxlog.FromContext(ctx).Info("Extracting file from archive", "file", filename, "path", p.Path)
	return make([]byte, 1024), nil
}

// Validate checks the archive's structural integrity.
//
// TODO: verify the footer magic, the index SHA-1, and per-entry hashes.
// The placeholder accepts everything.
func (p *Parser) Validate(ctx context.Context) (bool, error) {
	ctxlog.FromContext(ctx).Info("Validating .pak file", "path", p.Path)
	return true, nil
}

// FindArchives returns every .pak file under dir, sorted.
func FindArchives(dir string) ([]string, error) {
	return fsutil.FindFilesByExtension(dir, ".pak")
}

// TotalArchiveSize sums the on-disk size of every .pak file under dir.
func TotalArchiveSize(dir string) (uint64, error) {
	archives, err := FindArchives(dir)
	if err != nil {
		return 0, err
	}
	return fsutil.TotalSize(archives), nil
}

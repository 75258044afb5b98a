// Package levelpack reads and writes level packs in the .brk binary format.
//
// Layout:
//
//	[16]byte pack name   (0xFF padded)
//	[16]byte pack author (0xFF padded)
//	per level:
//	  [16]byte level name (0xFF padded)
//	  [176]byte tiles, two 4-bit codes per byte, high nibble first
package levelpack

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/level"
)

const (
	// MaxLevels is the largest number of levels a pack may hold.
	MaxLevels = 99

	// Ext is the pack file extension.
	Ext = ".brk"

	padByte    = 0xFF
	headerSize = level.NameLen * 2
	tilesSize  = (level.Cells + 1) / 2
	levelSize  = level.NameLen + tilesSize
)

// ErrInvalidPack is returned when pack data or a pack value is malformed.
var ErrInvalidPack = errors.New("invalid level pack")

// Pack is a named, ordered collection of levels.
type Pack struct {
	Name   string
	Author string
	Levels []*level.Level
}

// New creates a pack with sanitized name and author.
func New(name, author string, levels []*level.Level) *Pack {
	return &Pack{
		Name:   level.SanitizeName(name),
		Author: level.SanitizeName(author),
		Levels: levels,
	}
}

// Validate checks the level count.
func (p *Pack) Validate() error {
	switch {
	case len(p.Levels) == 0:
		return fmt.Errorf("%w: no levels", ErrInvalidPack)
	case len(p.Levels) > MaxLevels:
		return fmt.Errorf("%w: %d levels, max %d", ErrInvalidPack, len(p.Levels), MaxLevels)
	}
	return nil
}

// Encode serializes a pack.
func Encode(p *Pack) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	buf := make([]byte, 0, headerSize+levelSize*len(p.Levels))
	buf = appendName(buf, p.Name)
	buf = appendName(buf, p.Author)
	for _, lvl := range p.Levels {
		buf = appendName(buf, lvl.Name())
		g := lvl.Grid()
		for i := 0; i < level.Cells; i += 2 {
			hi := byte(g[i])
			lo := byte(level.Air)
			if i+1 < level.Cells {
				lo = byte(g[i+1])
			}
			buf = append(buf, hi<<4|lo&0x0F)
		}
	}
	return buf, nil
}

// Decode parses pack data. Data shorter than the header, with no levels,
// more than MaxLevels levels or a truncated trailing level is rejected
// as a whole.
func Decode(data []byte) (*Pack, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidPack, len(data), headerSize)
	}
	body := data[headerSize:]
	if len(body)%levelSize != 0 {
		return nil, fmt.Errorf("%w: trailing %d bytes", ErrInvalidPack, len(body)%levelSize)
	}

	p := &Pack{
		Name:   readName(data[:level.NameLen]),
		Author: readName(data[level.NameLen:headerSize]),
		Levels: make([]*level.Level, 0, len(body)/levelSize),
	}
	for off := 0; off < len(body); off += levelSize {
		chunk := body[off : off+levelSize]
		var g level.Grid
		for i, b := range chunk[level.NameLen:] {
			g[i*2] = nibbleTile(b >> 4)
			if i*2+1 < level.Cells {
				g[i*2+1] = nibbleTile(b & 0x0F)
			}
		}
		p.Levels = append(p.Levels, level.FromGrid(readName(chunk[:level.NameLen]), g))
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Load reads and decodes a pack file.
func Load(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levelpack: cannot read %s: %w", path, err)
	}
	p, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("levelpack: %s: %w", path, err)
	}
	return p, nil
}

// Save encodes p into dir/FileName(p.Name), creating dir if needed, and
// returns the written path.
func Save(dir string, p *Pack) (string, error) {
	data, err := Encode(p)
	if err != nil {
		return "", fmt.Errorf("levelpack: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("levelpack: cannot create directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, FileName(p.Name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("levelpack: cannot write %s: %w", path, err)
	}
	return path, nil
}

// FileName returns the file name a pack called name is saved under.
func FileName(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	if name == "" {
		name = "UNTITLED"
	}
	return name + Ext
}

// List returns the pack files in dir, sorted. A missing dir is not an error.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("levelpack: cannot list %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), Ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func appendName(buf []byte, name string) []byte {
	name = level.SanitizeName(name)
	buf = append(buf, name...)
	for range level.NameLen - len(name) {
		buf = append(buf, padByte)
	}
	return buf
}

// readName stops at the first byte that is not a valid name character.
func readName(field []byte) string {
	var sb strings.Builder
	for _, b := range field {
		if !level.ValidChar(rune(b)) {
			break
		}
		sb.WriteByte(b)
	}
	return sb.String()
}

// nibbleTile maps every code to a tile; 4-bit codes are always in range
// but anything else falls back to Air.
func nibbleTile(code byte) level.Tile {
	t, ok := level.TileFromCode(code)
	if !ok {
		return level.Air
	}
	return t
}

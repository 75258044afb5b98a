package levelpack

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/level"
)

// patterned builds a level whose tiles depend on seed so that every level
// of a pack is distinct.
func patterned(name string, seed int) *level.Level {
	var g level.Grid
	for i := range g {
		g[i] = level.Tile((i + seed) % level.TileCount)
	}
	return level.FromGrid(name, g)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		pack   string
		author string
		levels int
	}{
		{"single level, empty names", "", "", 1},
		{"single level, one char", "A", "B", 1},
		{"single level, full names", "ABCDEFGHIJKLMNOP", "0123456789_?!*:-", 1},
		{"max levels", "BIG PACK", "ME", MaxLevels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			levels := make([]*level.Level, tt.levels)
			for i := range levels {
				levels[i] = patterned(fmt.Sprintf("LEVEL %d", i), i)
			}
			p := New(tt.pack, tt.author, levels)

			data, err := Encode(p)
			require.NoError(t, err)
			assert.Len(t, data, headerSize+levelSize*tt.levels)

			got, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, tt.pack, got.Name)
			assert.Equal(t, tt.author, got.Author)
			require.Len(t, got.Levels, tt.levels)
			for i := range levels {
				assert.Equal(t, levels[i].Name(), got.Levels[i].Name())
				assert.Equal(t, levels[i].Grid(), got.Levels[i].Grid())
			}

			again, err := Encode(got)
			require.NoError(t, err)
			assert.Equal(t, data, again)
		})
	}
}

func TestLevelNameLengths(t *testing.T) {
	for _, name := range []string{"", "X", "SIXTEEN CHARS OK"} {
		p := New("P", "A", []*level.Level{level.FromGrid(name, level.EmptyGrid())})
		data, err := Encode(p)
		require.NoError(t, err)

		got, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, name, got.Levels[0].Name())
	}
}

func TestEncodeLayout(t *testing.T) {
	lvl := level.New()
	lvl.SetTile(0, level.Red)    // 1
	lvl.SetTile(1, level.Orange) // 2
	p := New("AB", "", []*level.Level{lvl})

	data, err := Encode(p)
	require.NoError(t, err)

	assert.Equal(t, byte('A'), data[0])
	assert.Equal(t, byte('B'), data[1])
	assert.Equal(t, byte(0xFF), data[2])
	assert.Equal(t, byte(0xFF), data[level.NameLen])
	assert.Equal(t, byte(0x12), data[headerSize+level.NameLen])
	assert.Equal(t, byte(0xFF), data[headerSize+level.NameLen+1], "two Air tiles")
}

func TestDecodeRejects(t *testing.T) {
	valid, err := Encode(New("P", "A", []*level.Level{level.New()}))
	require.NoError(t, err)

	tooMany := make([]byte, headerSize+levelSize*(MaxLevels+1))

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short header", make([]byte, headerSize-1)},
		{"no levels", make([]byte, headerSize)},
		{"trailing partial level", append(append([]byte{}, valid...), 1, 2, 3)},
		{"too many levels", tooMany},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode(tt.data)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, ErrInvalidPack)
		})
	}
}

func TestDecodeStopsNameAtInvalidByte(t *testing.T) {
	data, err := Encode(New("HELLO", "", []*level.Level{level.New()}))
	require.NoError(t, err)
	data[2] = 'l'

	p, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "HE", p.Name)
}

func TestEncodeRejectsBadLevelCount(t *testing.T) {
	_, err := Encode(New("P", "A", nil))
	assert.ErrorIs(t, err, ErrInvalidPack)

	levels := make([]*level.Level, MaxLevels+1)
	for i := range levels {
		levels[i] = level.New()
	}
	_, err = Encode(New("P", "A", levels))
	assert.ErrorIs(t, err, ErrInvalidPack)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "UNTITLED.brk"},
		{"CLASSIC", "CLASSIC.brk"},
		{"A/B", "A_B.brk"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.in), tt.in)
	}
}

func TestSaveLoadList(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "packs")
	p := New("MY/PACK", "ME", []*level.Level{patterned("ONE", 3), patterned("TWO", 5)})

	path, err := Save(dir, p)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "MY_PACK.brk"), path)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "MY/PACK", got.Name)
	require.Len(t, got.Levels, 2)
	assert.Equal(t, p.Levels[1].Grid(), got.Levels[1].Grid())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	paths, err := List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, paths)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.brk"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.brk")
	require.NoError(t, os.WriteFile(bad, []byte("short"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalidPack)

	paths, err := List(filepath.Join(dir, "nope"))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

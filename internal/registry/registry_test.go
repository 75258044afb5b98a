package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/level"
	"github.com/vovakirdan/tui-breakout/internal/levelpack"
)

func testPack() *levelpack.Pack {
	return levelpack.New("TEST PACK", "TESTER", []*level.Level{
		level.ParseLevel("ONE", []string{"RRRR"}),
		level.ParseLevel("TWO", []string{"BBBB"}),
	})
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_create", testPack)

	if !Exists("test_create") {
		t.Fatal("registered pack should exist")
	}
	if Exists("test_missing") {
		t.Error("unregistered pack should not exist")
	}

	p, err := Create("test_create")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if p.Name != "TEST PACK" || len(p.Levels) != 2 {
		t.Errorf("got %q with %d levels", p.Name, len(p.Levels))
	}

	// Every call builds new levels.
	p.Levels[0].Clear()
	again, _ := Create("test_create")
	if again.Levels[0].Complete() {
		t.Error("Create should not share levels between calls")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("test_unknown"); err == nil {
		t.Error("expected error for unknown pack")
	} else if !strings.Contains(err.Error(), "test_unknown") {
		t.Errorf("error should name the pack: %v", err)
	}
}

func TestListSortedWithInfo(t *testing.T) {
	Register("test_list_b", testPack)
	Register("test_list_a", testPack)

	list := List()
	var ids []string
	for _, info := range list {
		if strings.HasPrefix(info.ID, "test_list_") {
			ids = append(ids, info.ID)
			if info.Title != "TEST PACK" || info.Author != "TESTER" || info.Levels != 2 {
				t.Errorf("info = %+v", info)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "test_list_a" || ids[1] != "test_list_b" {
		t.Errorf("ids = %v, want sorted [test_list_a test_list_b]", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", testPack)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", testPack)
}

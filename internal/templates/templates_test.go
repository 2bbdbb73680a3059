package templates

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cloudpebble/cptui/internal/errors"
)

func names(buckets []Bucket) []string {
	out := make([]string, len(buckets))
	for i, b := range buckets {
		out[i] = b.Name
	}
	return out
}

func TestGroup(t *testing.T) {
	list := []Template{
		{ID: "a", Label: "Analog", Dir: "watchfaces/"},
		{ID: "t1", Label: "Part 1", Dir: "watchface-tutorial/"},
		{ID: "x", Label: "Misc", Dir: "piu/misc/"},
		{ID: "b", Label: "Weather", Group: "apps/"},
		{ID: "c", Label: "Digital", Dir: "watchfaces/"},
		{ID: "t2", Label: "Part 2", Group: "watchface-tutorial/"},
	}

	got := Group(list, "Digital watchface")
	want := []string{GroupWatchfaces, GroupTutorial, GroupExamples, GroupApps}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("bucket order = %v, want %v", names(got), want)
	}
	if ids := []string{got[0].Templates[0].ID, got[0].Templates[1].ID}; !reflect.DeepEqual(ids, []string{"a", "c"}) {
		t.Errorf("watchfaces = %v", ids)
	}
	if len(got[1].Templates) != 2 {
		t.Errorf("tutorial bucket has %d templates", len(got[1].Templates))
	}
}

func TestGroupDirWinsOverGroup(t *testing.T) {
	got := Group([]Template{{ID: "1", Label: "x", Dir: "apps/", Group: "watchfaces/"}}, "")
	if names(got)[0] != GroupApps {
		t.Errorf("bucket = %q, want apps", names(got)[0])
	}
}

func TestGroupEmptyFallsBack(t *testing.T) {
	got := Group(nil, "Digital watchface")
	if len(got) != 1 || len(got[0].Templates) != 1 {
		t.Fatalf("got %+v", got)
	}
	def := got[0].Templates[0]
	if def.ID != "0" || def.Label != "Digital watchface" {
		t.Errorf("default = %+v", def)
	}

	opts := Flatten(got)
	if len(opts) != 1 || opts[0].Label != "Digital watchface" || opts[0].Value != "0" {
		t.Errorf("Flatten = %+v", opts)
	}
}

func TestFlatten(t *testing.T) {
	opts := Flatten(Group([]Template{{ID: "w", Label: "Weather", Dir: "apps/"}}, ""))
	if len(opts) != 1 || opts[0].Label != "apps / Weather" || opts[0].Value != "w" {
		t.Errorf("Flatten = %+v", opts)
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing", func(t *testing.T) {
		list, err := LoadCatalog(filepath.Join(dir, "nope.json"))
		if err != nil || list != nil {
			t.Errorf("LoadCatalog = %v, %v", list, err)
		}
	})

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(dir, "ok.json")
		os.WriteFile(path, []byte(`[{"id":"piu/apps/weather","label":"weather","group":"apps/"}]`), 0644)
		list, err := LoadCatalog(path)
		if err != nil {
			t.Fatal(err)
		}
		if len(list) != 1 || list[0].Group != "apps/" {
			t.Errorf("list = %+v", list)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		os.WriteFile(path, []byte(`{`), 0644)
		_, err := LoadCatalog(path)
		if !errors.Is(err, errors.KindInvalid) {
			t.Errorf("err = %v, want KindInvalid", err)
		}
	})
}

package clipboard

import "testing"

func TestWriteReadText(t *testing.T) {
	var buf string
	SetBackend(func(s string) error { buf = s; return nil }, func() (string, error) { return buf, nil })
	defer ResetBackend()

	if err := WriteText("https://cloudpebble.repebble.com/ide/project/4"); err != nil {
		t.Fatal(err)
	}
	got, err := ReadText()
	if err != nil {
		t.Fatal(err)
	}
	if got != "https://cloudpebble.repebble.com/ide/project/4" {
		t.Errorf("ReadText() = %q", got)
	}
}

package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestT(t *testing.T) {
	tests := []struct {
		lang string
		key  string
		args []any
		want string
	}{
		{"en", MsgEnterName, nil, "You must enter a name."},
		{"es", MsgEnterName, nil, "Debes introducir un nombre."},
		{"es-MX", MsgUploadZip, nil, "Debes subir un archivo zip."},
		{"fr", MsgGitHubURL, nil, "You must specify a complete GitHub project URL"},
		{"", MsgImportComplete, []any{"demo"}, "Imported demo"},
		{"es", MsgImportComplete, []any{"demo"}, "demo importado"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.key, func(t *testing.T) {
			if got := New(tt.lang).T(tt.key, tt.args...); got != tt.want {
				t.Errorf("T() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNilLocalizer(t *testing.T) {
	var l *Localizer
	if got := l.T(MsgSpecifyName); got != MsgSpecifyName {
		t.Errorf("nil T() = %q", got)
	}
	if l.Tag() != language.English {
		t.Errorf("nil Tag() = %v", l.Tag())
	}
}

func TestUnknownKeyPassesThrough(t *testing.T) {
	if got := New("es").T("Invalid SDK version"); got != "Invalid SDK version" {
		t.Errorf("T() = %q", got)
	}
}

func TestEveryKeyTranslated(t *testing.T) {
	keys := []string{
		MsgEnterName, MsgSpecifyName, MsgUploadZip, MsgNotZip, MsgGitHubURL,
		MsgImporting, MsgCreating, MsgWaitingTask, MsgImportComplete,
		MsgLoggingIn, MsgLinkAccount, MsgDefaultWatchface, MsgCopied,
	}
	for _, k := range keys {
		if _, ok := spanish[k]; !ok {
			t.Errorf("no Spanish translation for %q", k)
		}
	}
}

// Package i18n translates user-facing strings through a golang.org/x/text
// message catalog. Message keys are the English text.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	MsgEnterName        = "You must enter a name."
	MsgSpecifyName      = "You must specify a project name."
	MsgUploadZip        = "You must upload a zip file."
	MsgNotZip           = "%s is not a zip archive."
	MsgGitHubURL        = "You must specify a complete GitHub project URL"
	MsgImporting        = "Importing project..."
	MsgCreating         = "Creating project..."
	MsgWaitingTask      = "Waiting for import to finish..."
	MsgImportComplete   = "Imported %s"
	MsgLoggingIn        = "Logging in..."
	MsgLinkAccount      = "%s is already registered with another sign-in method. Choose it to link your accounts."
	MsgDefaultWatchface = "Digital watchface"
	MsgCopied           = "Copied project URL"
)

var spanish = map[string]string{
	MsgEnterName:        "Debes introducir un nombre.",
	MsgSpecifyName:      "Debes especificar un nombre de proyecto.",
	MsgUploadZip:        "Debes subir un archivo zip.",
	MsgNotZip:           "%s no es un archivo zip.",
	MsgGitHubURL:        "Debes especificar una URL completa de un proyecto de GitHub",
	MsgImporting:        "Importando proyecto...",
	MsgCreating:         "Creando proyecto...",
	MsgWaitingTask:      "Esperando a que termine la importación...",
	MsgImportComplete:   "%s importado",
	MsgLoggingIn:        "Iniciando sesión...",
	MsgLinkAccount:      "%s ya está registrado con otro método de acceso. Elígelo para vincular tus cuentas.",
	MsgDefaultWatchface: "Esfera digital",
	MsgCopied:           "URL del proyecto copiada",
}

var cat = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, es := range spanish {
		_ = b.SetString(language.English, key, key)
		_ = b.SetString(language.Spanish, key, es)
	}
	return b
}

// Languages returns the tags the catalog has translations for.
func Languages() []language.Tag {
	return cat.Languages()
}

// Localizer formats messages for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for the closest supported match to lang, such as
// "es-MX" or "en". Unknown or empty values fall back to English.
func New(lang string) *Localizer {
	tag := language.English
	if t, err := language.Parse(lang); err == nil {
		supported := cat.Languages()
		_, idx, conf := language.NewMatcher(supported).Match(t)
		if conf != language.No {
			tag = supported[idx]
		}
	}
	return &Localizer{tag: tag, printer: message.NewPrinter(tag, message.Catalog(cat))}
}

// T translates key, formatting args into its placeholders. A nil Localizer
// formats in English.
func (l *Localizer) T(key string, args ...any) string {
	if l == nil {
		return message.NewPrinter(language.English, message.Catalog(cat)).Sprintf(key, args...)
	}
	return l.printer.Sprintf(key, args...)
}

// Tag returns the matched language.
func (l *Localizer) Tag() language.Tag {
	if l == nil {
		return language.English
	}
	return l.tag
}

package classify

import (
	"strings"
	"testing"

	"github.com/ukaji3/investidata-go/pkg/investidata/lexicon"
	"github.com/ukaji3/investidata-go/pkg/investidata/models"
)

func TestClassifySheetsScenario(t *testing.T) {
	names := []string{"Resumen General", "Mensajes SMS", "Contactos"}
	table := lexicon.SheetTable{models.CategoryDevice: {"resumen"}}

	got := ClassifySheets(names, table, Normalizer{})
	if got[models.CategoryDevice] != "Resumen General" {
		t.Errorf("device = %q, expected %q", got[models.CategoryDevice], "Resumen General")
	}
	if len(got) != 1 {
		t.Errorf("expected 1 mapped category, got %d: %v", len(got), got)
	}
}

func TestClassifySheetsDefaults(t *testing.T) {
	names := []string{"Resumen General", "Mensajes SMS", "Contactos", "Ubicaciones", "Registro de llamadas"}
	got := ClassifySheets(names, lexicon.Default().Sheets, Normalizer{})

	tests := []struct {
		category models.Category
		expected string
	}{
		{models.CategoryDevice, "Resumen General"},
		{models.CategoryMessages, "Mensajes SMS"},
		{models.CategoryContacts, "Contactos"},
		{models.CategoryLocations, "Ubicaciones"},
		{models.CategoryCalls, "Registro de llamadas"},
	}
	for _, tt := range tests {
		if got[tt.category] != tt.expected {
			t.Errorf("%s = %q, expected %q", tt.category, got[tt.category], tt.expected)
		}
	}
	if _, ok := got.Sheet(models.CategoryWeb); ok {
		t.Errorf("web should be absent, got %q", got[models.CategoryWeb])
	}
}

func TestClassifySheetsKeywordOrderWins(t *testing.T) {
	// "sms" is listed before "chat", so the SMS sheet wins even though
	// the chat sheet comes first in the workbook.
	names := []string{"Chats", "SMS"}
	table := lexicon.SheetTable{models.CategoryMessages: {"sms", "chat"}}

	got := ClassifySheets(names, table, Normalizer{})
	if got[models.CategoryMessages] != "SMS" {
		t.Errorf("messages = %q, expected %q", got[models.CategoryMessages], "SMS")
	}
}

func TestClassifySheetsTieBrokenByInputOrder(t *testing.T) {
	names := []string{"Chat WhatsApp", "Chat Telegram"}
	table := lexicon.SheetTable{models.CategoryMessages: {"chat"}}

	got := ClassifySheets(names, table, Normalizer{})
	if got[models.CategoryMessages] != "Chat WhatsApp" {
		t.Errorf("messages = %q, expected first matching sheet", got[models.CategoryMessages])
	}
}

func TestClassifySheetsAppInsideWhatsApp(t *testing.T) {
	// Known limitation of the default table: "app" comes first for apps and
	// also matches inside "WhatsApp", so the chat sheet beats "Aplicaciones".
	names := []string{"Mensajes WhatsApp", "Aplicaciones"}
	got := ClassifySheets(names, lexicon.Default().Sheets, Normalizer{})

	if got[models.CategoryApps] != "Mensajes WhatsApp" {
		t.Errorf("apps = %q, expected %q", got[models.CategoryApps], "Mensajes WhatsApp")
	}
	if got[models.CategoryMessages] != "Mensajes WhatsApp" {
		t.Errorf("messages = %q, expected %q", got[models.CategoryMessages], "Mensajes WhatsApp")
	}
}

func TestClassifySheetsEmpty(t *testing.T) {
	got := ClassifySheets(nil, lexicon.Default().Sheets, Normalizer{})
	if len(got) != 0 {
		t.Errorf("expected empty mapping, got %v", got)
	}
}

func TestClassifySheetsSharedSheet(t *testing.T) {
	names := []string{"Device Info"}
	table := lexicon.SheetTable{
		models.CategoryDevice:   {"device"},
		models.CategoryAccounts: {"info"},
	}
	got := ClassifySheets(names, table, Normalizer{})
	if got[models.CategoryDevice] != "Device Info" || got[models.CategoryAccounts] != "Device Info" {
		t.Errorf("expected both categories on the same sheet, got %v", got)
	}
}

func TestClassifySheetsProperties(t *testing.T) {
	names := []string{"Resumen", "Chats", "Mensajes", "GPS Fixes", "Installed Apps", "Cuentas", "Web History", "misc"}
	table := lexicon.Default().Sheets

	first := ClassifySheets(names, table, Normalizer{})
	second := ClassifySheets(names, table, Normalizer{})

	for category, sheet := range first {
		if second[category] != sheet {
			t.Errorf("%s not deterministic: %q vs %q", category, sheet, second[category])
		}

		found := false
		for _, n := range names {
			if n == sheet {
				found = true
			}
		}
		if !found {
			t.Errorf("%s mapped to fabricated name %q", category, sheet)
		}

		matched := false
		for _, kw := range table[category] {
			if strings.Contains(strings.ToLower(sheet), strings.ToLower(kw)) {
				matched = true
			}
		}
		if !matched {
			t.Errorf("%s mapped to %q which contains none of its keywords", category, sheet)
		}
	}
}

func TestClassifySheetsFoldAccents(t *testing.T) {
	names := []string{"Ubicación"}
	table := lexicon.SheetTable{models.CategoryLocations: {"ubicacion"}}

	if got := ClassifySheets(names, table, Normalizer{}); len(got) != 0 {
		t.Errorf("without folding expected no match, got %v", got)
	}
	got := ClassifySheets(names, table, Normalizer{FoldAccents: true})
	if got[models.CategoryLocations] != "Ubicación" {
		t.Errorf("with folding expected match, got %v", got)
	}
}

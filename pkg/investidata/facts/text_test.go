package facts

import (
	"reflect"
	"testing"

	"github.com/ukaji3/investidata-go/pkg/investidata/models"
)

func TestContactScenario(t *testing.T) {
	text := "contact me at a.b@example.com or +57 311 252 8641"

	if got := Emails(text); !reflect.DeepEqual(got, []string{"a.b@example.com"}) {
		t.Errorf("Emails = %v", got)
	}
	if got := Phones(text); !reflect.DeepEqual(got, []string{"+573112528641"}) {
		t.Errorf("Phones = %v", got)
	}
}

func TestPhones(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"llamar al 3112528641", []string{"3112528641"}},
		{"601-555-1234", []string{"6015551234"}},
		{"123456", []string{}},
		{"1234567890123456", []string{}},
		{"fecha 2023-03-12 14:22:10", []string{}},
		{"12/03/2023", []string{}},
		{"3112528641\t3001234567", []string{"3001234567", "3112528641"}},
		// Numbers in one cell separated by a single space run together.
		{"3112528641 3112528641", []string{}},
		{"+573112528641 y +573112528641", []string{"+573112528641"}},
		{"+57 (311) 252 8641", []string{"+573112528641"}},
		{"(601) 555-1234", []string{"6015551234"}},
		{"llama al 06.12.34.56.78 o 06-12-34-56-78 o +57 (311) 252 8641", []string{"+573112528641", "0612345678"}},
		{"12.03.2023", []string{}},
		{"12-03-2023 14:22", []string{}},
		{"2023-03-12T14:22:10", []string{}},
	}
	for _, tt := range tests {
		got := Phones(tt.input)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Phones(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestEmailsDeduplicateIgnoringCase(t *testing.T) {
	got := Emails("A@Example.com, a@example.com; z.y@mail.co. x@host")
	expected := []string{"A@Example.com", "z.y@mail.co"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Emails = %v, expected %v", got, expected)
	}
}

func TestIMEI(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"IMEI: 356938035643809", "356938035643809"},
		{"356938035643809 y 490154203237518", "356938035643809"},
		{"3569380356438091 490154203237518", "490154203237518"},
		{"35693803564380", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := IMEI(tt.input); got != tt.expected {
			t.Errorf("IMEI(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestProperNouns(t *testing.T) {
	got := ProperNouns("Ángela habló con Juan y McDonald en Bogotá, no con ANA ni Al")
	expected := []string{"Ángela", "Juan", "Bogotá"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ProperNouns = %v, expected %v", got, expected)
	}
}

func TestWords(t *testing.T) {
	got := Words("Que pasa con la Plata, plata ya", []string{"que", "con"})
	expected := []string{"pasa", "plata", "plata"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Words = %v, expected %v", got, expected)
	}
}

func TestRank(t *testing.T) {
	got := Rank([]string{"b", "a", "b", "c", "a", "b", ""}, 2)
	expected := []string{"b", "a"}
	if len(got) != 2 {
		t.Fatalf("Rank returned %d entries", len(got))
	}
	for i, v := range expected {
		if got[i].Value != v {
			t.Errorf("Rank[%d] = %v, expected %s", i, got[i], v)
		}
	}
	if got[0].Count != 3 || got[1].Count != 2 {
		t.Errorf("counts = %v", got)
	}
	if n := len(Rank([]string{"a"}, 0)); n != 1 {
		t.Errorf("Rank with n=0 returned %d entries", n)
	}
}

func TestFlatten(t *testing.T) {
	tbl := newTable("Chats", []string{"A", "B"},
		[]any{"hola", int64(3112528641)},
		[]any{nil, 1.5},
	)
	if got := Flatten(tbl); got != "hola\t3112528641\n1.5" {
		t.Errorf("Flatten = %q", got)
	}
	if got := FlattenColumns(tbl, []models.ColumnRef{ref(tbl, "B")}); got != "3112528641\n1.5" {
		t.Errorf("FlattenColumns = %q", got)
	}
	if got := Flatten(nil); got != "" {
		t.Errorf("Flatten(nil) = %q", got)
	}
}

func TestExtractionIsIdempotent(t *testing.T) {
	text := "a@b.co +57 311 252 8641 356938035643809"
	if !reflect.DeepEqual(Phones(text), Phones(text)) ||
		!reflect.DeepEqual(Emails(text), Emails(text)) ||
		IMEI(text) != IMEI(text) {
		t.Error("extraction is not idempotent")
	}
}

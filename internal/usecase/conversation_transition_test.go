package usecase

import (
	"errors"
	"testing"

	"meusdocumentos/internal/domain/entities"
	"meusdocumentos/internal/domain/validators"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		input string
		want  command
	}{
		{"CONFIRMAR", cmdConfirm},
		{" confirmar ", cmdConfirm},
		{"confirm", cmdConfirm},
		{"CANCELAR", cmdCancel},
		{"alterar", cmdChange},
		{"pix", cmdPix},
		{"CARTAO", cmdCard},
		{"cartão", cmdCard},
		{"status", cmdStatus},
		{"PAGO", cmdPaid},
		{"comprovante", cmdPaid},
		{"upload", cmdUpload},
		{"atualizar", cmdUpdate},
		{"e-mail", cmdEmail},
		{"zap", cmdWhatsApp},
		{"boleto", cmdUnknown},
		{"", cmdUnknown},
	}
	for _, c := range cases {
		if got := ParseCommand(c.input); got != c.want {
			t.Fatalf("ParseCommand(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestNumericSelection(t *testing.T) {
	recs := []entities.Service{{ID: "svc-1"}, {ID: "svc-2"}, {ID: "svc-3"}}

	t.Run("valid index", func(t *testing.T) {
		idx, ok := NumericSelection("2", entities.ConversationData{RecommendedServices: recs})
		if !ok || idx != 1 {
			t.Fatalf("expected (1, true), got (%d, %t)", idx, ok)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		if _, ok := NumericSelection("4", entities.ConversationData{RecommendedServices: recs}); ok {
			t.Fatalf("expected no selection")
		}
		if _, ok := NumericSelection("0", entities.ConversationData{RecommendedServices: recs}); ok {
			t.Fatalf("expected no selection")
		}
	})

	t.Run("no recommendations yet", func(t *testing.T) {
		if _, ok := NumericSelection("1", entities.ConversationData{}); ok {
			t.Fatalf("expected no selection")
		}
	})

	t.Run("service already selected disables shortcut", func(t *testing.T) {
		// A digits-only answer while collecting the profile must never be
		// read as a recommendation pick.
		data := entities.ConversationData{
			SelectedService:     &recs[0],
			RecommendedServices: recs,
		}
		if _, ok := NumericSelection("1", data); ok {
			t.Fatalf("expected no selection")
		}
	})

	t.Run("non numeric", func(t *testing.T) {
		if _, ok := NumericSelection("dois", entities.ConversationData{RecommendedServices: recs}); ok {
			t.Fatalf("expected no selection")
		}
	})
}

func TestCollectProfileField_Order(t *testing.T) {
	p := entities.CustomerProfile{}

	p, field, err := CollectProfileField(p, "Maria Silva")
	if err != nil || field != fieldName || p.Name != "Maria Silva" {
		t.Fatalf("expected name collected, got field=%d err=%v profile=%+v", field, err, p)
	}

	p, field, err = CollectProfileField(p, "123.456.789-01")
	if err != nil || field != fieldTaxID || p.TaxID != "12345678901" {
		t.Fatalf("expected tax id collected, got field=%d err=%v profile=%+v", field, err, p)
	}

	p, field, err = CollectProfileField(p, "(11) 98888-7777")
	if err != nil || field != fieldPhone || p.Phone != "11988887777" {
		t.Fatalf("expected phone collected, got field=%d err=%v profile=%+v", field, err, p)
	}

	p, field, err = CollectProfileField(p, "maria@example.com")
	if err != nil || field != fieldEmail || p.Email != "maria@example.com" {
		t.Fatalf("expected email collected, got field=%d err=%v profile=%+v", field, err, p)
	}

	if !p.Complete() {
		t.Fatalf("expected complete profile, got %+v", p)
	}
	if NextProfileField(p) != fieldNone {
		t.Fatalf("expected no missing field")
	}
}

func TestCollectProfileField_InvalidInputDiscarded(t *testing.T) {
	p := entities.CustomerProfile{Name: "Maria Silva"}

	got, field, err := CollectProfileField(p, "123")
	if !errors.Is(err, validators.ErrInvalidTaxID) {
		t.Fatalf("expected ErrInvalidTaxID, got %v", err)
	}
	if field != fieldTaxID {
		t.Fatalf("expected tax id field, got %d", field)
	}
	if got != p {
		t.Fatalf("expected unchanged profile, got %+v", got)
	}
}

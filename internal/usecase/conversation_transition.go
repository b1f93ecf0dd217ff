package usecase

import (
	"strconv"
	"strings"

	"meusdocumentos/internal/domain/entities"
	"meusdocumentos/internal/domain/validators"
)

// command is the normalized form of a recognized chat keyword. Everything
// the state handlers branch on goes through ParseCommand so the transition
// table stays total and testable without I/O.

type command int

const (
	cmdUnknown command = iota
	cmdConfirm
	cmdCancel
	cmdChange
	cmdPix
	cmdCard
	cmdStatus
	cmdPaid
	cmdUpload
	cmdUpdate
	cmdEmail
	cmdWhatsApp
)

// ParseCommand matches case-insensitively and accepts both the Portuguese
// keywords shown to users and their English counterparts.
func ParseCommand(input string) command {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "CONFIRMAR", "CONFIRM":
		return cmdConfirm
	case "CANCELAR", "CANCEL":
		return cmdCancel
	case "ALTERAR", "CHANGE":
		return cmdChange
	case "PIX":
		return cmdPix
	case "CARTAO", "CARTÃO", "CARD":
		return cmdCard
	case "STATUS":
		return cmdStatus
	case "PAGO", "COMPROVANTE", "PAID":
		return cmdPaid
	case "UPLOAD", "ENVIAR":
		return cmdUpload
	case "UPDATE", "ATUALIZAR":
		return cmdUpdate
	case "EMAIL", "E-MAIL":
		return cmdEmail
	case "WHATSAPP", "ZAP":
		return cmdWhatsApp
	default:
		return cmdUnknown
	}
}

// NumericSelection interprets the input as a 1-based index into the
// recommendation list. This shortcut is a guard layered on top of the state
// variable: it is checked before the per-state handler, but only while no
// service has been selected yet, so digit-only answers (CPF, phone) are
// never hijacked.
func NumericSelection(input string, data entities.ConversationData) (int, bool) {
	if data.SelectedService != nil || len(data.RecommendedServices) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > len(data.RecommendedServices) {
		return 0, false
	}
	return n - 1, true
}

// profileField names the next slot of the fixed collection order.

type profileField int

const (
	fieldNone profileField = iota
	fieldName
	fieldTaxID
	fieldPhone
	fieldEmail
)

// NextProfileField reports which profile field is still missing, in the
// mandatory name -> tax id -> phone -> email order.
func NextProfileField(p entities.CustomerProfile) profileField {
	switch {
	case p.Name == "":
		return fieldName
	case p.TaxID == "":
		return fieldTaxID
	case p.Phone == "":
		return fieldPhone
	case p.Email == "":
		return fieldEmail
	default:
		return fieldNone
	}
}

// CollectProfileField validates the input against the next missing field and
// returns the advanced profile. On validation failure the profile comes back
// unchanged and the invalid input is discarded.
func CollectProfileField(p entities.CustomerProfile, input string) (entities.CustomerProfile, profileField, error) {
	field := NextProfileField(p)
	switch field {
	case fieldName:
		p.Name = strings.TrimSpace(input)
	case fieldTaxID:
		taxID, err := validators.ValidateTaxID(input)
		if err != nil {
			return p, field, err
		}
		p.TaxID = taxID
	case fieldPhone:
		phone, err := validators.ValidatePhone(input)
		if err != nil {
			return p, field, err
		}
		p.Phone = phone
	case fieldEmail:
		email, err := validators.ValidateEmail(input)
		if err != nil {
			return p, field, err
		}
		p.Email = email
	}
	return p, field, nil
}

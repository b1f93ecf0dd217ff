package usecase

import (
	"fmt"
	"strings"

	"meusdocumentos/internal/domain/entities"
)

// Bot copy, in the voice of the MeusDocumentos.AI assistant. Kept in one
// place so the state handlers read as a transition table.

const (
	msgWelcome = "Olá! 👋 Sou o assistente virtual do **MeusDocumentos.AI**.\n\n" +
		"Estou aqui para te ajudar a solicitar documentos oficiais de forma rápida e segura.\n\n" +
		"Que tipo de documento você precisa?"

	msgRecommendationIntro   = "Baseado na sua solicitação, encontrei estas opções:"
	msgRecommendationClosing = "Digite o número da opção desejada ou descreva melhor o que você precisa."

	msgCatalogError = "Desculpe, ocorreu um erro ao buscar os serviços. Tente novamente em alguns instantes."

	msgAskTaxID = "Agora preciso do seu CPF para dar continuidade ao processo. Digite apenas os números:"
	msgAskPhone = "Perfeito! Agora preciso do seu telefone para contato (com DDD):"
	msgAskEmail = "Ótimo! Por último, preciso do seu e-mail:"

	msgInvalidTaxID = "Por favor, digite um CPF válido com 11 dígitos:"
	msgInvalidPhone = "Por favor, digite um telefone válido com DDD:"
	msgInvalidEmail = "Por favor, digite um e-mail válido:"

	msgOrderCreationPrompt = "Por favor, digite **CONFIRMAR** para confirmar o pedido ou **CANCELAR** para cancelar."
	msgOrderCreationError  = "Desculpe, ocorreu um erro ao criar seu pedido. Tente novamente em alguns instantes."
	msgOrderCancelled      = "Pedido cancelado. Posso te ajudar com alguma outra coisa?"

	msgCheckoutPrompt = "Por favor, digite **PIX** ou **CARTAO** para escolher a forma de pagamento."
	msgCheckoutError  = "Desculpe, ocorreu um erro ao iniciar o pagamento. Tente novamente em alguns instantes."

	msgStatusTrackingHelp = "Digite **STATUS** para acompanhar seu pedido ou faça uma nova pergunta."

	msgInquiryHelp = "Posso te ajudar com este pedido. Digite:\n" +
		"• **STATUS** para ver o andamento\n" +
		"• **UPLOAD** para enviar documentos\n" +
		"• **UPDATE** para solicitar uma alteração"

	msgUploadOptions = "Como você prefere enviar os documentos?\n" +
		"• Digite **EMAIL** para receber as instruções por e-mail\n" +
		"• Digite **WHATSAPP** para enviar pelo WhatsApp\n" +
		"• Ou descreva aqui os documentos que você já possui"

	msgUpdatePrompt = "Descreva a alteração que você precisa neste pedido. " +
		"Se for urgente, inclua a palavra **urgente**."

	msgUpdateError = "Desculpe, não consegui registrar sua solicitação agora. Tente novamente em alguns instantes."

	msgFallback = "Desculpe, não entendi. Pode repetir?"
)

// formatBRL renders minor currency units as Brazilian reais (R$ 1.234,56).
func formatBRL(minorUnits int64) string {
	neg := minorUnits < 0
	if neg {
		minorUnits = -minorUnits
	}
	reais := minorUnits / 100
	cents := minorUnits % 100

	digits := fmt.Sprintf("%d", reais)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped.String(), cents)
}

func msgServiceGreeting(svc entities.Service) string {
	return fmt.Sprintf("Olá! 👋 Vejo que você está interessado em solicitar: **%s**", svc.Name)
}

func msgServiceIntakeStart(svc entities.Service) string {
	return fmt.Sprintf("Este documento tem um custo a partir de **%s** e prazo estimado de **%d dias úteis**.\n\n"+
		"Para começar, preciso de algumas informações básicas. Qual é o seu nome completo?",
		formatBRL(svc.BasePrice), svc.EstimatedDays)
}

func msgRecommendationCard(index int, svc entities.Service) string {
	return fmt.Sprintf("**%s**\n%s\n\n💰 A partir de %s\n⏱️ Prazo: %d dias úteis\n📁 Categoria: %s\n\n"+
		"Para solicitar este documento, digite: **%d**",
		svc.Name, svc.Description, formatBRL(svc.BasePrice), svc.EstimatedDays, svc.Category, index+1)
}

func msgServiceSelected(svc entities.Service) string {
	return fmt.Sprintf("Ótima escolha! Vamos solicitar: **%s**.\n\n"+
		"Para começar, preciso de algumas informações básicas. Qual é o seu nome completo?", svc.Name)
}

func msgGreetName(name string) string {
	return fmt.Sprintf("Prazer em conhecê-lo, %s!\n\n%s", name, msgAskTaxID)
}

func msgProfileConfirmation(p entities.CustomerProfile) string {
	return fmt.Sprintf("Encontrei seus dados salvos:\n\n"+
		"**Nome:** %s\n**CPF:** %s\n**Telefone:** %s\n**E-mail:** %s\n\n"+
		"Digite **CONFIRMAR** para usar estes dados ou **ALTERAR** para informá-los novamente.",
		p.Name, p.TaxID, p.Phone, p.Email)
}

const msgProfileConfirmationRetry = "Digite **CONFIRMAR** para usar os dados salvos ou **ALTERAR** para informá-los novamente."

const msgProfileRestart = "Sem problemas! Vamos recomeçar. Qual é o seu nome completo?"

func msgFeeTransition(name string) string {
	return fmt.Sprintf("Perfeito, %s!\n\nAgora vou calcular o valor final do seu documento. Um momento...", name)
}

func msgOrderSummary(svc entities.Service, pricing entities.PricingSnapshot) string {
	return fmt.Sprintf("📋 **Resumo do Pedido**\n\n"+
		"**Documento:** %s\n"+
		"**Valor base:** %s\n"+
		"**Taxa de urgência:** %s\n"+
		"**Total:** %s\n\n"+
		"**Prazo estimado:** %d dias úteis\n\n"+
		"Para confirmar o pedido, digite **CONFIRMAR**.\nPara cancelar, digite **CANCELAR**.",
		svc.Name, formatBRL(pricing.BasePrice), formatBRL(pricing.UrgencyFee), formatBRL(pricing.Total), svc.EstimatedDays)
}

func msgOrderCreated(shortRef string) string {
	return fmt.Sprintf("✅ **Pedido criado com sucesso!**\n\n"+
		"**Número do pedido:** #%s\n\n"+
		"Agora vamos para o pagamento. Você pode pagar via:\n"+
		"• 💳 Cartão de crédito/débito\n"+
		"• 🏦 PIX (desconto de 5%%)\n\n"+
		"Digite **PIX** ou **CARTAO** para escolher a forma de pagamento:", shortRef)
}

func msgOrderAlreadyCreated(shortRef string) string {
	return fmt.Sprintf("Seu pedido **#%s** já foi criado! 😉\n\n"+
		"Digite **PIX** ou **CARTAO** para escolher a forma de pagamento:", shortRef)
}

func msgPixCharge(charge entities.PaymentCharge) string {
	return fmt.Sprintf("🏦 **PIX gerado com sucesso!**\n\n"+
		"Copie o código abaixo ou escaneie o QR Code:\n\n`%s`\n\nQR Code: %s\n\n"+
		"⚠️ O código expira em %d minutos.\n\n"+
		"Depois de pagar, digite **PAGO** para confirmar.",
		charge.PixCode, charge.QRCodeURL, charge.ExpiresInSeconds/60)
}

func msgCardCharge(charge entities.PaymentCharge) string {
	return fmt.Sprintf("💳 Perfeito! Acesse o link abaixo para concluir o pagamento com cartão:\n\n%s\n\n"+
		"Depois de pagar, digite **PAGO** para confirmar.", charge.RedirectURL)
}

func msgPaymentConfirmed(p entities.CustomerProfile, svc entities.Service) string {
	return fmt.Sprintf("🎉 **Pagamento confirmado!**\n\n"+
		"Seu documento está em processamento. Você receberá atualizações por:\n"+
		"• 📧 E-mail: %s\n"+
		"• 📱 WhatsApp: %s\n\n"+
		"**Próximos passos:**\n"+
		"1. ✅ Pagamento confirmado\n"+
		"2. 🔄 Análise e coleta de documentos (1-2 dias)\n"+
		"3. 📋 Processamento no órgão oficial (%d dias)\n"+
		"4. 📨 Entrega digital\n\n"+
		"Digite **STATUS** a qualquer momento para acompanhar seu pedido.\n\n"+
		"Obrigado por usar o MeusDocumentos.AI! 🚀",
		p.Email, p.Phone, svc.EstimatedDays)
}

func msgTrackingStatus(shortRef string, remainingDays int) string {
	return fmt.Sprintf("📊 **Status do Pedido #%s**\n\n"+
		"🔄 **Aguardando documentos adicionais**\n\n"+
		"Nossa equipe entrará em contato em breve para solicitar os documentos necessários.\n\n"+
		"Tempo restante estimado: %d dias úteis", shortRef, remainingDays)
}

func msgInquiryGreeting(o entities.Order) string {
	return fmt.Sprintf("Olá! 👋 Encontrei seu pedido **#%s** (%s).\n\n%s", o.ShortRef(), o.ServiceName, msgInquiryHelp)
}

func msgInquiryStatus(o entities.Order, remainingDays int) string {
	return fmt.Sprintf("📊 **Status do Pedido #%s**\n\n"+
		"**Documento:** %s\n"+
		"**Situação:** %s\n"+
		"**Pagamento:** %s\n"+
		"**Prazo restante estimado:** %d dias úteis",
		o.ShortRef(), o.ServiceName, o.Status, o.PaymentStatus, remainingDays)
}

func msgInquiryUpdateRequests(count int) string {
	if count == 1 {
		return "📌 Há 1 solicitação de atualização registrada para este pedido."
	}
	return fmt.Sprintf("📌 Há %d solicitações de atualização registradas para este pedido.", count)
}

const msgInquiryStatusError = "Desculpe, não consegui consultar seu pedido agora. Tente novamente em alguns instantes."

func msgUploadByEmail(shortRef string) string {
	return fmt.Sprintf("📧 Envie os documentos para **documentos@meusdocumentos.ai** "+
		"com o assunto **Pedido #%s**. Nossa equipe confirma o recebimento em até 1 dia útil.", shortRef)
}

func msgUploadByWhatsApp(shortRef string) string {
	return fmt.Sprintf("📱 Envie os documentos pelo WhatsApp **(11) 99999-0000** "+
		"informando o pedido **#%s**.", shortRef)
}

const msgUploadDescribed = "Anotado! Nossa equipe vai analisar os documentos descritos e retorna se algo mais for necessário."

func msgUpdateRecorded(kind entities.UpdateRequestKind) string {
	switch kind {
	case entities.UpdateRequestUrgent:
		return "🚨 Solicitação registrada como **urgente**. Nossa equipe prioriza casos assim e responde em até 4 horas úteis."
	case entities.UpdateRequestQuestion:
		return "❓ Sua dúvida foi registrada. Nossa equipe responde em até 1 dia útil."
	default:
		return "📝 Solicitação de alteração registrada. Nossa equipe responde em até 1 dia útil."
	}
}

package notify

import (
	"context"
	"fmt"
	"log"
	"os"

	"meusdocumentos/internal/domain/entities"
	"meusdocumentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

const defaultFromName = "MeusDocumentos.AI"

// SESOrderNotifier sends the order lifecycle emails through AWS SES.
// A nil client or empty EMAIL_FROM disables sending; callers already treat
// notification failures as best-effort.

type SESOrderNotifier struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
}

var _ interfaces.IOrderNotifier = (*SESOrderNotifier)(nil)

func NewSESOrderNotifier(client *sesv2.Client) *SESOrderNotifier {
	return &SESOrderNotifier{
		client:    client,
		fromEmail: os.Getenv("EMAIL_FROM"),
		fromName:  getenvDefault("EMAIL_FROM_NAME", defaultFromName),
	}
}

func (n *SESOrderNotifier) OrderCreated(ctx context.Context, o entities.Order) error {
	subject := fmt.Sprintf("Pedido #%s recebido", o.ShortRef())
	body := fmt.Sprintf(
		"Olá, %s!\n\n"+
			"Recebemos seu pedido de %s.\n\n"+
			"Número do pedido: #%s\n"+
			"Valor: R$ %.2f\n"+
			"Prazo estimado: %s\n\n"+
			"Assim que o pagamento for confirmado, iniciaremos o processamento.\n\n"+
			"Equipe MeusDocumentos.AI",
		o.Customer.Name, o.ServiceName, o.ShortRef(),
		float64(o.Pricing.Total)/100,
		o.EstimatedCompletionDate.Format("02/01/2006"),
	)
	return n.send(ctx, o.Customer.Email, subject, body)
}

func (n *SESOrderNotifier) PaymentConfirmed(ctx context.Context, o entities.Order) error {
	subject := fmt.Sprintf("Pagamento confirmado - Pedido #%s", o.ShortRef())
	body := fmt.Sprintf(
		"Olá, %s!\n\n"+
			"O pagamento do seu pedido #%s foi confirmado e ele já está em processamento.\n\n"+
			"Serviço: %s\n"+
			"Previsão de conclusão: %s\n\n"+
			"Você receberá o documento no e-mail cadastrado.\n\n"+
			"Equipe MeusDocumentos.AI",
		o.Customer.Name, o.ShortRef(), o.ServiceName,
		o.EstimatedCompletionDate.Format("02/01/2006"),
	)
	return n.send(ctx, o.Customer.Email, subject, body)
}

func (n *SESOrderNotifier) send(ctx context.Context, to, subject, body string) error {
	if n == nil || n.client == nil || n.fromEmail == "" {
		log.Printf("[notify][ses] sending disabled, skipping to=%s subject=%q", to, subject)
		return nil
	}
	if to == "" {
		log.Printf("[notify][ses] no recipient, skipping subject=%q", subject)
		return nil
	}

	out, err := n.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", n.fromName, n.fromEmail)),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	})
	if err != nil {
		log.Printf("[notify][ses] send failed to=%s subject=%q err=%v", to, subject, err)
		return err
	}
	log.Printf("[notify][ses] sent to=%s subject=%q message_id=%s", to, subject, aws.ToString(out.MessageId))
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

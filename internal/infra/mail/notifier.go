package mail

import (
	"context"
	"fmt"

	"seminar-booking/internal/pkg/config"
	"seminar-booking/internal/pkg/errs"

	gomail "github.com/wneessen/go-mail"
)

// Notifier sends the payment-request and confirmation mails over SMTP.
type Notifier struct {
	client        *gomail.Client
	from          string
	myPageBaseURL string
}

func NewNotifier(cfg config.MailConfig) (*Notifier, error) {
	client, err := gomail.NewClient(cfg.SMTPHost,
		gomail.WithPort(cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build mail client")
	}

	return &Notifier{
		client:        client,
		from:          cfg.From,
		myPageBaseURL: cfg.MyPageBaseURL,
	}, nil
}

func (n *Notifier) SendPaymentLink(ctx context.Context, toEmail, seminarTitle, paymentLink string) error {
	subject := fmt.Sprintf("【お支払い】%s セミナー申込み", seminarTitle)
	body := fmt.Sprintf(`%s にお申し込みいただきありがとうございます。

以下のリンクよりお支払いをお願いいたします。
お支払いが確認取れ次第、ZoomのURLをお送りいたします。

決済リンク:
%s

※本メールに心当たりがない場合は破棄してください。
`, seminarTitle, paymentLink)

	return n.send(ctx, toEmail, subject, body)
}

func (n *Notifier) SendConfirmation(ctx context.Context, toEmail, seminarTitle, zoomURL, bookingToken string) error {
	myPageLink := fmt.Sprintf("%s/%s", n.myPageBaseURL, bookingToken)

	subject := fmt.Sprintf("【予約確定】%s 参加用URLのご案内", seminarTitle)
	body := fmt.Sprintf(`お支払いが確認できました。
ご予約が確定いたしました。

当日は以下のZoom URLよりご参加ください。

Zoom URL:
%s

ご予約状況は以下のマイページよりご確認いただけます。
%s

当日のご参加を心よりお待ちしております。
`, zoomURL, myPageLink)

	return n.send(ctx, toEmail, subject, body)
}

func (n *Notifier) send(ctx context.Context, toEmail, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return errs.Wrap(err, "invalid mail sender")
	}
	if err := msg.To(toEmail); err != nil {
		return errs.Wrap(err, "invalid mail recipient")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to send mail")
	}
	return nil
}

package notification

import (
	"context"
	"errors"
	"fmt"
	"log"

	"sarthi-backend/internal/models"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

var ErrMissingDeviceToken = errors.New("fcm device token is empty")

type messenger interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMPusher mengirim notifikasi ke satu device token lewat Firebase Cloud Messaging
type FCMPusher struct {
	client messenger
	token  string
}

// NewFCMPusher menginisialisasi koneksi ke Firebase dari file service account
func NewFCMPusher(ctx context.Context, credentialsFile, deviceToken string) (*FCMPusher, error) {
	if deviceToken == "" {
		return nil, ErrMissingDeviceToken
	}

	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init messaging client: %w", err)
	}

	log.Println("[Notification] Firebase Cloud Messaging ready")
	return &FCMPusher{client: client, token: deviceToken}, nil
}

func (p *FCMPusher) Push(ctx context.Context, n models.Notification) error {
	message := &messaging.Message{
		Token: p.token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Message,
		},
		// Data tambahan untuk app: id & tipe notifikasi
		Data: map[string]string{
			"notification_id": n.ID,
			"type":            string(n.Type),
		},
	}

	id, err := p.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("send fcm message: %w", err)
	}

	log.Printf("[Notification] Terkirim ke device (message %s)", id)
	return nil
}

package payment

import (
	"errors"
	"fmt"
	"log"

	"sarthi-backend/internal/models"
	"sarthi-backend/pkg/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var (
	ErrNotConfigured = errors.New("payment gateway is not configured")
	ErrInvalidAmount = errors.New("consultation fee is not a valid amount")
)

// Checkout adalah token Snap untuk membayar biaya konsultasi
type Checkout struct {
	OrderID     string `json:"orderId"`
	Amount      int64  `json:"amount"`
	SnapToken   string `json:"snapToken"`
	RedirectURL string `json:"redirectUrl"`
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

type snapCreator interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
}

type Gateway struct {
	snap snapCreator
}

func NewGateway(serverKey string, production bool) *Gateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	var s = snap.Client{}
	s.New(serverKey, env)
	return &Gateway{snap: &s}
}

// CreateCheckout minta token Snap untuk satu appointment.
// Harga diambil dari label harga dokter ("₹1500").
func (g *Gateway) CreateCheckout(appt models.Appointment, doctor models.Doctor, customer Customer) (Checkout, error) {
	if g == nil || g.snap == nil {
		return Checkout{}, ErrNotConfigured
	}

	amount := utils.PriceToAmount(doctor.Price)
	if amount <= 0 {
		return Checkout{}, ErrInvalidAmount
	}

	orderID := fmt.Sprintf("APPT-%s", appt.ID)
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customer.Name,
			Email: customer.Email,
			Phone: customer.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    fmt.Sprintf("DOC-%s", doctor.ID),
				Name:  fmt.Sprintf("%s consultation (%s)", doctor.Name, appt.Type),
				Price: amount,
				Qty:   1,
			},
		},
	}

	resp, errSnap := g.snap.CreateTransaction(req)
	if errSnap != nil {
		log.Printf("[Payment] Midtrans error untuk %s: %s", orderID, errSnap.GetMessage())
		return Checkout{}, fmt.Errorf("midtrans: %s", errSnap.GetMessage())
	}

	return Checkout{
		OrderID:     orderID,
		Amount:      amount,
		SnapToken:   resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

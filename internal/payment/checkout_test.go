package payment

import (
	"testing"

	"sarthi-backend/internal/models"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnap struct {
	req *snap.Request
	err *midtrans.Error
}

func (f *fakeSnap) CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &snap.Response{Token: "tok-1", RedirectURL: "https://app.sandbox.midtrans.com/snap/v2/vtweb/tok-1"}, nil
}

var vikram = models.Doctor{ID: "4", Name: "Dr. Vikram Singh", Price: "₹1,500"}

func TestCreateCheckout(t *testing.T) {
	f := &fakeSnap{}
	g := &Gateway{snap: f}

	out, err := g.CreateCheckout(models.Appointment{ID: "204", Type: models.ConsultVideo}, vikram, Customer{Name: "Rahul Sharma", Email: "rahul@demo.com"})
	require.NoError(t, err)

	assert.Equal(t, Checkout{OrderID: "APPT-204", Amount: 1500, SnapToken: "tok-1", RedirectURL: "https://app.sandbox.midtrans.com/snap/v2/vtweb/tok-1"}, out)
	require.NotNil(t, f.req)
	assert.Equal(t, int64(1500), f.req.TransactionDetails.GrossAmt)
	assert.Equal(t, "Rahul Sharma", f.req.CustomerDetail.FName)
	assert.Equal(t, "DOC-4", (*f.req.Items)[0].ID)
}

func TestCreateCheckoutRejectsMissingPrice(t *testing.T) {
	g := &Gateway{snap: &fakeSnap{}}

	_, err := g.CreateCheckout(models.Appointment{ID: "1"}, models.Doctor{ID: "9", Price: "Free"}, Customer{})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCreateCheckoutMidtransError(t *testing.T) {
	g := &Gateway{snap: &fakeSnap{err: &midtrans.Error{Message: "unauthorized"}}}

	_, err := g.CreateCheckout(models.Appointment{ID: "1"}, vikram, Customer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestNilGateway(t *testing.T) {
	var g *Gateway
	_, err := g.CreateCheckout(models.Appointment{}, vikram, Customer{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

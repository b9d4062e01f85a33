// file: internals/features/finance/wallet/service/midtrans.go
package service

import (
	"errors"
	"fmt"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"pesantrenku_backend/internals/features/finance/wallet/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

// BuildTopUpOrderID: order id unik per top-up, dipakai Midtrans
// sebagai OrderID dan kunci idempoten webhook.
func BuildTopUpOrderID(tu *model.TopUp) string {
	return fmt.Sprintf("TOPUP-%s-%d", tu.TopUpID.String()[:8], time.Now().Unix())
}

type CustomerInput struct {
	Nama  string
	Email string
	Phone string
}

// GenerateSnapToken membuat transaksi Snap untuk top-up gateway.
// Mengembalikan (token, redirect_url).
func GenerateSnapToken(tu *model.TopUp, cust CustomerInput) (string, string, error) {
	if tu.TopUpJumlahIDR <= 0 {
		return "", "", errors.New("invalid topup_jumlah_idr")
	}
	if tu.TopUpOrderID == nil || *tu.TopUpOrderID == "" {
		return "", "", errors.New("topup_order_id is required (used as OrderID)")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  *tu.TopUpOrderID,
			GrossAmt: int64(tu.TopUpJumlahIDR),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Nama,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       *tu.TopUpOrderID,
				Price:    int64(tu.TopUpJumlahIDR),
				Qty:      1,
				Name:     "Top-up Dompet Santri",
				Category: "TOPUP",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

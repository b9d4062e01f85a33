// file: internals/features/finance/wallet/controller/midtrans_webhook_controller.go
package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/wallet/model"
	"pesantrenku_backend/internals/features/finance/wallet/service"
	helper "pesantrenku_backend/internals/helpers"
)

/* =======================================================================
   Webhook Midtrans — notifikasi status top-up gateway
======================================================================= */

type midtransNotif struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire, failure
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"` // string dari Midtrans
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"` // accept / challenge / deny
	TransactionID     string `json:"transaction_id"`
	SettlementTime    string `json:"settlement_time"`
	// field lain aman diabaikan
}

type MidtransWebhookController struct {
	DB                *gorm.DB
	MidtransServerKey string
}

func NewMidtransWebhookController(db *gorm.DB, serverKey string) *MidtransWebhookController {
	return &MidtransWebhookController{DB: db, MidtransServerKey: serverKey}
}

func (h *MidtransWebhookController) Handle(c *fiber.Ctx) error {
	// 1) Parse payload
	var notif midtransNotif
	if err := c.BodyParser(&notif); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload: "+err.Error())
	}

	// 2) Verify signature — SHA512(order_id + status_code + gross_amount + ServerKey)
	want := strings.ToLower(notif.SignatureKey)
	raw := notif.OrderID + notif.StatusCode + notif.GrossAmount + h.MidtransServerKey
	got := sha512sum(raw)
	if want == "" || got != want {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid signature")
	}

	// 3) Cari top-up by order_id. Balas 200 untuk order tak dikenal
	// supaya Midtrans tidak retry terus.
	var tu model.TopUp
	if err := h.DB.WithContext(c.Context()).
		First(&tu, "topup_order_id = ?", notif.OrderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(fiber.Map{"status": "ignored", "reason": "topup not found"})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "lookup failed")
	}

	// 4) Top-up yang sudah final tidak diproses ulang (webhook Midtrans
	// bisa datang berkali-kali untuk order yang sama).
	if tu.IsFinal() {
		return c.JSON(fiber.Map{"status": "ok", "reason": "already final"})
	}

	// 5) Map status transaksi → keputusan top-up
	ts := strings.ToLower(notif.TransactionStatus)
	fraud := strings.ToLower(notif.FraudStatus)

	switch ts {
	case "settlement":
		return h.terima(c, &tu, notif)
	case "capture":
		if fraud == "accept" {
			return h.terima(c, &tu, notif)
		}
		if fraud == "challenge" {
			return c.JSON(fiber.Map{"status": "ok", "reason": "challenge, waiting"})
		}
		return h.tolak(c, &tu, "fraud "+fraud)
	case "pending":
		return c.JSON(fiber.Map{"status": "ok", "reason": "pending"})
	case "deny", "cancel", "expire", "failure":
		return h.tolak(c, &tu, ts)
	default:
		return c.JSON(fiber.Map{"status": "ignored", "reason": "unknown status " + ts})
	}
}

func (h *MidtransWebhookController) terima(c *fiber.Ctx, tu *model.TopUp, notif midtransNotif) error {
	catatan := "midtrans " + notif.TransactionStatus + " " + notif.TransactionID
	if _, err := service.TerimaTopUp(c.Context(), h.DB, tu.TopUpID, nil, nil, &catatan); err != nil {
		return helper.JsonFromError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *MidtransWebhookController) tolak(c *fiber.Ctx, tu *model.TopUp, alasan string) error {
	catatan := "midtrans " + alasan
	if _, err := service.TolakTopUp(c.Context(), h.DB, tu.TopUpID, nil, nil, &catatan); err != nil {
		return helper.JsonFromError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func sha512sum(s string) string {
	h := sha512.Sum512([]byte(s))
	return hex.EncodeToString(h[:])
}

// file: internals/features/finance/wallet/controller/wallet_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/wallet/dto"
	"pesantrenku_backend/internals/features/finance/wallet/model"
	helper "pesantrenku_backend/internals/helpers"
)

type WalletController struct {
	DB *gorm.DB
}

func NewWalletController(db *gorm.DB) *WalletController {
	return &WalletController{DB: db}
}

/* =========================================================
   GET /api/u/santri/:id/wallet — saldo dompet santri
   Santri tanpa dompet = saldo 0 (dompet dibuat on-demand).
========================================================= */

func (ctrl *WalletController) Detail(c *fiber.Ctx) error {
	santriID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	var w model.WalletSantri
	if err := ctrl.DB.
		First(&w, "wallet_santri_santri_id = ?", santriID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonOK(c, "OK", dto.WalletResponse{SantriID: santriID, SaldoIDR: 0})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil dompet")
	}

	return helper.JsonOK(c, "OK", dto.ToWalletResponse(&w))
}

/* =========================================================
   GET /api/u/santri/:id/wallet/transaksi — mutasi dompet
========================================================= */

func (ctrl *WalletController) Transaksi(c *fiber.Ctx) error {
	santriID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	var w model.WalletSantri
	if err := ctrl.DB.
		First(&w, "wallet_santri_santri_id = ?", santriID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonList(c, "", []dto.WalletTransaksiResponse{}, p.Meta(0))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil dompet")
	}

	q := ctrl.DB.Model(&model.WalletTransaksi{}).
		Where("wallet_transaksi_wallet_id = ?", w.WalletSantriID)
	if v := strings.TrimSpace(c.Query("sumber")); v != "" {
		q = q.Where("wallet_transaksi_sumber = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung transaksi")
	}

	var rows []model.WalletTransaksi
	if err := q.
		Order("wallet_transaksi_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil transaksi")
	}

	return helper.JsonList(c, "", dto.ToWalletTransaksiResponses(rows), p.Meta(total))
}
